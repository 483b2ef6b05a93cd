package ids

import "fmt"

// ParseError reports a malformed IDS string: the rune offset at which
// parsing failed (or, for a trailing-characters failure, the offset of the
// first unconsumed rune) and a human-readable reason.
type ParseError struct {
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ids: parse error at rune %d: %s", e.Offset, e.Reason)
}

func newParseError(offset int, format string, args ...any) *ParseError {
	return &ParseError{Offset: offset, Reason: fmt.Sprintf(format, args...)}
}
