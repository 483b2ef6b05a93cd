package pretokenize

import (
	"github.com/dlclark/regexp2"
)

// pattern is the canonical GPT-style split: a lead non-letter/
// non-digit rune followed by an uppercase-ish run then a lowercase run,
// with an optional case-insensitive contraction suffix; the mirror-image
// uppercase-only variant; 1-3 digit numeric runs; punctuation runs
// optionally preceded by a space; whitespace runs ending in a newline;
// residual whitespace not immediately followed by a non-space (the
// negative lookahead, so the boundary space before the next word stays
// with that word); any remaining whitespace.
const pattern = `[^\r\n\p{L}\p{N}]?[\p{Lu}\p{Lt}\p{Lm}\p{Lo}\p{M}]*[\p{Ll}\p{Lm}\p{Lo}\p{M}]+(?i:'s|'t|'re|'ve|'m|'ll|'d)?` +
	`|[^\r\n\p{L}\p{N}]?[\p{Lu}\p{Lt}\p{Lm}\p{Lo}\p{M}]+[\p{Ll}\p{Lm}\p{Lo}\p{M}]*(?i:'s|'t|'re|'ve|'m|'ll|'d)?` +
	`|\p{N}{1,3}| ?[^\s\p{L}\p{N}]+[\r\n/]*|\s*[\r\n]+|\s+(?!\S)|\s+`

var re = regexp2.MustCompile(pattern, regexp2.None)

// Pretokenizer splits text into word-like pieces.
type Pretokenizer func(text string) []string

// Default is the canonical Pretokenizer. It returns the pieces in
// text order; concatenating them reproduces text exactly.
func Default(text string) []string {
	var pieces []string
	m, err := re.FindStringMatch(text)
	for err == nil && m != nil {
		pieces = append(pieces, m.String())
		m, err = re.FindNextMatch(m)
	}
	return pieces
}
