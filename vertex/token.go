package vertex

import (
	"hash/maphash"
	"unicode/utf8"
)

// Token is an atomic, immutable byte string: the only leaf Vertex and the
// only kind of Vertex a merge can ever produce.
type Token struct {
	value []byte
}

// NewToken returns a Token wrapping a private copy of b. Tokens never alias
// caller-owned slices, so later mutation of b cannot corrupt a graph that
// already references the Token.
func NewToken(b []byte) *Token {
	value := make([]byte, len(b))
	copy(value, b)
	return &Token{value: value}
}

// Bytes returns the Token's bytes.
func (t *Token) Bytes() []byte { return t.value }

// Equal reports whether other is a Token with identical bytes.
func (t *Token) Equal(other Vertex) bool {
	o, ok := other.(*Token)
	if !ok {
		return false
	}
	if t == o {
		return true
	}
	return string(t.value) == string(o.value)
}

// Hash returns a hash of the Token's bytes. Unlike the other variants,
// Token hashes are cheap enough (no children to walk) that caching would
// only add a branch; it is recomputed on every call.
func (t *Token) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	_, _ = h.Write([]byte{tagToken})
	_, _ = h.Write(t.value)
	return h.Sum64()
}

// String decodes the Token's bytes as UTF-8, substituting U+FFFD for
// ill-formed sequences.
func (t *Token) String() string {
	if utf8.Valid(t.value) {
		return string(t.value)
	}
	// Decode rune-by-rune so well-formed runs survive around a bad byte,
	// rather than collapsing the whole Token to a single replacement char.
	out := make([]rune, 0, len(t.value))
	b := t.value
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		out = append(out, r)
		b = b[size:]
	}
	return string(out)
}

// Concat returns a fresh Token whose bytes are the concatenation of ts, in
// order. Used by the trainer to synthesize the Token for a chosen merge
//.
func Concat(ts ...Vertex) *Token {
	var buf []byte
	buf = writeBytes(buf, ts...)
	return &Token{value: buf}
}

const (
	tagToken byte = iota
	tagSequence
	tagTree
	tagForest
)
