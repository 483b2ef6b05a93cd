package vertex

import "hash/maphash"

// hashSeed is process-wide and fixed once at startup. Vertex hashes are only
// ever compared within a single process run (candidate tallying, interning),
// never persisted, so a random per-process seed is sufficient and avoids the
// fixed-seed DoS concerns of a deterministic hash.
var hashSeed = maphash.MakeSeed()

// Vertex is the polymorphic graph node: a Token, Sequence, Tree, or Forest.
//
// Implementations are value-like and immutable. Equal and Hash must agree:
// Equal(a, b) implies Hash(a) == Hash(b). Bytes returns the canonical byte
// serialization of the Vertex.
type Vertex interface {
	// Bytes returns the canonical byte serialization of this Vertex.
	Bytes() []byte

	// Equal reports whether other is structurally and by-value identical to
	// this Vertex.
	Equal(other Vertex) bool

	// Hash returns a hash that agrees with Equal. Implementations cache it
	// lazily; Token additionally never needs to cache since it has no
	// children to walk.
	Hash() uint64

	// String renders this Vertex for diagnostics (not the dictionary-aware
	// external rendering, which lives in package trainer).
	String() string
}

// childrenEqual reports whether two children slices are pairwise Equal.
// Shared by Sequence, Tree, and Forest.
func childrenEqual(a, b []Vertex) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// writeBytes concatenates the byte serializations of vs into buf.
func writeBytes(buf []byte, vs ...Vertex) []byte {
	for _, v := range vs {
		buf = append(buf, v.Bytes()...)
	}
	return buf
}
