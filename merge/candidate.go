package merge

import (
	"encoding/binary"

	"github.com/sign-language-processing/complex-tokenization-go/vertex"
)

// Candidate is an ordered tuple of adjacent Vertices that is admissible as a
// merge at some position in the graph. For a Sequence position it is a
// contiguous run of 2..MaxMergeSize children; for a Tree it is always the
// full (root, children...) tuple, whose length MaxMergeSize does not bound.
type Candidate struct {
	Elements []vertex.Vertex
}

// Len returns the candidate's arity, the number of elements it merges.
func (c Candidate) Len() int { return len(c.Elements) }

// Bytes returns the concatenation of the elements' byte serializations —
// the bytes of the Token a merge on this candidate would synthesize.
func (c Candidate) Bytes() []byte {
	var buf []byte
	for _, e := range c.Elements {
		buf = append(buf, e.Bytes()...)
	}
	return buf
}

// Equal reports whether two candidates are the same tuple by Vertex
// equality.
func (c Candidate) Equal(other Candidate) bool {
	if len(c.Elements) != len(other.Elements) {
		return false
	}
	for i := range c.Elements {
		if !c.Elements[i].Equal(other.Elements[i]) {
			return false
		}
	}
	return true
}

// Key returns a stable, comparable string suitable as a map key for
// tallying candidate frequency. It is built from each element's Hash, not its
// raw bytes, so two candidates of different arity that happen to
// concatenate to the same bytes (e.g. two Tokens "a","b" vs one Sequence
// wrapping them) never collide merely because Bytes() agrees.
func (c Candidate) Key() string {
	buf := make([]byte, 0, len(c.Elements)*9)
	for _, e := range c.Elements {
		buf = append(buf, elementTag(e))
		var h [8]byte
		binary.LittleEndian.PutUint64(h[:], e.Hash())
		buf = append(buf, h[:]...)
	}
	return string(buf)
}

func elementTag(v vertex.Vertex) byte {
	switch v.(type) {
	case *vertex.Token:
		return 0
	case *vertex.Sequence:
		return 1
	case *vertex.Tree:
		return 2
	case *vertex.Forest:
		return 3
	default:
		return 0xff
	}
}
