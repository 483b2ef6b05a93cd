package vertex

import "hash/maphash"

// Sequence is an ordered tuple of at least two child Vertices representing
// left-to-right adjacency. Children may be of any variant.
type Sequence struct {
	children []Vertex
	hash     uint64
	hashed   bool
}

// NewSequence constructs a Sequence from children. Fewer than two children
// is a construction-time error; callers that may end up with a
// single child should check len(children) first and use that child
// directly instead of calling NewSequence.
func NewSequence(children []Vertex) (*Sequence, error) {
	if len(children) < 2 {
		return nil, ErrTooFewChildren
	}
	cp := make([]Vertex, len(children))
	copy(cp, children)
	return &Sequence{children: cp}, nil
}

// Children returns the Sequence's children in order. The returned slice
// must not be mutated by callers.
func (s *Sequence) Children() []Vertex { return s.children }

// Bytes returns the concatenation of the children's byte serializations.
func (s *Sequence) Bytes() []byte {
	var buf []byte
	return writeBytes(buf, s.children...)
}

// Equal reports whether other is a Sequence with pairwise-equal children.
func (s *Sequence) Equal(other Vertex) bool {
	o, ok := other.(*Sequence)
	if !ok {
		return false
	}
	if s == o {
		return true
	}
	return childrenEqual(s.children, o.children)
}

// Hash returns a hash over the children's hashes, cached after first use.
func (s *Sequence) Hash() uint64 {
	if s.hashed {
		return s.hash
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	_, _ = h.Write([]byte{tagSequence})
	for _, c := range s.children {
		writeHash(&h, c.Hash())
	}
	s.hash = h.Sum64()
	s.hashed = true
	return s.hash
}

// String renders the Sequence as the concatenation of its children's
// String forms.
func (s *Sequence) String() string {
	out := ""
	for _, c := range s.children {
		out += c.String()
	}
	return out
}
