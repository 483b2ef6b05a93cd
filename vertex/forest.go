package vertex

import "hash/maphash"

// Forest (a.k.a. "unconnected graphs") is an ordered tuple of at least two
// subgraph Vertices with no adjacency between subgraphs, used when merging
// must never cross a document boundary. A merge candidate never
// spans two subgraphs of a Forest.
type Forest struct {
	subgraphs []Vertex
	hash      uint64
	hashed    bool
}

// NewForest constructs a Forest from subgraphs. Fewer than two subgraphs is
// a construction-time error.
func NewForest(subgraphs []Vertex) (*Forest, error) {
	if len(subgraphs) < 2 {
		return nil, ErrTooFewChildren
	}
	cp := make([]Vertex, len(subgraphs))
	copy(cp, subgraphs)
	return &Forest{subgraphs: cp}, nil
}

// Subgraphs returns the Forest's subgraphs in order. The returned slice
// must not be mutated by callers.
func (f *Forest) Subgraphs() []Vertex { return f.subgraphs }

// Bytes returns the concatenation of the subgraphs' byte serializations.
func (f *Forest) Bytes() []byte {
	var buf []byte
	return writeBytes(buf, f.subgraphs...)
}

// Equal reports whether other is a Forest with pairwise-equal subgraphs.
func (f *Forest) Equal(other Vertex) bool {
	o, ok := other.(*Forest)
	if !ok {
		return false
	}
	if f == o {
		return true
	}
	return childrenEqual(f.subgraphs, o.subgraphs)
}

// Hash returns a hash over the subgraphs' hashes, cached after first use.
func (f *Forest) Hash() uint64 {
	if f.hashed {
		return f.hash
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	_, _ = h.Write([]byte{tagForest})
	for _, sg := range f.subgraphs {
		writeHash(&h, sg.Hash())
	}
	f.hash = h.Sum64()
	f.hashed = true
	return f.hash
}

// String renders the Forest as the concatenation of its subgraphs' String
// forms.
func (f *Forest) String() string {
	out := ""
	for _, sg := range f.subgraphs {
		out += sg.String()
	}
	return out
}
