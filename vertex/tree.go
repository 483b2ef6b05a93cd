package vertex

import "hash/maphash"

// Tree is a rooted node: a root Vertex plus an ordered tuple of at least one
// child Vertex. The root/child relationship is structural (for
// example an IDC combining operator over its operands) rather than
// adjacency: children are not considered mutually adjacent, only the
// (root, child1, ..., childK) tuple as a whole is a candidate merge at this
// node.
type Tree struct {
	root     Vertex
	children []Vertex
	hash     uint64
	hashed   bool
}

// NewTree constructs a Tree from root and children. Zero children is a
// construction-time error; an arity-0 "tree" should collapse to
// root directly instead of calling NewTree.
func NewTree(root Vertex, children []Vertex) (*Tree, error) {
	if len(children) < 1 {
		return nil, ErrNoChildren
	}
	cp := make([]Vertex, len(children))
	copy(cp, children)
	return &Tree{root: root, children: cp}, nil
}

// Root returns the Tree's root Vertex.
func (t *Tree) Root() Vertex { return t.root }

// Children returns the Tree's children in order. The returned slice must
// not be mutated by callers.
func (t *Tree) Children() []Vertex { return t.children }

// Bytes returns bytes(root) followed by the concatenation of the children's
// byte serializations.
func (t *Tree) Bytes() []byte {
	var buf []byte
	buf = writeBytes(buf, t.root)
	return writeBytes(buf, t.children...)
}

// Equal reports whether other is a Tree with an equal root and pairwise-
// equal children.
func (t *Tree) Equal(other Vertex) bool {
	o, ok := other.(*Tree)
	if !ok {
		return false
	}
	if t == o {
		return true
	}
	return t.root.Equal(o.root) && childrenEqual(t.children, o.children)
}

// Hash returns a hash over the root's hash and the children's hashes,
// cached after first use.
func (t *Tree) Hash() uint64 {
	if t.hashed {
		return t.hash
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	_, _ = h.Write([]byte{tagTree})
	writeHash(&h, t.root.Hash())
	for _, c := range t.children {
		writeHash(&h, c.Hash())
	}
	t.hash = h.Sum64()
	t.hashed = true
	return t.hash
}

// String renders the Tree as root followed by its children, each in String
// form, matching the byte-serialization order.
func (t *Tree) String() string {
	out := t.root.String()
	for _, c := range t.children {
		out += c.String()
	}
	return out
}

func writeHash(h *maphash.Hash, v uint64) {
	_, _ = h.Write([]byte{
		byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24),
		byte(v >> 32), byte(v >> 40), byte(v >> 48), byte(v >> 56),
	})
}
