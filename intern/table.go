package intern

import (
	"encoding/binary"
	"sync"

	"github.com/sign-language-processing/complex-tokenization-go/vertex"
)

// Table is a concurrency-safe Vertex canonicalization table.
//
// The zero value is not usable; construct one with New.
type Table struct {
	mu   sync.Mutex
	root *node
}

// New returns an empty Table.
func New() *Table {
	return &Table{root: &node{}}
}

// Intern returns the canonical instance for v: if a structurally-equal
// Vertex was interned before, that earlier instance is returned unchanged;
// otherwise v itself is recorded as canonical and returned.
//
// Complexity: O(len(key)) = O(1), independent of v's subtree size, since
// the key is v's hash rather than its full structure.
func (t *Table) Intern(v vertex.Vertex) vertex.Vertex {
	key := keyFor(v)

	t.mu.Lock()
	defer t.mu.Unlock()

	newRoot, canonical := insert(t.root, key, v)
	t.root = newRoot
	return canonical
}

// keyFor derives the radix-tree key for v: a one-byte variant tag (so a
// Token can never collide with a same-bytes Sequence/Tree/Forest) followed
// by the big-endian encoding of v.Hash().
func keyFor(v vertex.Vertex) []byte {
	key := make([]byte, 9)
	key[0] = variantTag(v)
	binary.BigEndian.PutUint64(key[1:], v.Hash())
	return key
}

func variantTag(v vertex.Vertex) byte {
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

// insert returns a new tree rooted where n was, containing v under search,
// and the canonical Vertex for v (either v itself, or a prior value found
// Equal to it in the bucket at that key). n's own subtree is never
// mutated: every node on the path from the root to the insertion point is
// replaced; every other subtree is shared with the input tree.
func insert(n *node, search []byte, v vertex.Vertex) (*node, vertex.Vertex) {
	if n == nil {
		return &node{prefix: cloneBytes(search), leaf: &leafBucket{vertices: []vertex.Vertex{v}}}, v
	}

	cp := commonPrefixLen(n.prefix, search)

	if cp < len(n.prefix) {
		// n.prefix diverges from search partway through; split it into a
		// branch node with two children, one preserving n's old subtree,
		// one for the new key.
		branch := &node{prefix: cloneBytes(n.prefix[:cp])}
		oldSuffix := n.prefix[cp:]
		oldChild := &node{prefix: cloneBytes(oldSuffix[1:]), leaf: n.leaf, edges: n.edges}
		branch.edges = []edge{{label: oldSuffix[0], node: oldChild}}

		if cp == len(search) {
			branch.leaf = &leafBucket{vertices: []vertex.Vertex{v}}
			return branch, v
		}

		newSuffix := search[cp:]
		newChild := &node{prefix: cloneBytes(newSuffix[1:]), leaf: &leafBucket{vertices: []vertex.Vertex{v}}}
		idx, _ := findEdge(branch.edges, newSuffix[0])
		branch.edges = withEdge(branch.edges, idx, edge{label: newSuffix[0], node: newChild}, false)
		return branch, v
	}

	// n.prefix is fully consumed by search.
	remaining := search[cp:]
	if len(remaining) == 0 {
		if n.leaf != nil {
			for _, existing := range n.leaf.vertices {
				if existing.Equal(v) {
					return n, existing
				}
			}
			bucket := &leafBucket{vertices: append(cloneVertices(n.leaf.vertices), v)}
			return &node{prefix: n.prefix, leaf: bucket, edges: n.edges}, v
		}
		return &node{prefix: n.prefix, leaf: &leafBucket{vertices: []vertex.Vertex{v}}, edges: n.edges}, v
	}

	label := remaining[0]
	idx, child := findEdge(n.edges, label)
	if child == nil {
		newChild := &node{prefix: cloneBytes(remaining[1:]), leaf: &leafBucket{vertices: []vertex.Vertex{v}}}
		edges := withEdge(n.edges, idx, edge{label: label, node: newChild}, false)
		return &node{prefix: n.prefix, leaf: n.leaf, edges: edges}, v
	}

	updatedChild, canonical := insert(child, remaining[1:], v)
	edges := withEdge(n.edges, idx, edge{label: label, node: updatedChild}, true)
	return &node{prefix: n.prefix, leaf: n.leaf, edges: edges}, canonical
}

func cloneVertices(vs []vertex.Vertex) []vertex.Vertex {
	out := make([]vertex.Vertex, len(vs))
	copy(out, vs)
	return out
}
