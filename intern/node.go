package intern

import (
	"sort"

	"github.com/sign-language-processing/complex-tokenization-go/vertex"
)

// leafBucket holds every interned Vertex that happens to share the node's
// key. Keys are 64-bit structural hashes (see keyFor in table.go); a bucket
// of more than one element is the rare hash collision, resolved by an
// Equal scan on insert/lookup rather than trusting the hash alone.
type leafBucket struct {
	vertices []vertex.Vertex
}

// edge is a single labeled transition to a child node, kept sorted by
// label within a node's edges slice for binary search.
type edge struct {
	label byte
	node  *node
}

// node is an immutable node of the radix tree: a shared prefix, an
// optional leaf bucket terminating at this node, and any child edges.
type node struct {
	prefix []byte
	leaf   *leafBucket
	edges  []edge
}

// commonPrefixLen returns the length of the longest common prefix of a
// and b.
func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func findEdge(edges []edge, label byte) (int, *node) {
	idx := sort.Search(len(edges), func(i int) bool { return edges[i].label >= label })
	if idx < len(edges) && edges[idx].label == label {
		return idx, edges[idx].node
	}
	return idx, nil
}

func withEdge(edges []edge, idx int, e edge, replace bool) []edge {
	out := make([]edge, len(edges)+boolToInt(!replace))
	copy(out, edges[:idx])
	out[idx] = e
	if replace {
		copy(out[idx+1:], edges[idx+1:])
	} else {
		copy(out[idx+1:], edges[idx:])
	}
	return out
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
