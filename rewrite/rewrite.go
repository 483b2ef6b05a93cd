package rewrite

import (
	"github.com/sign-language-processing/complex-tokenization-go/merge"
	"github.com/sign-language-processing/complex-tokenization-go/vertex"
)

// Rewrite returns v with every non-overlapping, left-to-right occurrence of
// m replaced by t: every contiguous run in a Sequence, and the full
// (root, children...) tuple of a Tree. Recursion descends into
// every child of a Sequence/Tree/Forest regardless of whether a
// replacement fired at that level, since a nested occurrence of m may
// exist deeper in an untouched branch.
func Rewrite(v vertex.Vertex, m merge.Candidate, t *vertex.Token) vertex.Vertex {
	switch node := v.(type) {
	case *vertex.Token:
		return node

	case *vertex.Sequence:
		return rewriteSequence(node, m, t)

	case *vertex.Tree:
		return rewriteTree(node, m, t)

	case *vertex.Forest:
		return rewriteForest(node, m, t)

	default:
		return v
	}
}

func rewriteSequence(node *vertex.Sequence, m merge.Candidate, t *vertex.Token) vertex.Vertex {
	children := node.Children()
	mLen := len(m.Elements)

	// Greedy, non-overlapping, left-to-right scan for occurrences of m.
	var scanned []vertex.Vertex
	anyMatch := false
	for i := 0; i < len(children); {
		if mLen > 0 && i+mLen <= len(children) && spanEquals(children[i:i+mLen], m.Elements) {
			scanned = append(scanned, t)
			i += mLen
			anyMatch = true
		} else {
			scanned = append(scanned, children[i])
			i++
		}
	}

	// Recurse into every element of the scan output, whether or not it was
	// just replaced (Token recursion is a no-op, so rewriting t is free).
	rewritten := make([]vertex.Vertex, len(scanned))
	changed := anyMatch
	for i, e := range scanned {
		re := Rewrite(e, m, t)
		if re != e {
			changed = true
		}
		rewritten[i] = re
	}

	if !changed {
		return node
	}
	if len(rewritten) == 1 {
		return rewritten[0]
	}
	out, err := vertex.NewSequence(rewritten)
	if err != nil {
		// len(rewritten) >= 2 here since the ==1 case returned above.
		panic(err)
	}
	return out
}

func rewriteTree(node *vertex.Tree, m merge.Candidate, t *vertex.Token) vertex.Vertex {
	children := node.Children()
	full := make([]vertex.Vertex, 0, len(children)+1)
	full = append(full, node.Root())
	full = append(full, children...)
	if spanEquals(full, m.Elements) {
		return t
	}

	newRoot := Rewrite(node.Root(), m, t)
	changed := newRoot != node.Root()

	newChildren := make([]vertex.Vertex, len(children))
	for i, c := range children {
		nc := Rewrite(c, m, t)
		if nc != c {
			changed = true
		}
		newChildren[i] = nc
	}

	if !changed {
		return node
	}
	out, err := vertex.NewTree(newRoot, newChildren)
	if err != nil {
		// len(newChildren) == len(children) >= 1, always valid.
		panic(err)
	}
	return out
}

func rewriteForest(node *vertex.Forest, m merge.Candidate, t *vertex.Token) vertex.Vertex {
	subgraphs := node.Subgraphs()
	newSubgraphs := make([]vertex.Vertex, len(subgraphs))
	changed := false
	for i, sg := range subgraphs {
		ns := Rewrite(sg, m, t)
		if ns != sg {
			changed = true
		}
		newSubgraphs[i] = ns
	}
	if !changed {
		return node
	}
	out, err := vertex.NewForest(newSubgraphs)
	if err != nil {
		// len(newSubgraphs) == len(subgraphs) >= 2, always valid.
		panic(err)
	}
	return out
}

func spanEquals(span []vertex.Vertex, elements []vertex.Vertex) bool {
	if len(span) != len(elements) {
		return false
	}
	for i := range span {
		if !span[i].Equal(elements[i]) {
			return false
		}
	}
	return true
}
