package vertex

// Wrap returns children[0] if there is exactly one child, else a Sequence
// of children. It is the idiom every graph constructor in package construct
// uses to satisfy the "a singleton collapses to its sole child" invariant
// without duplicating the length check at every call site. Wrap panics if
// children is empty.
func Wrap(children []Vertex) Vertex {
	if len(children) == 1 {
		return children[0]
	}
	s, err := NewSequence(children)
	if err != nil {
		// Reached only when children is empty.
		panic(err)
	}
	return s
}

// WrapForest returns subgraphs[0] if there is exactly one subgraph, else a
// Forest of subgraphs. Mirrors Wrap for the disconnected case, including
// the panic on an empty slice.
func WrapForest(subgraphs []Vertex) Vertex {
	if len(subgraphs) == 1 {
		return subgraphs[0]
	}
	f, err := NewForest(subgraphs)
	if err != nil {
		panic(err)
	}
	return f
}
