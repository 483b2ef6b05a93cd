package merge

import (
	"iter"

	"github.com/sign-language-processing/complex-tokenization-go/vertex"
)

// Enumerate returns a lazy sequence of every merge candidate admissible in
// v under cfg. It is a structural recursion:
//
//   - Token yields nothing.
//   - Sequence recurses into every child, then yields every contiguous run
//     of length 2..cfg.MaxMergeSize at every starting index, subject to the
//     minimality gate below when cfg.OnlyMinimalMerges is set.
//   - Tree recurses into its root and every child, then yields the single
//     (root, child1, ..., childK) tuple for this node.
//   - Forest recurses into every subgraph; it contributes no candidate of
//     its own, since a Forest represents the absence of adjacency.
//
// Minimality gate: a Sequence candidate starting at index i is admitted
// only if the element at i is a Token, and it may extend past position i
// only through further Tokens — the first non-Token element encountered
// while growing the run (inclusive of that element) terminates enumeration
// for that starting index entirely; no candidate of that length or any
// greater length starting at i is yielded.
func Enumerate(v vertex.Vertex, cfg Config) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		enumerate(v, cfg, yield)
	}
}

// enumerate walks v, invoking yield for each candidate, and returns false
// as soon as yield asks to stop (the standard range-over-func early-exit
// protocol), propagating that stop back up through every recursive frame.
func enumerate(v vertex.Vertex, cfg Config, yield func(Candidate) bool) bool {
	switch node := v.(type) {
	case *vertex.Token:
		return true

	case *vertex.Sequence:
		children := node.Children()
		for _, c := range children {
			if !enumerate(c, cfg, yield) {
				return false
			}
		}
		return enumerateSequenceSpans(children, cfg, yield)

	case *vertex.Tree:
		if !enumerate(node.Root(), cfg, yield) {
			return false
		}
		for _, c := range node.Children() {
			if !enumerate(c, cfg, yield) {
				return false
			}
		}
		elems := make([]vertex.Vertex, 0, len(node.Children())+1)
		elems = append(elems, node.Root())
		elems = append(elems, node.Children()...)
		return yield(Candidate{Elements: elems})

	case *vertex.Forest:
		for _, sg := range node.Subgraphs() {
			if !enumerate(sg, cfg, yield) {
				return false
			}
		}
		return true

	default:
		return true
	}
}

// enumerateSequenceSpans yields every admissible contiguous span of
// children per the minimality gate.
func enumerateSequenceSpans(children []vertex.Vertex, cfg Config, yield func(Candidate) bool) bool {
	n := len(children)
	for i := 0; i < n; i++ {
		if cfg.OnlyMinimalMerges && !isToken(children[i]) {
			continue
		}
		maxLen := cfg.MaxMergeSize
		if remaining := n - i; remaining < maxLen {
			maxLen = remaining
		}
		for m := 2; m <= maxLen; m++ {
			last := i + m - 1
			if cfg.OnlyMinimalMerges && !isToken(children[last]) {
				break
			}
			span := make([]vertex.Vertex, m)
			copy(span, children[i:i+m])
			if !yield(Candidate{Elements: span}) {
				return false
			}
		}
	}
	return true
}

func isToken(v vertex.Vertex) bool {
	_, ok := v.(*vertex.Token)
	return ok
}
