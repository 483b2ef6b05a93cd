package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sign-language-processing/complex-tokenization-go/merge"
	"github.com/sign-language-processing/complex-tokenization-go/rewrite"
	"github.com/sign-language-processing/complex-tokenization-go/vertex"
)

func tok(s string) *vertex.Token { return vertex.NewToken([]byte(s)) }

func byteSeq(t *testing.T, s string) vertex.Vertex {
	t.Helper()
	children := make([]vertex.Vertex, len(s))
	for i := 0; i < len(s); i++ {
		children[i] = tok(string(s[i]))
	}
	return vertex.Wrap(children)
}

func candOf(elems ...vertex.Vertex) merge.Candidate { return merge.Candidate{Elements: elems} }

func TestRewriteGreedyNonOverlapping(t *testing.T) {
	g := byteSeq(t, "aaaa")
	m := candOf(tok("a"), tok("a"))
	tt := vertex.Concat(m.Elements...)

	out := rewrite.Rewrite(g, m, tt)
	seq, ok := out.(*vertex.Sequence)
	require.True(t, ok)
	require.Len(t, seq.Children(), 2)
	require.True(t, seq.Children()[0].Equal(tt))
	require.True(t, seq.Children()[1].Equal(tt))
}

func TestRewritePreservesBytes(t *testing.T) {
	g := byteSeq(t, "lalaland")
	m := candOf(tok("l"), tok("a"))
	tt := vertex.Concat(m.Elements...)

	out := rewrite.Rewrite(g, m, tt)
	require.Equal(t, string(g.Bytes()), string(out.Bytes()))
}

func TestRewriteIdempotent(t *testing.T) {
	g := byteSeq(t, "lalaland")
	m := candOf(tok("l"), tok("a"))
	tt := vertex.Concat(m.Elements...)

	once := rewrite.Rewrite(g, m, tt)
	twice := rewrite.Rewrite(once, m, tt)
	require.True(t, once.Equal(twice))
}

func TestRewriteCollapsesToSingleElement(t *testing.T) {
	g, err := vertex.NewSequence([]vertex.Vertex{tok("a"), tok("b")})
	require.NoError(t, err)
	m := candOf(tok("a"), tok("b"))
	tt := vertex.Concat(m.Elements...)

	out := rewrite.Rewrite(g, m, tt)
	require.IsType(t, &vertex.Token{}, out)
	require.True(t, out.Equal(tt))
}

func TestRewriteTreeCollapsesFullTuple(t *testing.T) {
	inner, err := vertex.NewTree(tok("⿱"), []vertex.Vertex{tok("乛"), tok("头")})
	require.NoError(t, err)
	m := candOf(tok("⿱"), tok("乛"), tok("头"))
	tt := vertex.Concat(m.Elements...)

	out := rewrite.Rewrite(inner, m, tt)
	require.IsType(t, &vertex.Token{}, out)
	require.Equal(t, string(tt.Bytes()), string(out.Bytes()))
}

func TestRewriteTreeRecursesIntoUnmatchedBranch(t *testing.T) {
	inner, err := vertex.NewTree(tok("⿱"), []vertex.Vertex{tok("乛"), tok("头")})
	require.NoError(t, err)
	outer, err := vertex.NewTree(tok("⿱"), []vertex.Vertex{tok("十"), inner})
	require.NoError(t, err)

	m := candOf(tok("⿱"), tok("乛"), tok("头"))
	tt := vertex.Concat(m.Elements...)

	out := rewrite.Rewrite(outer, m, tt)
	outTree, ok := out.(*vertex.Tree)
	require.True(t, ok)
	require.Equal(t, "十", outTree.Children()[0].String())
	require.True(t, outTree.Children()[1].Equal(tt))
}

func TestRewriteUnchangedBranchIsSamePointer(t *testing.T) {
	left := byteSeq(t, "xy")
	right, err := vertex.NewTree(tok("R"), []vertex.Vertex{tok("a"), tok("b")})
	require.NoError(t, err)
	forest, err := vertex.NewForest([]vertex.Vertex{left, right})
	require.NoError(t, err)

	m := candOf(tok("a"), tok("b"))
	tt := vertex.Concat(m.Elements...)

	out := rewrite.Rewrite(forest, m, tt)
	outForest, ok := out.(*vertex.Forest)
	require.True(t, ok)
	// The "xy" branch contains no occurrence of m anywhere in its subtree,
	// so it must come back as the exact same Vertex, not a reallocated
	// structural copy.
	require.Same(t, left, outForest.Subgraphs()[0])
}

func TestRewriteNoOccurrenceIsNoop(t *testing.T) {
	g := byteSeq(t, "xyz")
	m := candOf(tok("a"), tok("b"))
	tt := vertex.Concat(m.Elements...)

	out := rewrite.Rewrite(g, m, tt)
	require.Same(t, g, out)
}

func TestRewriteForestNeverMergesAcrossSubgraphs(t *testing.T) {
	left := byteSeq(t, "ab")
	right := byteSeq(t, "cd")
	forest, err := vertex.NewForest([]vertex.Vertex{left, right})
	require.NoError(t, err)

	m := candOf(tok("b"), tok("c"))
	tt := vertex.Concat(m.Elements...)

	out := rewrite.Rewrite(forest, m, tt)
	require.Same(t, forest, out)
}
