package dot_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sign-language-processing/complex-tokenization-go/dot"
	"github.com/sign-language-processing/complex-tokenization-go/vertex"
)

func TestWriteDOTSequence(t *testing.T) {
	seq, err := vertex.NewSequence([]vertex.Vertex{vertex.NewToken([]byte("a")), vertex.NewToken([]byte("b"))})
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, dot.WriteDOT(&b, seq))

	out := b.String()
	require.True(t, strings.HasPrefix(out, "digraph G {\n"))
	require.Contains(t, out, "subgraph cluster_")
	require.Contains(t, out, `label="a"`)
	require.Contains(t, out, `label="b"`)
	require.True(t, strings.HasSuffix(out, "}\n"))
}

func TestWriteDOTTreeHasLabeledEdges(t *testing.T) {
	tree, err := vertex.NewTree(vertex.NewToken([]byte("+")), []vertex.Vertex{vertex.NewToken([]byte("a")), vertex.NewToken([]byte("b"))})
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, dot.WriteDOT(&b, tree))

	out := b.String()
	require.Contains(t, out, `[label="1"]`)
	require.Contains(t, out, `[label="2"]`)
}

func TestWriteDOTForestHasNoCrossEdges(t *testing.T) {
	f, err := vertex.NewForest([]vertex.Vertex{vertex.NewToken([]byte("a")), vertex.NewToken([]byte("b"))})
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, dot.WriteDOT(&b, f))

	out := b.String()
	require.NotContains(t, out, "->")
}
