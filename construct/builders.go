package construct

import (
	"github.com/sign-language-processing/complex-tokenization-go/ids"
	"github.com/sign-language-processing/complex-tokenization-go/segmenter"
	"github.com/sign-language-processing/complex-tokenization-go/vertex"
)

// GraphemeSegmenter splits a string into grapheme-cluster strings.
type GraphemeSegmenter = segmenter.Segmenter

// WordPretokenizer splits text into word-like pieces.
type WordPretokenizer = func(text string) []string

// ByteLeaves maps b to a single Token if len(b) == 1, else a Sequence of
// 1-byte Tokens, one per byte.
func ByteLeaves(b []byte) vertex.Vertex {
	leaves := make([]vertex.Vertex, len(b))
	for i, c := range b {
		leaves[i] = vertex.NewToken([]byte{c})
	}
	return vertex.Wrap(leaves)
}

// GraphemeClusters segments s into extended grapheme clusters with segment,
// builds each with ByteLeaves, and wraps the result in a Sequence when more
// than one cluster exists. A nil segment uses segmenter.Default.
func GraphemeClusters(s string, segment GraphemeSegmenter) vertex.Vertex {
	if segment == nil {
		segment = segmenter.Default
	}
	clusters := segment(s)
	leaves := make([]vertex.Vertex, len(clusters))
	for i, c := range clusters {
		leaves[i] = ByteLeaves([]byte(c))
	}
	return vertex.Wrap(leaves)
}

// Words pre-tokenizes text with pretokenize, builds each piece with unit,
// and wraps the pieces in a Sequence when connected is true or a Forest
// when it is false. A nil unit defaults to building each piece as
// grapheme clusters.
func Words(text string, pretokenize WordPretokenizer, connected bool, unit func(string) vertex.Vertex) vertex.Vertex {
	if unit == nil {
		unit = func(s string) vertex.Vertex { return GraphemeClusters(s, nil) }
	}
	pieces := pretokenize(text)
	nodes := make([]vertex.Vertex, len(pieces))
	for i, p := range pieces {
		nodes[i] = unit(p)
	}
	if connected {
		return vertex.Wrap(nodes)
	}
	return vertex.WrapForest(nodes)
}

// IDSTree converts a parsed IDS tree into the core's Vertex model: an IDC
// node becomes a Tree whose root is a Token of the IDC rune and whose
// children are the recursively built components; a leaf radical becomes a
// single Token. arity is accepted for symmetry with the parser's contract
// but is not consulted here — root's own Children already reflect the
// arity decision the parser made.
func IDSTree(root ids.IDSNode, arity ids.ArityTable) vertex.Vertex {
	_ = arity
	if root.IsLeaf() {
		return vertex.NewToken([]byte(string(root.Value)))
	}
	children := make([]vertex.Vertex, len(root.Children))
	for i, c := range root.Children {
		children[i] = IDSTree(c, arity)
	}
	rootToken := vertex.NewToken([]byte(string(root.Value)))
	tree, err := vertex.NewTree(rootToken, children)
	if err != nil {
		// len(children) >= 2 for every IDC in ArityTable; unreachable.
		panic(err)
	}
	return tree
}
