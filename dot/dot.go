package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/sign-language-processing/complex-tokenization-go/vertex"
)

// WriteDOT renders v as a complete Graphviz digraph, mirroring the
// original's dot() generator: Sequences become filled clusters with
// chained edges between consecutive children, Trees become filled clusters
// with a labeled root->child edge per child, and cluster fill color
// alternates by nesting depth. A Forest's subgraphs are each emitted as
// their own top-level cluster, with no edges between them, matching a
// Forest's "absence of adjacency" semantics.
func WriteDOT(w io.Writer, v vertex.Vertex) error {
	var b strings.Builder
	b.WriteString("digraph G {\n")
	b.WriteString("\tgraph [compound=true, rankdir=LR, fontsize=16, nodesep=0.6];\n")
	b.WriteString("\tnode  [shape=circle, fontsize=16];\n")
	b.WriteString("\tedge  [fontsize=12, arrowhead=none];\n")
	writeVertex(&b, v, 0)
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeVertex(b *strings.Builder, v vertex.Vertex, level int) {
	indent := strings.Repeat("\t", level)
	switch node := v.(type) {
	case *vertex.Token:
		fmt.Fprintf(b, "%s%s [label=\"%s\"];\n", indent, oid(node), escape(node.String()))

	case *vertex.Sequence:
		color := "lightgrey"
		if level%2 == 1 {
			color = "grey"
		}
		fmt.Fprintf(b, "%ssubgraph cluster_%s {\n", indent, clusterID(node))
		fmt.Fprintf(b, "%s\tlabel=\"%s\";\n", indent, escape(node.String()))
		fmt.Fprintf(b, "%s\tstyle=filled; color=\"%s\";\n", indent, color)
		fmt.Fprintf(b, "%s\tnode [style=filled, color=white];\n", indent)
		fmt.Fprintf(b, "%s\tedge [arrowhead=none];\n\n", indent)

		var last string
		for _, c := range node.Children() {
			writeVertex(b, c, level+1)
			if last != "" {
				fmt.Fprintf(b, "%s\t%s -> %s;\n", indent, last, oid(c))
			}
			last = oid(c)
		}
		fmt.Fprintf(b, "%s}\n", indent)

	case *vertex.Tree:
		color := "lightblue"
		if level%2 == 1 {
			color = "#cce5ff"
		}
		fmt.Fprintf(b, "%ssubgraph cluster_%s {\n", indent, oid(node.Root()))
		fmt.Fprintf(b, "%s\tlabel=\"%s\";\n", indent, escape(node.String()))
		fmt.Fprintf(b, "%s\tstyle=filled; color=\"%s\";\n", indent, color)
		fmt.Fprintf(b, "%s\tnode [style=filled, color=white];\n", indent)
		fmt.Fprintf(b, "%s\tedge [arrowhead=normal];\n\n", indent)

		writeVertex(b, node.Root(), level+1)
		for i, c := range node.Children() {
			writeVertex(b, c, level+1)
			fmt.Fprintf(b, "%s\t%s -> %s [label=\"%d\"];\n", indent, oid(node.Root()), oid(c), i+1)
		}
		fmt.Fprintf(b, "%s\tedge [arrowhead=none];\n", indent)
		fmt.Fprintf(b, "%s}\n", indent)

	case *vertex.Forest:
		for _, sg := range node.Subgraphs() {
			writeVertex(b, sg, level)
		}
	}
}

// oid returns a stable Graphviz node id for v: for a Token it is derived
// from the Token's own pointer, for a composite Vertex it is the oid of its
// leftmost leaf, matching the original's "oid delegates to the first
// node/root" convention.
func oid(v vertex.Vertex) string {
	switch node := v.(type) {
	case *vertex.Token:
		return fmt.Sprintf("o%p", node)
	case *vertex.Sequence:
		children := node.Children()
		return oid(children[0])
	case *vertex.Tree:
		return oid(node.Root())
	case *vertex.Forest:
		return oid(node.Subgraphs()[0])
	default:
		return fmt.Sprintf("o%p", v)
	}
}

func clusterID(v vertex.Vertex) string {
	return fmt.Sprintf("%p", v)
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}
