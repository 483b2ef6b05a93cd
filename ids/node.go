package ids

// IDSNode is a node of a parsed Ideographic Description Sequence: either a
// leaf radical character, or an IDC applied to its Children (len 2 or 3,
// per ArityTable).
type IDSNode struct {
	Value    rune
	Children []IDSNode
}

// IsLeaf reports whether n is a radical with no decomposition.
func (n IDSNode) IsLeaf() bool { return len(n.Children) == 0 }
