package ast

import (
	"github.com/arr-ai/progspace/gotree"
)

// String renders the tree, one node per line.
func (n *Node) String() string {
	if n == nil {
		return "<nil>\n"
	}
	return fromAst(n).Print()
}

func fromAst(n *Node) gotree.Tree {
	tree := gotree.New(n.Label())
	for _, c := range n.Children {
		tree.AddTree(fromAst(c))
	}
	return tree
}
