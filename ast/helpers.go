package ast

// Any reports whether n or any of its descendants has one of the given tags.
func Any(n *Node, tags ...Tag) bool {
	if n == nil {
		return false
	}
	if n.Tag.In(tags...) {
		return true
	}
	for _, c := range n.Children {
		if Any(c, tags...) {
			return true
		}
	}
	return false
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn skips the children of that node.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}
