package ast

import (
	"fmt"
	"io"
	"strings"
)

// NodeDiff describes where two trees differ structurally.
type NodeDiff struct {
	A, B     *Node
	Children map[int]NodeDiff
}

func (d NodeDiff) String() string {
	var sb strings.Builder
	d.report(nil, &sb)
	return sb.String()
}

func (d NodeDiff) report(path []string, w io.Writer) {
	if d.Equal() {
		return
	}
	prefix := ""
	if len(path) > 0 {
		prefix = fmt.Sprintf("[%s] ", strings.Join(path, "."))
	}
	if d.A.Tag != d.B.Tag {
		fmt.Fprintf(w, "%sTag: %v != %v\n", prefix, d.A.Tag, d.B.Tag)
	} else if d.A.Tag.Has(Printable) && d.A.Text() != d.B.Text() {
		fmt.Fprintf(w, "%sText: %q != %q\n", prefix, d.A.Text(), d.B.Text())
	}
	if len(d.A.Children) != len(d.B.Children) {
		fmt.Fprintf(w, "%slen(Children): %v != %v\n", prefix, len(d.A.Children), len(d.B.Children))
	}
	for i := 0; i < len(d.A.Children); i++ {
		if cd, has := d.Children[i]; has {
			cd.report(append(append([]string{}, path...), fmt.Sprintf("%s[%d]", d.A.Tag, i)), w)
		}
	}
}

func (d NodeDiff) Equal() bool {
	return d.A.Tag == d.B.Tag &&
		(!d.A.Tag.Has(Printable) || d.A.Text() == d.B.Text()) &&
		len(d.A.Children) == len(d.B.Children) &&
		len(d.Children) == 0
}

// Diff compares a and b. Children are compared pairwise up to the shorter
// child list.
func Diff(a, b *Node) NodeDiff {
	children := map[int]NodeDiff{}
	n := len(a.Children)
	if n > len(b.Children) {
		n = len(b.Children)
	}
	for i, x := range a.Children[:n] {
		if d := Diff(x, b.Children[i]); !d.Equal() {
			children[i] = d
		}
	}
	return NodeDiff{A: a, B: b, Children: children}
}
