// Package rope provides an immutable string-concatenation tree.
//
// Concatenation links two ropes in O(1) without copying either side. Ropes are
// never mutated after construction, so subtrees are freely shared between
// ropes. Materialization walks the leaves left to right with an explicit work
// stack and does not depend on the shape of the tree.
package rope

import (
	"io"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Rope is an immutable string built from fragments. The zero value is the
// empty rope.
type Rope struct {
	leaf string
	pair *pair
}

type pair struct {
	left, right Rope
	size        int
}

// FromString returns a rope holding s. The string is shared, not copied.
func FromString(s string) Rope {
	return Rope{leaf: s}
}

// FromBytes returns a rope owning a copy of b.
func FromBytes(b []byte) Rope {
	return Rope{leaf: string(b)}
}

// Concat returns the rope for left followed by right.
func Concat(left, right Rope) Rope {
	switch {
	case left.Len() == 0:
		return right
	case right.Len() == 0:
		return left
	}
	return Rope{pair: &pair{left: left, right: right, size: left.Len() + right.Len()}}
}

// Concat returns the rope for r followed by other.
func (r Rope) Concat(other Rope) Rope {
	return Concat(r, other)
}

// Len returns the length of the rope in bytes.
func (r Rope) Len() int {
	if r.pair != nil {
		return r.pair.size
	}
	return len(r.leaf)
}

// Leaves calls fn with every non-empty fragment, left to right, until fn
// returns false.
func (r Rope) Leaves(fn func(string) bool) {
	stack := arraystack.New()
	stack.Push(r)
	for !stack.Empty() {
		top, _ := stack.Pop()
		node := top.(Rope)
		if p := node.pair; p != nil {
			stack.Push(p.right)
			stack.Push(p.left)
			continue
		}
		if node.leaf != "" && !fn(node.leaf) {
			return
		}
	}
}

// WriteTo writes the materialized rope to w.
func (r Rope) WriteTo(w io.Writer) (int64, error) {
	var total int64
	var err error
	r.Leaves(func(s string) bool {
		var n int
		n, err = io.WriteString(w, s)
		total += int64(n)
		return err == nil
	})
	return total, err
}

func (r Rope) String() string {
	if r.pair == nil {
		return r.leaf
	}
	var sb strings.Builder
	sb.Grow(r.Len())
	_, _ = r.WriteTo(&sb)
	return sb.String()
}
