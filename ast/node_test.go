package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tagRoot   = NewTag("test", "Root", Scoped)
	tagPair   = NewTag("test", "PairOf", 0)
	tagNum    = NewTag("test", "Num", Printable)
	tagMarker = NewTag("test", "Marker", 0)
)

func num(s string) *Node {
	return NewText(tagNum, s)
}

func TestTagNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "test-pair-of", tagPair.String())
	assert.True(t, tagNum.Has(Printable))
	assert.False(t, tagPair.Has(Printable))
	assert.True(t, tagRoot.Has(Scoped))
	assert.True(t, tagNum.In(tagPair, tagNum))
	assert.False(t, tagNum.In(tagPair))
	assert.Equal(t, tagPair, NewTag("test", "PairOf", 0))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := New(tagPair, num("1"), num("2"))
	assert.True(t, a.Equal(New(tagPair, num("1"), num("2"))))
	assert.False(t, a.Equal(New(tagPair, num("1"), num("3"))))
	assert.False(t, a.Equal(New(tagPair, num("1"))))
	assert.False(t, a.Equal(New(tagRoot, num("1"), num("2"))))
	assert.False(t, a.Equal(nil))

	// text of non-printable tags is not significant
	assert.True(t, NewText(tagMarker, ",").Equal(NewText(tagMarker, "(")))
}

func TestPushDoesNotMutate(t *testing.T) {
	t.Parallel()

	root := New(tagRoot, num("1"))
	longer := root.Push(num("2"))
	assert.Len(t, root.Children, 1)
	assert.Len(t, longer.Children, 2)
	assert.Same(t, root.Front(), longer.Front())
	assert.Equal(t, "2", longer.Back().Text())
}

func TestCloneDropsSymbols(t *testing.T) {
	t.Parallel()

	root := New(tagRoot, num("1"))
	root.Symbols = root.Symbols.With("x", root.Front())
	def, ok := root.Lookup("x")
	require.True(t, ok)
	assert.Same(t, root.Front(), def)

	clone := root.Clone()
	assert.True(t, clone.Equal(root))
	assert.NotSame(t, root.Front(), clone.Front())
	_, ok = clone.Lookup("x")
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	t.Parallel()

	tree := New(tagRoot, New(tagPair, num("1"), num("2")), num("3"))
	assert.Equal(t,
		"test-root\n"+
			"├── test-pair-of\n"+
			"│   ├── test-num 1\n"+
			"│   └── test-num 2\n"+
			"└── test-num 3\n",
		tree.String())
}

func TestDiff(t *testing.T) {
	t.Parallel()

	a := New(tagRoot, New(tagPair, num("1"), num("2")), num("3"))
	assert.True(t, Diff(a, a.Clone()).Equal())
	assert.Empty(t, Diff(a, a.Clone()).String())

	b := New(tagRoot, New(tagPair, num("1"), num("9")), num("3"))
	d := Diff(a, b)
	assert.False(t, d.Equal())
	assert.Equal(t, "[test-root[0].test-pair-of[1]] Text: \"2\" != \"9\"\n", d.String())

	c := New(tagRoot, num("1"))
	assert.Contains(t, Diff(a, c).String(), "len(Children): 2 != 1")
}

func TestAnyAndWalk(t *testing.T) {
	t.Parallel()

	tree := New(tagRoot, New(tagPair, num("1"), New(tagMarker)), num("3"))
	assert.True(t, Any(tree, tagMarker))
	assert.False(t, Any(tree, NewTag("test", "Other", 0)))

	var labels []string
	Walk(tree, func(n *Node) bool {
		labels = append(labels, n.Label())
		return n.Tag != tagPair
	})
	assert.Equal(t, []string{"test-root", "test-pair-of", "test-num 3"}, labels)
}
