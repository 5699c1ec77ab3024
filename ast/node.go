package ast

import (
	"fmt"

	"github.com/arr-ai/frozen"
	"github.com/iancoleman/strcase"

	"github.com/arr-ai/progspace/parser"
)

// Flag describes how nodes of a tag behave.
type Flag uint8

const (
	// Printable tags carry significant source text: it is shown in tree views
	// and compared by Equal.
	Printable Flag = 1 << iota
	// Scoped tags own a symbol table.
	Scoped
)

// Tag identifies the kind of a node. Tags are comparable values.
type Tag struct {
	name  string
	flags Flag
}

// NewTag declares a tag named "<lang>-<kebab-case name>".
func NewTag(lang, name string, flags Flag) Tag {
	return Tag{name: lang + "-" + strcase.ToKebab(name), flags: flags}
}

func (t Tag) String() string {
	return t.name
}

func (t Tag) Has(f Flag) bool {
	return t.flags&f != 0
}

// In reports whether t is any of tags.
func (t Tag) In(tags ...Tag) bool {
	for _, tag := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Node is an abstract syntax tree node. Nodes are treated as immutable once
// built: trees share subtrees freely, so use Clone before changing anything.
type Node struct {
	Tag      Tag
	Loc      parser.Scanner
	Children []*Node

	// Symbols is the symbol table of a Scoped node, populated by a language's
	// symbol-table build. It never takes part in equality.
	Symbols frozen.Map[string, *Node]
}

// New returns a node without source text.
func New(tag Tag, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

// NewText returns a node whose location is a synthetic source holding text.
func NewText(tag Tag, text string, children ...*Node) *Node {
	return &Node{Tag: tag, Loc: *parser.NewScanner(text), Children: children}
}

// Text is the source text of the node, or "" if it has none.
func (n *Node) Text() string {
	return n.Loc.String()
}

func (n *Node) Front() *Node {
	return n.Children[0]
}

func (n *Node) Back() *Node {
	return n.Children[len(n.Children)-1]
}

// Push returns a copy of n with children appended. n itself is unchanged.
func (n *Node) Push(children ...*Node) *Node {
	kids := make([]*Node, 0, len(n.Children)+len(children))
	kids = append(kids, n.Children...)
	kids = append(kids, children...)
	return &Node{Tag: n.Tag, Loc: n.Loc, Children: kids}
}

// Clone deep-copies the tree. Symbol tables are not copied; rebuild them on
// the clone.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	kids := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		kids = append(kids, c.Clone())
	}
	return &Node{Tag: n.Tag, Loc: n.Loc, Children: kids}
}

// Lookup finds name in the symbol table of n.
func (n *Node) Lookup(name string) (*Node, bool) {
	return n.Symbols.Get(name)
}

// Equal is structural equality: same tag, same text for printable tags, and
// pairwise equal children.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Tag != other.Tag || len(n.Children) != len(other.Children) {
		return false
	}
	if n.Tag.Has(Printable) && n.Text() != other.Text() {
		return false
	}
	for i, c := range n.Children {
		if !c.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// Label is the one-line description of n used in tree views.
func (n *Node) Label() string {
	if n.Tag.Has(Printable) {
		return fmt.Sprintf("%s %s", n.Tag, n.Text())
	}
	return n.Tag.String()
}
