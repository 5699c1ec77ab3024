// Package gotree builds and prints text trees.
package gotree

import (
	"strings"
)

const (
	newLine      = "\n"
	emptySpace   = "    "
	middleItem   = "├── "
	continueItem = "│   "
	lastItem     = "└── "
)

type tree struct {
	text  string
	items []Tree
}

// Tree is a labelled node with ordered children.
type Tree interface {
	Add(text string) Tree
	AddTree(tree Tree)
	Items() []Tree
	Text() string
	Print() string
}

// New returns a tree with a single root labelled text.
func New(text string) Tree {
	return &tree{text: text}
}

// Add appends a new leaf and returns it.
func (t *tree) Add(text string) Tree {
	n := New(text)
	t.items = append(t.items, n)
	return n
}

func (t *tree) AddTree(tree Tree) {
	t.items = append(t.items, tree)
}

func (t *tree) Text() string {
	return t.text
}

func (t *tree) Items() []Tree {
	return t.items
}

// Print renders the tree, one node per line, children indented under their
// parent. Multi-line labels stay aligned with their branch.
func (t *tree) Print() string {
	var sb strings.Builder
	sb.WriteString(t.text)
	sb.WriteString(newLine)
	printItems(&sb, t.items, "")
	return sb.String()
}

func printItems(sb *strings.Builder, items []Tree, indent string) {
	for i, item := range items {
		last := i == len(items)-1
		indicator, cont := middleItem, continueItem
		if last {
			indicator, cont = lastItem, emptySpace
		}
		for j, line := range strings.Split(item.Text(), newLine) {
			sb.WriteString(indent)
			if j == 0 {
				sb.WriteString(indicator)
			} else {
				sb.WriteString(cont)
			}
			sb.WriteString(line)
			sb.WriteString(newLine)
		}
		printItems(sb, item.Items(), indent+cont)
	}
}
