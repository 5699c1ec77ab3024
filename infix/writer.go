package infix

import (
	"fmt"
	"strings"

	"github.com/arr-ai/progspace/ast"
)

// Write renders a tree in canonical infix form: every operation is fully
// parenthesised and every tuple carries its trailing comma, so the output
// parses back under any configuration that enables the features used.
func Write(node *ast.Node) (string, error) {
	var sb strings.Builder
	if err := writeInfix(&sb, node); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeInfix(sb *strings.Builder, node *ast.Node) error {
	for node.Tag == Expression || node.Tag == Ref {
		node = node.Front()
	}

	switch {
	case node.Tag.In(Int, Float, String, Ident):
		sb.WriteString(node.Text())
	case node.Tag.In(Add, Subtract, Multiply, Divide):
		sb.WriteString("(")
		if err := writeInfix(sb, node.Front()); err != nil {
			return err
		}
		fmt.Fprintf(sb, " %s ", node.Text())
		if err := writeInfix(sb, node.Back()); err != nil {
			return err
		}
		sb.WriteString(")")
	case node.Tag.In(Tuple, Append):
		if node.Tag == Append {
			sb.WriteString("append")
		}
		sb.WriteString("(")
		for i, child := range node.Children {
			if i > 0 {
				sb.WriteString(", ")
			}
			if err := writeInfix(sb, child); err != nil {
				return err
			}
		}
		sb.WriteString(",)")
	case node.Tag == TupleIdx:
		sb.WriteString("(")
		if err := writeInfix(sb, node.Front()); err != nil {
			return err
		}
		sb.WriteString(").(")
		if err := writeInfix(sb, node.Back()); err != nil {
			return err
		}
		sb.WriteString(")")
	case node.Tag == Assign:
		if err := writeInfix(sb, node.Front()); err != nil {
			return err
		}
		sb.WriteString(" = ")
		if err := writeInfix(sb, node.Back()); err != nil {
			return err
		}
		sb.WriteString(";\n")
	case node.Tag == Output:
		sb.WriteString("print ")
		if err := writeInfix(sb, node.Front()); err != nil {
			return err
		}
		sb.WriteString(" ")
		if err := writeInfix(sb, node.Back()); err != nil {
			return err
		}
		sb.WriteString(";\n")
	case node.Tag == Calculation:
		for _, step := range node.Children {
			if err := writeInfix(sb, step); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown node type %v", node.Tag)
	}
	return nil
}

// WritePostfix renders the arithmetic subset in reverse Polish notation, one
// statement per line. Tuple operations have no postfix form.
func WritePostfix(node *ast.Node) (string, error) {
	var sb strings.Builder
	if err := writePostfix(&sb, node); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writePostfix(sb *strings.Builder, node *ast.Node) error {
	for node.Tag == Expression || node.Tag == Ref {
		node = node.Front()
	}

	switch {
	case node.Tag.In(Int, Float, String, Ident):
		sb.WriteString(node.Text())
	case node.Tag.In(Add, Subtract, Multiply, Divide):
		if err := writePostfix(sb, node.Front()); err != nil {
			return err
		}
		sb.WriteString(" ")
		if err := writePostfix(sb, node.Back()); err != nil {
			return err
		}
		fmt.Fprintf(sb, " %s", node.Text())
	case node.Tag.In(Assign, Output):
		if err := writePostfix(sb, node.Front()); err != nil {
			return err
		}
		sb.WriteString(" ")
		if err := writePostfix(sb, node.Back()); err != nil {
			return err
		}
		if node.Tag == Assign {
			sb.WriteString(" =\n")
		} else {
			sb.WriteString(" print\n")
		}
	case node.Tag == Calculation:
		for _, step := range node.Children {
			if err := writePostfix(sb, step); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown node type %v", node.Tag)
	}
	return nil
}
