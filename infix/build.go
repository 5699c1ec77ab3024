package infix

import (
	"github.com/arr-ai/progspace/ast"
)

// OpText is the source spelling of each binary operator.
var OpText = map[ast.Tag]string{
	Add:      "+",
	Subtract: "-",
	Multiply: "*",
	Divide:   "/",
	TupleIdx: ".",
}

// Expr wraps an operand in an Expression node.
func Expr(child *ast.Node) *ast.Node {
	return ast.New(Expression, child)
}

func IntLit(text string) *ast.Node {
	return Expr(ast.NewText(Int, text))
}

func RefTo(name string) *ast.Node {
	return Expr(ast.New(Ref, ast.NewText(Ident, name)))
}

// BinOp builds a binary operation. The node's text is the operator spelling,
// which writers and printers read back.
func BinOp(op ast.Tag, lhs, rhs *ast.Node) *ast.Node {
	return Expr(ast.NewText(op, OpText[op], lhs, rhs))
}

func TupleOf(elems ...*ast.Node) *ast.Node {
	return Expr(ast.New(Tuple, elems...))
}

func AppendOf(elems ...*ast.Node) *ast.Node {
	return Expr(ast.New(Append, elems...))
}

func AssignTo(name string, value *ast.Node) *ast.Node {
	return ast.New(Assign, ast.NewText(Ident, name), value)
}

// PrintOf builds an output statement; str includes its quotes.
func PrintOf(str string, value *ast.Node) *ast.Node {
	return ast.New(Output, ast.NewText(String, str), value)
}

func Calc(stmts ...*ast.Node) *ast.Node {
	return ast.New(Calculation, stmts...)
}
