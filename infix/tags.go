// Package infix is a small calculator language: assignments and print
// statements over integer and float arithmetic, optionally extended with tuple
// literals, tuple indexing and tuple append.
package infix

import "github.com/arr-ai/progspace/ast"

const lang = "infix"

var (
	Int    = ast.NewTag(lang, "Int", ast.Printable)
	Float  = ast.NewTag(lang, "Float", ast.Printable)
	String = ast.NewTag(lang, "String", ast.Printable)
	Ident  = ast.NewTag(lang, "Ident", ast.Printable)

	Calculation = ast.NewTag(lang, "Calculation", ast.Scoped)
	Expression  = ast.NewTag(lang, "Expression", 0)
	Assign      = ast.NewTag(lang, "Assign", 0)
	Output      = ast.NewTag(lang, "Output", 0)
	Ref         = ast.NewTag(lang, "Ref", 0)

	Add      = ast.NewTag(lang, "Add", 0)
	Subtract = ast.NewTag(lang, "Subtract", 0)
	Multiply = ast.NewTag(lang, "Multiply", 0)
	Divide   = ast.NewTag(lang, "Divide", 0)

	// --- tuples extension ---
	Tuple    = ast.NewTag(lang, "Tuple", 0)
	TupleIdx = ast.NewTag(lang, "TupleIdx", 0)
	Append   = ast.NewTag(lang, "Append", 0)
)

// TupleOps are the tags that only exist when tuples are enabled.
var TupleOps = []ast.Tag{Tuple, TupleIdx, Append}
