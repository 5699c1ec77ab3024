package progspace

import (
	"github.com/go-errors/errors"

	"github.com/arr-ai/progspace/ast"
	"github.com/arr-ai/progspace/infix"
	"github.com/arr-ai/progspace/lazy"
	"github.com/arr-ai/progspace/rope"
)

// Rendering is one spelling of a tree.
type Rendering struct {
	Text rope.Rope
	// TupleParensOmitted is set if some tuple literal in Text is written
	// without its surrounding parentheses.
	TupleParensOmitted bool
}

func (r Rendering) String() string {
	return r.Text.String()
}

func (r Rendering) parensOmitted() Rendering {
	return Rendering{Text: r.Text, TupleParensOmitted: true}
}

func (r Rendering) concat(other Rendering) Rendering {
	return Rendering{
		Text:               r.Text.Concat(other.Text),
		TupleParensOmitted: r.TupleParensOmitted || other.TupleParensOmitted,
	}
}

// Renderings is a lazy stream of spellings.
type Renderings = lazy.Stream[Rendering]

func lit(s string) Renderings {
	return lazy.Single(Rendering{Text: rope.FromString(s)})
}

// cat is the cartesian product of lhs and rhs, joined pairwise.
func cat(lhs, rhs Renderings) Renderings {
	return lazy.FlatMap(lhs, func(prefix Rendering) Renderings {
		return lazy.Map(rhs, prefix.concat)
	})
}

func catAll(parts ...Renderings) Renderings {
	result := lit("")
	for _, part := range parts {
		result = cat(result, part)
	}
	return result
}

// Precedence levels, loosest first. A larger level binds tighter.
const (
	levelStatement = -4
	levelTuple     = -3
	levelAddSub    = -2
	levelMulDiv    = -1
	levelTupleIdx  = 0
)

var binopLevels = map[ast.Tag]int{
	infix.TupleIdx: levelTupleIdx,
	infix.Multiply: levelMulDiv,
	infix.Divide:   levelMulDiv,
	infix.Add:      levelAddSub,
	infix.Subtract: levelAddSub,
}

// GroupPrecedence is the rendering context of a position in the output.
type GroupPrecedence struct {
	// Level is the precedence an operator must exceed to appear here without
	// parentheses.
	Level int
	// AllowAssoc also admits an operator of exactly Level. It holds for the
	// left operand of a left-associative operator.
	AllowAssoc bool
}

// TopLevel is the context of a statement's value.
var TopLevel = GroupPrecedence{Level: levelStatement}

func (p GroupPrecedence) WithLevel(level int) GroupPrecedence {
	return GroupPrecedence{Level: level, AllowAssoc: p.AllowAssoc}
}

func (p GroupPrecedence) WithAssoc(allow bool) GroupPrecedence {
	return GroupPrecedence{Level: p.Level, AllowAssoc: allow}
}

// Accepts reports whether an operator of the given level may appear bare.
func (p GroupPrecedence) Accepts(level int) bool {
	return level > p.Level || (level == p.Level && p.AllowAssoc)
}

// wrapGroup renders an operator of the given level with fn. If the context
// accepts the level, the bare form comes first and the parenthesised form
// follows lazily; otherwise only the parenthesised form is valid.
func (p GroupPrecedence) wrapGroup(level int, fn func(GroupPrecedence) Renderings) Renderings {
	grouped := func() Renderings {
		return catAll(lit("("), fn(GroupPrecedence{Level: level}), lit(")"))
	}
	if p.Accepts(level) {
		return fn(p.WithLevel(level).WithAssoc(false)).Concat(grouped)
	}
	return grouped()
}

// ExpressionStrings enumerates every spelling of an Expression node in the
// given context.
func ExpressionStrings(p GroupPrecedence, expr *ast.Node) Renderings {
	if expr.Tag != infix.Expression || len(expr.Children) != 1 {
		panic(errors.Errorf("not an expression:\n%v", expr))
	}
	node := expr.Front()
	if node.Tag == infix.Ref {
		node = node.Front()
	}

	switch {
	case node.Tag.In(infix.Int, infix.Float, infix.String, infix.Ident):
		return lit(node.Text())
	case node.Tag == infix.Tuple:
		return tupleStrings(p, node)
	case node.Tag == infix.Append:
		return catAll(lit("append("), commaSeparated(node), lit(")"))
	}

	level, isBinop := binopLevels[node.Tag]
	if !isBinop {
		panic(errors.Errorf("cannot render %v", node.Tag))
	}
	op := " " + node.Text() + " "
	return p.wrapGroup(level, func(p GroupPrecedence) Renderings {
		return catAll(
			ExpressionStrings(p.WithAssoc(true), node.Front()),
			lit(op),
			ExpressionStrings(p.WithAssoc(false), node.Back()),
		)
	})
}

// commaSeparated renders the children of a tuple or append. The trailing
// comma is mandatory below two elements and optional from two up.
func commaSeparated(node *ast.Node) Renderings {
	p := GroupPrecedence{Level: levelTuple}
	result := lit("")
	for i, child := range node.Children {
		if i > 0 {
			result = cat(result, lit(", "))
		}
		result = cat(result, ExpressionStrings(p, child))
	}
	if len(node.Children) < 2 {
		return cat(result, lit(","))
	}
	bare := result
	return bare.Concat(func() Renderings { return cat(bare, lit(",")) })
}

func tupleStrings(p GroupPrecedence, node *ast.Node) Renderings {
	// tuples of size 0 or 1 always need their parentheses
	omittable := len(node.Children) > 1 && p.Accepts(levelTuple)
	withParens := func() Renderings {
		return catAll(lit("("), commaSeparated(node), lit(")"))
	}
	if !omittable {
		return withParens()
	}
	return lazy.Map(commaSeparated(node), Rendering.parensOmitted).Concat(withParens)
}

// StatementStrings enumerates every spelling of an Assign or Output
// statement, including its terminating semicolon.
func StatementStrings(stmt *ast.Node) Renderings {
	switch {
	case stmt.Tag == infix.Assign && len(stmt.Children) == 2 && stmt.Front().Tag == infix.Ident:
		return catAll(
			lit(stmt.Front().Text()),
			lit(" = "),
			ExpressionStrings(TopLevel, stmt.Back()),
			lit(";"),
		)
	case stmt.Tag == infix.Output && len(stmt.Children) == 2 && stmt.Front().Tag == infix.String:
		return catAll(
			lit("print "),
			lit(stmt.Front().Text()),
			lit(" "),
			ExpressionStrings(TopLevel, stmt.Back()),
			lit(";"),
		)
	}
	panic(errors.Errorf("not a statement:\n%v", stmt))
}

// CalculationStrings enumerates every spelling of a whole program.
// Statements are concatenated without separators.
func CalculationStrings(calc *ast.Node) Renderings {
	if calc.Tag != infix.Calculation {
		panic(errors.Errorf("not a calculation:\n%v", calc))
	}
	result := lit("")
	for _, stmt := range calc.Children {
		result = cat(result, StatementStrings(stmt))
	}
	return result
}
