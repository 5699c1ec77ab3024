// Package progspace enumerates the space of small infix programs and every
// surface spelling of each one.
//
// Everything here is built from lazy streams, so the combinatorial blow-up of
// programs and renderings is only paid for as far as a consumer iterates. All
// functions are pure: streams recompute their continuations on every visit.
package progspace

import (
	"github.com/arr-ai/frozen"
	"github.com/go-errors/errors"

	"github.com/arr-ai/progspace/ast"
	"github.com/arr-ai/progspace/infix"
	"github.com/arr-ai/progspace/lazy"
)

// Env is the set of variable names declared so far.
type Env = frozen.Set[string]

// Nodes is a lazy stream of trees.
type Nodes = lazy.Stream[*ast.Node]

// CandidateNames are the variables assigned by generated calculations, in
// statement order.
var CandidateNames = []string{"foo", "bar", "ping", "bnorg"}

func stringLess(a, b string) bool {
	return a < b
}

// ValidExpression enumerates every Expression tree of exactly the given
// nesting depth whose references are all drawn from env.
func ValidExpression(env Env, depth int) Nodes {
	if depth == 0 {
		names := env.OrderedElements(stringLess)
		return lazy.Of(infix.IntLit("0"), infix.IntLit("1")).
			Concat(func() Nodes {
				return lazy.Map(lazy.Of(names...), infix.RefTo)
			}).
			Concat(func() Nodes { return lazy.Single(infix.TupleOf()) }).
			Concat(func() Nodes { return lazy.Single(infix.AppendOf()) })
	}

	sub := ValidExpression(env, depth-1)
	return lazy.FlatMap(sub, func(lhs *ast.Node) Nodes {
		return lazy.Of(infix.TupleOf(lhs), infix.AppendOf(lhs)).
			Concat(func() Nodes {
				return lazy.FlatMap(sub, func(rhs *ast.Node) Nodes {
					return lazy.Of(
						infix.BinOp(infix.Add, lhs, rhs),
						infix.BinOp(infix.Subtract, lhs, rhs),
						infix.BinOp(infix.Multiply, lhs, rhs),
						infix.BinOp(infix.Divide, lhs, rhs),
						infix.TupleOf(lhs, rhs),
						infix.AppendOf(lhs, rhs),
						infix.BinOp(infix.TupleIdx, lhs, rhs),
					)
				})
			})
	})
}

// ValidAssignment pairs name with every expression of the given depth.
func ValidAssignment(env Env, name string, depth int) Nodes {
	return lazy.Map(ValidExpression(env, depth), func(value *ast.Node) *ast.Node {
		return infix.AssignTo(name, value)
	})
}

type partial struct {
	calc *ast.Node
	env  Env
}

// ValidCalculation enumerates every Calculation of opCount assignments whose
// values have the given depth. Statement i assigns CandidateNames[i] and may
// refer to any name assigned before it. Asking for more statements than there
// are candidate names is a programming error and panics.
func ValidCalculation(opCount, depth int) Nodes {
	if opCount < 0 || opCount > len(CandidateNames) {
		panic(errors.Errorf("op count %d outside [0, %d]", opCount, len(CandidateNames)))
	}
	partials := lazy.Single(partial{calc: infix.Calc()})
	for _, name := range CandidateNames[:opCount] {
		name := name
		partials = lazy.FlatMap(partials, func(p partial) lazy.Stream[partial] {
			return lazy.Map(ValidAssignment(p.env, name, depth), func(assign *ast.Node) partial {
				return partial{calc: p.calc.Push(assign), env: p.env.With(name)}
			})
		})
	}
	return lazy.Map(partials, func(p partial) *ast.Node { return p.calc })
}
