package infix

import (
	"fmt"

	"github.com/arr-ai/frozen"

	"github.com/arr-ai/progspace/ast"
	"github.com/arr-ai/progspace/parser"
)

// BuildSymbols rebuilds the symbol table of a Calculation. Each name maps to
// the latest Assign defining it. Every reference must name a variable that an
// earlier statement assigned; a statement cannot see its own assignment.
func BuildSymbols(calc *ast.Node) error {
	if calc == nil || calc.Tag != Calculation {
		return fmt.Errorf("symbol table root must be %v", Calculation)
	}
	var defs frozen.Map[string, *ast.Node]
	for _, stmt := range calc.Children {
		if !stmt.Tag.In(Assign, Output) || len(stmt.Children) != 2 {
			return fmt.Errorf("malformed statement:\n%v", stmt)
		}
		if err := checkRefs(defs, stmt.Back()); err != nil {
			return err
		}
		if stmt.Tag == Assign {
			defs = defs.With(stmt.Front().Text(), stmt)
		}
	}
	calc.Symbols = defs
	return nil
}

func checkRefs(defs frozen.Map[string, *ast.Node], expr *ast.Node) error {
	var err error
	ast.Walk(expr, func(n *ast.Node) bool {
		if err != nil {
			return false
		}
		if n.Tag == Ref {
			id := n.Front()
			if !defs.Has(id.Text()) {
				err = parser.NewError(id.Loc, "check_refs", "undefined")
			}
			return false
		}
		return true
	})
	return err
}
