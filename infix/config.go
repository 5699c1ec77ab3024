package infix

import (
	"fmt"
)

// Config selects which grammar features the parser accepts.
type Config struct {
	// UseParserTuples recognises tuples while grouping parentheses rather than
	// in a later pass. Tuples must then be parenthesised.
	UseParserTuples bool
	// EnableTuples turns on tuple literals, tuple indexing and append.
	EnableTuples bool
	// TuplesRequireParens rejects tuple literals outside parentheses. When
	// false, comma is a lowest-precedence infix operator.
	TuplesRequireParens bool
}

// Sanity reports configurations that make no sense.
func (c Config) Sanity() error {
	if c.UseParserTuples && !c.TuplesRequireParens {
		return fmt.Errorf("parser tuples require parens: %v", c)
	}
	if (c.UseParserTuples || c.TuplesRequireParens) && !c.EnableTuples {
		return fmt.Errorf("tuple options given without enabling tuples: %v", c)
	}
	return nil
}

// parensRequired reports whether a comma must appear directly inside
// parentheses.
func (c Config) parensRequired() bool {
	return c.UseParserTuples || c.TuplesRequireParens
}

func (c Config) String() string {
	return fmt.Sprintf("{parser_tuples=%v tuples=%v require_parens=%v}",
		c.UseParserTuples, c.EnableTuples, c.TuplesRequireParens)
}
