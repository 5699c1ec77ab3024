package infix

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/arr-ai/progspace/ast"
	"github.com/arr-ai/progspace/parser"
)

// Parse reads a calculation from src under cfg. On success the returned tree
// has a Calculation root with its symbol table built.
func Parse(src string, cfg Config) (*ast.Node, error) {
	return ParseScanner(parser.NewScanner(src), cfg)
}

// ParseFile is Parse for the contents of a file.
func ParseFile(path string, cfg Config) (*ast.Node, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, parser.NewError(*parser.NewScannerWithFilename("", path), "read", "cannot read input").Because(err)
	}
	return ParseScanner(parser.NewScannerWithFilename(string(buf), path), cfg)
}

func ParseScanner(src *parser.Scanner, cfg Config) (*ast.Node, error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parse{tokens: tokens, cfg: cfg}
	calc, err := p.calculation()
	if err != nil {
		if logrus.IsLevelEnabled(logrus.TraceLevel) {
			logrus.WithField("config", cfg).Tracef("rejected input: %v", err)
		}
		return nil, err
	}
	if err := BuildSymbols(calc); err != nil {
		return nil, err
	}
	return calc, nil
}

type parse struct {
	tokens []token
	pos    int
	cfg    Config
}

func (p *parse) peek() token {
	return p.tokens[p.pos]
}

func (p *parse) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parse) fail(t token, format string, args ...interface{}) error {
	return parser.NewError(t.loc, "parse", format, args...)
}

func (p *parse) expect(kind tokenKind) (token, error) {
	t := p.next()
	if t.kind != kind {
		if t.kind == tokComma {
			return t, p.fail(t, "Invalid use of comma")
		}
		return t, p.fail(t, "expected %v, found %v", kind, t.kind)
	}
	return t, nil
}

func leaf(tag ast.Tag, t token) *ast.Node {
	return &ast.Node{Tag: tag, Loc: t.loc}
}

func (p *parse) calculation() (*ast.Node, error) {
	var stmts []*ast.Node
	for p.peek().kind != tokEOF {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return ast.New(Calculation, stmts...), nil
}

func (p *parse) statement() (*ast.Node, error) {
	first := p.next()
	var stmt *ast.Node
	switch first.kind {
	case tokIdent:
		if _, err := p.expect(tokEquals); err != nil {
			return nil, p.fail(first, "Invalid assign")
		}
		value, err := p.topExpression()
		if err != nil {
			return nil, err
		}
		stmt = ast.New(Assign, leaf(Ident, first), value)
	case tokPrint:
		str, err := p.expect(tokString)
		if err != nil {
			return nil, p.fail(first, "Invalid output")
		}
		value, err := p.topExpression()
		if err != nil {
			return nil, err
		}
		stmt = ast.New(Output, leaf(String, str), value)
	default:
		return nil, p.fail(first, "syntax error")
	}
	if _, err := p.expect(tokSemi); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *parse) topExpression() (*ast.Node, error) {
	return p.tupleLevel(p.cfg.EnableTuples && !p.cfg.parensRequired())
}

func (p *parse) atListEnd() bool {
	switch p.peek().kind {
	case tokSemi, tokRParen, tokEOF:
		return true
	}
	return false
}

// tupleLevel parses the loosest-binding level, where commas build tuples if
// commaOK.
func (p *parse) tupleLevel(commaOK bool) (*ast.Node, error) {
	if commaOK && p.peek().kind == tokComma {
		comma := p.next()
		if !p.atListEnd() {
			return nil, p.fail(comma, "Invalid use of comma")
		}
		return Expr(leaf(Tuple, comma)), nil
	}
	first, err := p.additive()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokComma {
		return first, nil
	}
	if !commaOK {
		return nil, p.fail(p.peek(), "Invalid use of comma")
	}
	tuple := &ast.Node{Tag: Tuple, Loc: p.peek().loc, Children: []*ast.Node{first}}
	for p.peek().kind == tokComma {
		p.next()
		if p.atListEnd() {
			// one trailing comma, never more
			break
		}
		elem, err := p.additive()
		if err != nil {
			return nil, err
		}
		tuple.Children = append(tuple.Children, elem)
	}
	return Expr(tuple), nil
}

func (p *parse) binary(operand func() (*ast.Node, error), ops map[tokenKind]ast.Tag) (*ast.Node, error) {
	lhs, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		tag, has := ops[op.kind]
		if !has {
			return lhs, nil
		}
		p.next()
		rhs, err := operand()
		if err != nil {
			return nil, err
		}
		lhs = Expr(&ast.Node{Tag: tag, Loc: op.loc, Children: []*ast.Node{lhs, rhs}})
	}
}

var (
	additiveOps       = map[tokenKind]ast.Tag{tokAdd: Add, tokSubtract: Subtract}
	multiplicativeOps = map[tokenKind]ast.Tag{tokMultiply: Multiply, tokDivide: Divide}
	indexOps          = map[tokenKind]ast.Tag{tokDot: TupleIdx}
)

func (p *parse) additive() (*ast.Node, error) {
	return p.binary(p.multiplicative, additiveOps)
}

func (p *parse) multiplicative() (*ast.Node, error) {
	return p.binary(p.index, multiplicativeOps)
}

func (p *parse) index() (*ast.Node, error) {
	if !p.cfg.EnableTuples {
		lhs, err := p.primary()
		if err == nil && p.peek().kind == tokDot {
			return nil, p.fail(p.peek(), "Tuples are disabled.")
		}
		return lhs, err
	}
	return p.binary(p.primary, indexOps)
}

func (p *parse) primary() (*ast.Node, error) {
	t := p.next()
	switch t.kind {
	case tokInt:
		return Expr(leaf(Int, t)), nil
	case tokFloat:
		return Expr(leaf(Float, t)), nil
	case tokIdent:
		return Expr(ast.New(Ref, leaf(Ident, t))), nil
	case tokLParen:
		return p.paren(t)
	case tokAppend:
		return p.append(t)
	case tokString:
		return nil, p.fail(t, "Expressions cannot contain strings")
	case tokComma:
		return nil, p.fail(t, "Invalid use of comma")
	case tokSemi, tokRParen, tokEOF:
		return nil, p.fail(t, "Empty expression")
	}
	return nil, p.fail(t, "expected expression, found %v", t.kind)
}

// paren parses the rest of a parenthesised group whose '(' is open.
func (p *parse) paren(open token) (*ast.Node, error) {
	if p.peek().kind == tokRParen {
		p.next()
		if p.cfg.EnableTuples && p.cfg.TuplesRequireParens && !p.cfg.UseParserTuples {
			return Expr(leaf(Tuple, open)), nil
		}
		return nil, p.fail(open, "Invalid paren")
	}
	inner, err := p.tupleLevel(p.cfg.EnableTuples)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	return inner, nil
}

func (p *parse) append(kw token) (*ast.Node, error) {
	if !p.cfg.EnableTuples {
		return nil, p.fail(kw, "Tuples are disabled.")
	}
	open := p.next()
	if open.kind != tokLParen {
		return nil, p.fail(kw, "Invalid append")
	}
	args, err := p.paren(open)
	if err != nil {
		return nil, err
	}
	if args.Front().Tag != Tuple {
		return nil, p.fail(kw, "Invalid use of append")
	}
	return Expr(&ast.Node{Tag: Append, Loc: kw.loc, Children: args.Front().Children}), nil
}
