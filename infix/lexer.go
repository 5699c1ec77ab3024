package infix

import (
	"regexp"

	"github.com/arr-ai/progspace/parser"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokEquals
	tokComma
	tokDot
	tokSemi
	tokLParen
	tokRParen
	tokFloat
	tokString
	tokInt
	tokPrint
	tokAppend
	tokIdent
	tokAdd
	tokSubtract
	tokMultiply
	tokDivide
)

var tokenNames = map[tokenKind]string{
	tokEOF:      "end of input",
	tokEquals:   "'='",
	tokComma:    "','",
	tokDot:      "'.'",
	tokSemi:     "';'",
	tokLParen:   "'('",
	tokRParen:   "')'",
	tokFloat:    "float",
	tokString:   "string",
	tokInt:      "int",
	tokPrint:    "print",
	tokAppend:   "append",
	tokIdent:    "identifier",
	tokAdd:      "'+'",
	tokSubtract: "'-'",
	tokMultiply: "'*'",
	tokDivide:   "'/'",
}

func (k tokenKind) String() string {
	return tokenNames[k]
}

type token struct {
	kind tokenKind
	loc  parser.Scanner
}

type lexRule struct {
	re   *regexp.Regexp
	kind tokenKind
	skip bool
}

// Rules are tried in order at each position; the first match wins.
var lexRules = []lexRule{
	{re: regexp.MustCompile(`\A\s+`), skip: true},
	{re: regexp.MustCompile(`\A=`), kind: tokEquals},
	{re: regexp.MustCompile(`\A,`), kind: tokComma},
	{re: regexp.MustCompile(`\A\.`), kind: tokDot},
	{re: regexp.MustCompile(`\A;`), kind: tokSemi},
	{re: regexp.MustCompile(`\A\(`), kind: tokLParen},
	{re: regexp.MustCompile(`\A\)`), kind: tokRParen},
	{re: regexp.MustCompile(`\A[[:digit:]]+\.[[:digit:]]+(?:e[+-]?[[:digit:]]+)?\b`), kind: tokFloat},
	{re: regexp.MustCompile(`\A"[^"]*"`), kind: tokString},
	{re: regexp.MustCompile(`\A[[:digit:]]+\b`), kind: tokInt},
	{re: regexp.MustCompile(`\A//[^\n\r]*(?:\r\n?|\n|\z)`), skip: true},
	{re: regexp.MustCompile(`\Aprint\b`), kind: tokPrint},
	{re: regexp.MustCompile(`\Aappend\b`), kind: tokAppend},
	{re: regexp.MustCompile(`\A[_[:alpha:]][_[:alnum:]]*\b`), kind: tokIdent},
	{re: regexp.MustCompile(`\A\+`), kind: tokAdd},
	{re: regexp.MustCompile(`\A-`), kind: tokSubtract},
	{re: regexp.MustCompile(`\A\*`), kind: tokMultiply},
	{re: regexp.MustCompile(`\A/`), kind: tokDivide},
}

// lex splits the whole input into tokens, ending with a tokEOF token.
func lex(src *parser.Scanner) ([]token, error) {
	var tokens []token
	for src.Len() > 0 {
		matched := false
		for _, rule := range lexRules {
			var match parser.Scanner
			if src.EatRegexp(rule.re, &match) {
				if !rule.skip {
					tokens = append(tokens, token{kind: rule.kind, loc: match})
				}
				matched = true
				break
			}
		}
		if !matched {
			return nil, parser.NewError(*src.Slice(0, 1), "lex", "unexpected character")
		}
	}
	var end parser.Scanner
	src.Eat(0, &end)
	return append(tokens, token{kind: tokEOF, loc: end}), nil
}
