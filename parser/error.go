package parser

import (
	"fmt"

	"github.com/arr-ai/progspace/gotree"
)

// Error is a parse failure anchored at the offending token.
type Error struct {
	At      Scanner
	Pass    string // the parsing stage that rejected the input
	Message string
	causes  []error
}

func NewError(at Scanner, pass, format string, args ...interface{}) *Error {
	return &Error{At: at, Pass: pass, Message: fmt.Sprintf(format, args...)}
}

// Because attaches underlying errors that are reported beneath this one.
func (e *Error) Because(causes ...error) *Error {
	e.causes = append(e.causes, causes...)
	return e
}

func (e *Error) Error() string {
	tree := gotree.New("parse failed")
	e.walkErrors(tree)
	return tree.Print()
}

func (e *Error) Unwrap() []error {
	return e.causes
}

func (e *Error) walkErrors(parent gotree.Tree) {
	line, col := e.At.Position()
	x := parent.Add(fmt.Sprintf("%s: %d:%d: %s (at %q)", e.Pass, line, col, e.Message, e.At.String()))
	for _, cause := range e.causes {
		if pe, ok := cause.(*Error); ok {
			pe.walkErrors(x)
		} else {
			x.Add(cause.Error())
		}
	}
}
