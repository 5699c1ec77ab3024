package roundtrip

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/arr-ai/progspace/ast"
	"github.com/arr-ai/progspace/infix"
	"github.com/arr-ai/progspace/progspace"
)

// Kind classifies a failed round trip.
type Kind int

const (
	// UnexpectedFailure: the parser rejected a rendering it should accept.
	UnexpectedFailure Kind = iota
	// UnexpectedSuccess: the parser reproduced the program from a rendering
	// the configuration should reject.
	UnexpectedSuccess
	// Mismatch: the parser accepted the rendering but built a different tree.
	Mismatch
)

func (k Kind) String() string {
	switch k {
	case UnexpectedFailure:
		return "unexpected parse failure"
	case UnexpectedSuccess:
		return "unexpected parse success"
	case Mismatch:
		return "reparsed tree differs"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Failure is the counterexample that stops a run.
type Failure struct {
	Kind      Kind
	Config    infix.Config
	Program   *ast.Node
	Rendering progspace.Rendering
	// Parsed is nil for UnexpectedFailure.
	Parsed *ast.Node
	// Err is the parse error for UnexpectedFailure.
	Err error
}

func (f *Failure) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v under %v\n", f.Kind, f.Config)
	fmt.Fprintf(&sb, "program:\n%v\n", f.Program)
	fmt.Fprintf(&sb, "rendered:\n%s\n", f.Rendering)
	switch f.Kind {
	case UnexpectedFailure:
		fmt.Fprintf(&sb, "error:\n%v\n", f.Err)
	case Mismatch:
		fmt.Fprintf(&sb, "reparsed (diff):\n%s", lineDiff(f.Program.String(), f.Parsed.String()))
		fmt.Fprintf(&sb, "%v\n", ast.Diff(f.Program, f.Parsed))
	}
	return sb.String()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func lineDiff(expected, actual string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "generated",
		ToFile:   "reparsed",
		Context:  3,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}
