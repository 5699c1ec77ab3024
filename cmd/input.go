package cmd

import (
	"errors"
	"io/ioutil"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/progspace/ast"
	"github.com/arr-ai/progspace/infix"
	"github.com/arr-ai/progspace/parser"
)

var inFile string
var verboseMode bool
var grammar infix.Config

var inputFlag = cli.StringFlag{
	Name:        "input",
	Usage:       "input program file, or - for stdin",
	Required:    false,
	TakesFile:   true,
	Destination: &inFile,
}

var verboseFlag = cli.BoolFlag{
	Name:        "v",
	Usage:       "verbose logging",
	Destination: &verboseMode,
}

var grammarFlags = []cli.Flag{
	cli.BoolFlag{
		Name:        "tuples",
		Usage:       "enable tuple literals, indexing and append",
		Destination: &grammar.EnableTuples,
	},
	cli.BoolFlag{
		Name:        "require-parens",
		Usage:       "only accept tuple literals inside parentheses",
		Destination: &grammar.TuplesRequireParens,
	},
	cli.BoolFlag{
		Name:        "parser-tuples",
		Usage:       "recognise tuples while grouping parentheses; implies --require-parens",
		Destination: &grammar.UseParserTuples,
	},
}

func withFlags(groups ...[]cli.Flag) []cli.Flag {
	var flags []cli.Flag
	for _, g := range groups {
		flags = append(flags, g...)
	}
	return flags
}

func setupLogging() {
	if verboseMode {
		logrus.SetLevel(logrus.TraceLevel)
	}
}

func loadProgram() (*ast.Node, error) {
	calc, err := readProgram()
	var perr *parser.Error
	if errors.As(err, &perr) && !perr.At.IsNil() {
		logrus.Error(perr.At.Context())
	}
	return calc, err
}

func readProgram() (*ast.Node, error) {
	if grammar.UseParserTuples {
		grammar.TuplesRequireParens = true
	}
	if err := grammar.Sanity(); err != nil {
		return nil, err
	}

	switch inFile {
	case "", "-":
		buf, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return infix.ParseScanner(parser.NewScannerWithFilename(string(buf), "<stdin>"), grammar)
	default:
		return infix.ParseFile(inFile, grammar)
	}
}
