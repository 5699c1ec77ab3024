package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/arr-ai/progspace/progspace"
)

var renderLimit int
var renderCommand = cli.Command{
	Name:    "render",
	Aliases: []string{"r"},
	Usage:   "Print every spelling of a program",
	Action:  render,
	Flags: withFlags([]cli.Flag{
		inputFlag,
		verboseFlag,
		cli.IntFlag{
			Name:        "limit",
			Usage:       "stop after this many spellings (0 for all)",
			Destination: &renderLimit,
		},
	}, grammarFlags),
}

func render(c *cli.Context) error {
	setupLogging()
	calc, err := loadProgram()
	if err != nil {
		return err
	}

	renderings := progspace.CalculationStrings(calc)
	if renderLimit > 0 {
		renderings = renderings.Take(renderLimit)
	}
	renderings.Each(func(r progspace.Rendering) bool {
		if r.TupleParensOmitted {
			fmt.Print("* ")
		} else {
			fmt.Print("  ")
		}
		if _, err = r.Text.WriteTo(os.Stdout); err != nil {
			return false
		}
		fmt.Println()
		return true
	})
	return err
}
