package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/arr-ai/progspace/infix"
)

var postfix bool
var writeCommand = cli.Command{
	Name:    "write",
	Aliases: []string{"w"},
	Usage:   "Write a program in canonical form",
	Action:  write,
	Flags: withFlags([]cli.Flag{
		inputFlag,
		verboseFlag,
		cli.BoolFlag{
			Name:        "postfix",
			Usage:       "write reverse Polish notation instead of infix",
			Destination: &postfix,
		},
	}, grammarFlags),
}

func write(c *cli.Context) error {
	setupLogging()
	calc, err := loadProgram()
	if err != nil {
		return err
	}

	writer := infix.Write
	if postfix {
		writer = infix.WritePostfix
	}
	out, err := writer(calc)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
