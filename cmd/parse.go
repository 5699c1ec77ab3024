package cmd

import (
	"fmt"

	"github.com/urfave/cli"
)

var parseCommand = cli.Command{
	Name:    "parse",
	Aliases: []string{"p"},
	Usage:   "Parse a program and print its tree",
	Action:  parse,
	Flags:   withFlags([]cli.Flag{inputFlag, verboseFlag}, grammarFlags),
}

func parse(c *cli.Context) error {
	setupLogging()
	calc, err := loadProgram()
	if err != nil {
		return err
	}
	fmt.Println(calc)
	return nil
}
