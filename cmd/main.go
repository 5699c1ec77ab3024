package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type VersionTags struct {
	Version   string
	GitCommit string
	BuildDate string
	BuildOS   string
}

func Main(info VersionTags) {
	app := cli.NewApp()

	app.EnableBashCompletion = true

	app.Name = "progspace"
	app.Usage = "enumerate infix programs and check that every spelling parses back"
	app.Version = info.Version

	app.Commands = []cli.Command{bfsCommand, parseCommand, renderCommand, writeCommand}

	err := app.Run(os.Args)
	if err != nil {
		logrus.Fatal(err)
	}
}
