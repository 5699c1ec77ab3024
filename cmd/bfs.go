package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/progspace/roundtrip"
)

var bfsDepth int
var bfsOpCount int
var noVT100 bool
var bfsCommand = cli.Command{
	Name:    "bfs",
	Aliases: []string{"b"},
	Usage:   "Round-trip every spelling of every program up to a depth",
	Action:  bfs,
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:        "depth",
			Usage:       "deepest expression nesting to explore",
			Value:       2,
			Destination: &bfsDepth,
		},
		cli.IntFlag{
			Name:        "op-count",
			Usage:       "number of assignments per program",
			Value:       1,
			Destination: &bfsOpCount,
		},
		cli.BoolFlag{
			Name:        "no-vt100",
			Usage:       "plain log output without colours",
			Destination: &noVT100,
		},
		verboseFlag,
	},
}

func bfs(c *cli.Context) error {
	setupLogging()
	if noVT100 {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := roundtrip.Harness{
		MaxDepth:    bfsDepth,
		OpCount:     bfsOpCount,
		CheckWriter: true,
	}.Run(ctx)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"programs": stats.Programs,
		"cases":    stats.Cases,
		"rejected": stats.Rejected,
	}).Info("all ok")
	return nil
}
