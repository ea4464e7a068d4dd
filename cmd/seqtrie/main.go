package main

import (
	"os"

	"github.com/khalid-nowaf/seqtrie/pkg/cli"
	"github.com/sirupsen/logrus"
)

func main() {
	var c cli.CLI
	parser, err := cli.New(&c)
	if err != nil {
		logrus.WithError(err).Fatal("building command line parser")
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := c.Execute(ctx, os.Stdout, os.Stderr); err != nil {
		log := cli.NewLogger(c.LogLevel, os.Stderr)
		log.WithField("command", ctx.Command()).Error(err)
		os.Exit(1)
	}
}

