package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/m8kit/m8file/subcmd"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "m8file"
	app.Version = version
	app.Usage = "Inspects and splices Dirtywave M8 song and instrument files"
	app.HelpName = "m8file"

	app.Commands = []cli.Command{
		subcmd.Dump,
		subcmd.Splice,
	}

	app.Action = func(ctx *cli.Context) error {
		cli.ShowAppHelp(ctx)
		return nil
	}

	app.Run(os.Args)
}
