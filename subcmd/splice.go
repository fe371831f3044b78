package subcmd

import (
	"os"

	"github.com/urfave/cli"

	"github.com/m8kit/m8file/m8/log"
	"github.com/m8kit/m8file/m8/remap"
	"github.com/m8kit/m8file/m8/song"
)

var Splice = cli.Command{
	Name:      "splice",
	Aliases:   []string{"s"},
	Usage:     "Splices instruments, phrases and chains of a source song into free slots of a destination song",
	ArgsUsage: "<destination.m8s> <source.m8s>",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "output, o",
			Usage: `Output filename (defaults to overwriting the destination)`,
		},
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: `Show debug messages`,
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: `Suppress information messages`,
		},
		cli.BoolFlag{
			Name:  "silent, Q",
			Usage: `Do not output any messages`,
		},
	},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 2 {
			cli.ShowCommandHelp(ctx, "splice")
			os.Exit(1)
		}
		applyLogLevel(ctx)
		args := ctx.Args()

		dstData, err := os.ReadFile(args[0])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		dst, err := song.Read(dstData)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		srcData, err := os.ReadFile(args[1])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		src, err := song.Read(srcData)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		if err := remap.Splice(dst, src); err != nil {
			return cli.NewExitError(err, 1)
		}

		out := ctx.String("output")
		if out == "" {
			out = args[0]
		}
		if err := os.WriteFile(out, dst.Bytes(), 0644); err != nil {
			return cli.NewExitError(err, 1)
		}
		log.Infof("wrote %s", out)
		return nil
	},
}
