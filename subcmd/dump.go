package subcmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/m8kit/m8file/m8/fx"
	"github.com/m8kit/m8file/m8/instrument"
	"github.com/m8kit/m8file/m8/log"
	"github.com/m8kit/m8file/m8/song"
	"github.com/m8kit/m8file/m8/version"
)

var Dump = cli.Command{
	Name:      "dump",
	Aliases:   []string{"d"},
	Usage:     "Dumps M8 song or instrument files (.m8s|.m8i)",
	ArgsUsage: "<filename>",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "json, j",
			Usage: `Dumps in JSON format`,
		},
		cli.BoolFlag{
			Name:  "commands, c",
			Usage: `Dumps the FX command table for the file's version`,
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
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "dump")
			os.Exit(1)
		}
		applyLogLevel(ctx)
		file := ctx.Args()[0]
		data, err := os.ReadFile(file)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		var dumped interface{}
		var ver version.Version
		switch ext(file) {
		case ".m8s":
			s, err := song.Read(data)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			dumped = s
			ver = s.Version
		case ".m8i":
			inst, v, err := instrument.ReadFile(data)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			dumped = inst
			ver = v
		default:
			return cli.NewExitError(fmt.Errorf("unknown file extension"), 1)
		}

		if ctx.Bool("commands") {
			printCommands(ver, dumped)
			return nil
		}
		if ctx.Bool("json") {
			j, err := json.MarshalIndent(dumped, "", "  ")
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			fmt.Println(string(j))
			return nil
		}
		fmt.Println(dumped.(fmt.Stringer).String())
		return nil
	},
}

func ext(file string) string {
	i := strings.LastIndex(file, ".")
	if i < 0 {
		return ""
	}
	return strings.ToLower(file[i:])
}

func applyLogLevel(ctx *cli.Context) {
	if ctx.Bool("debug") {
		log.Level = log.LogLevel_Debug
	} else if ctx.Bool("silent") {
		log.Level = log.LogLevel_None
	} else if ctx.Bool("quiet") {
		log.Level = log.LogLevel_Warn
	}
}

func printCommands(ver version.Version, dumped interface{}) {
	cmds := fx.CommandNames(ver)
	for id := 0; id < cmds.Len(); id++ {
		name, _ := cmds.TryRender(uint8(id))
		fmt.Printf("%02X %s\n", id, name)
	}
	inst, ok := dumped.(instrument.Instrument)
	if !ok {
		return
	}
	pack := inst.CommandPack(ver)
	for n, name := range pack.Commands {
		fmt.Printf("%02X %s\n", 0x80+n, name)
	}
	type withDests interface {
		DestinationNames(ver version.Version) []string
	}
	if d, ok := inst.(withDests); ok {
		fmt.Printf("destinations: %s\n", strings.Join(d.DestinationNames(ver), " "))
	}
}
