package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Status  StatusCmd        `cmd:"" default:"1" help:"Print engine status"`
	Play    PlayCmd          `cmd:"" help:"Deal hands from a table file and determine the winner"`
	Export  ExportCmd        `cmd:"" help:"Write a table's hands as a msgpack snapshot"`
	Winner  WinnerCmd        `cmd:"" help:"Determine the winner from a msgpack snapshot"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("shieldedgame"),
		kong.Description("Hidden-information card game engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
