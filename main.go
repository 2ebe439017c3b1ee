package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/vadiminshakov/factorial/cmd/calc"
	"github.com/vadiminshakov/factorial/cmd/repl"
	"github.com/vadiminshakov/factorial/cmd/setup"
	"github.com/vadiminshakov/factorial/cmd/shared"
	"github.com/vadiminshakov/factorial/cmd/version"
	"github.com/vadiminshakov/factorial/ui"
)

func main() {
	log.SetFlags(0)

	app := &cli.Command{
		Name:  "factorial",
		Usage: "n! with a 32-bit accumulator that wraps around above 12!",
		Commands: []*cli.Command{
			calc.GetCommand(),
			repl.GetCommand(),
			setup.GetCommand(),
			version.GetCommand(),
		},
		Flags:  shared.GetFlags(),
		Action: repl.Action,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(ui.Error(err.Error()))
	}
}
