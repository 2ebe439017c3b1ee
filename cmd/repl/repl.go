package repl

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/vadiminshakov/factorial/cmd/shared"
	"github.com/vadiminshakov/factorial/terminal"
)

// GetCommand returns the repl command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:   "repl",
		Usage:  "Read numbers interactively, or one per line from a pipe",
		Action: Action,
	}
}

// Action starts the interactive prompt when stdin is a terminal and
// answers line by line otherwise. The root command uses it as its default.
func Action(ctx context.Context, cmd *cli.Command) error {
	cfg := shared.LoadConfig(cmd)

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return terminal.RunTerminal(cfg)
	}

	return terminal.RunPipe(os.Stdin, os.Stdout, os.Stderr, cfg)
}
