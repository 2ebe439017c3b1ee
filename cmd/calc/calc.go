package calc

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/vadiminshakov/factorial/cmd/shared"
	"github.com/vadiminshakov/factorial/core/config"
	"github.com/vadiminshakov/factorial/terminal"
)

// GetCommand returns the calc command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:      "calc",
		Usage:     "Print the factorial of each argument (pass negatives after --)",
		ArgsUsage: "N [N...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := shared.LoadConfig(cmd)
			return run(writer(cmd), cfg, cmd.Args().Slice())
		},
	}
}

func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// run validates every argument before printing anything.
// A "--" terminator is not a number and is skipped.
func run(w io.Writer, cfg config.Config, args []string) error {
	args = dropTerminator(args)
	if len(args) == 0 {
		return errors.New("at least one number is required")
	}

	ns := make([]int32, 0, len(args))
	for _, arg := range args {
		n, err := terminal.ParseInput(arg)
		if err != nil {
			return err
		}
		ns = append(ns, n)
	}

	for _, n := range ns {
		terminal.Answer(w, cfg, n)
	}

	return nil
}

func dropTerminator(args []string) []string {
	kept := make([]string, 0, len(args))
	for _, arg := range args {
		if arg != "--" {
			kept = append(kept, arg)
		}
	}
	return kept
}
