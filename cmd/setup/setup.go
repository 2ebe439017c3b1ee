package setup

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/vadiminshakov/factorial/core/config"
)

// GetCommand returns the setup command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create ~/.factorial/config.json interactively",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := config.InteractiveSetup()
			return err
		},
	}
}
