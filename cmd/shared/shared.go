package shared

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/vadiminshakov/factorial/core/config"
	"github.com/vadiminshakov/factorial/ui"
)

const NoColorFlag = "no-color"

// GetFlags returns the flags shared by every command.
func GetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  NoColorFlag,
			Usage: "Disable colored output",
		},
	}
}

// LoadConfig reads ~/.factorial/config.json and applies the shared flags on top.
// A broken config file is reported and replaced by defaults.
func LoadConfig(cmd *cli.Command) config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Warning("using default configuration: "+err.Error()))
	}

	return Apply(cfg, cmd.Bool(NoColorFlag))
}

// Apply folds flag values into cfg and configures the ui package accordingly.
func Apply(cfg config.Config, noColor bool) config.Config {
	if noColor {
		cfg.Color = false
	}
	ui.SetColor(cfg.Color)
	return cfg
}
