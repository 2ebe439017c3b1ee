package terminal

import (
	"io"

	"github.com/vadiminshakov/factorial/core/config"
	"github.com/vadiminshakov/factorial/ui"
)

type prompter interface {
	ReadInput() (string, bool)
	Config() config.Config
	Out() io.Writer
}

// RunTerminal runs the interactive prompt until the user exits.
func RunTerminal(cfg config.Config) error {
	repl, err := ui.NewREPL(cfg)
	if err != nil {
		return err
	}
	defer repl.Close()

	repl.ShowWelcome()
	loop(repl)

	return nil
}

func loop(p prompter) {
	for {
		input, shouldExit := p.ReadInput()
		if shouldExit {
			return
		}

		if input == "" {
			continue
		}

		n, err := ParseInput(input)
		if err != nil {
			ui.ShowError(p.Out(), err)
			continue
		}

		// config is re-read every time since reconfig may have changed it
		Answer(p.Out(), p.Config(), n)
	}
}
