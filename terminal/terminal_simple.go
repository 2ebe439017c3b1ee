package terminal

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/factorial/core/config"
	"github.com/vadiminshakov/factorial/ui"
)

// RunPipe answers one number per input line until EOF, "exit" or "quit".
// Lines that do not parse are reported on errOut and skipped.
func RunPipe(in io.Reader, out, errOut io.Writer, cfg config.Config) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())

		if input == "exit" || input == "quit" {
			break
		}

		if input == "" {
			continue
		}

		n, err := ParseInput(input)
		if err != nil {
			ui.ShowError(errOut, err)
			continue
		}

		Answer(out, cfg, n)
	}

	return errors.Wrap(scanner.Err(), "read input")
}
