package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/factorial/core/config"
	"github.com/vadiminshakov/factorial/math"
	"github.com/vadiminshakov/factorial/ui"
)

// ParseInput parses s as a base-10 int32. Values outside the int32 range are
// rejected here so the calculator only ever sees representable input.
func ParseInput(s string) (int32, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "%q is not a 32-bit integer", s)
	}
	return int32(n), nil
}

// Answer writes n! to w, followed by a wraparound notice when cfg asks for one.
func Answer(w io.Writer, cfg config.Config, n int32) {
	fmt.Fprintln(w, ui.FormatResult(n, math.Calculate(n)))
	if cfg.WarnOverflow && math.Wrapped(n) {
		fmt.Fprintln(w, ui.FormatWrapped(n))
	}
}
