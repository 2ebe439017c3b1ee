package calc

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/vadiminshakov/factorial/cmd/shared"
	"github.com/vadiminshakov/factorial/core/config"
	"github.com/vadiminshakov/factorial/ui"
)

func TestGetCommand(t *testing.T) {
	cmd := GetCommand()

	require.NotNil(t, cmd)
	require.Equal(t, "calc", cmd.Name)
	require.NotEmpty(t, cmd.Usage)
	require.NotNil(t, cmd.Action)
}

func TestRun(t *testing.T) {
	ui.DisableColor()
	cfg := config.Default()
	cfg.WarnOverflow = false

	tests := []struct {
		name      string
		args      []string
		want      string
		wantError bool
	}{
		{"single", []string{"5"}, "5! = 120\n", false},
		{"several", []string{"0", "12", "13"}, "0! = 1\n12! = 479001600\n13! = 1932053504\n", false},
		{"negative", []string{"-1"}, "-1! = 1\n", false},
		{"after terminator", []string{"--", "-5", "3"}, "-5! = 1\n3! = 6\n", false},
		{"terminator only", []string{"--"}, "", true},
		{"no args", nil, "", true},
		{"bad arg prints nothing", []string{"3", "three"}, "", true},
		{"out of range", []string{"4294967296"}, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(&out, cfg, tc.args)
			if tc.wantError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tc.want, out.String())
		})
	}
}

func TestCalcCommandNegativeAfterTerminator(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	root := &cli.Command{
		Name:     "factorial",
		Writer:   &out,
		Flags:    shared.GetFlags(),
		Commands: []*cli.Command{GetCommand()},
	}

	err := root.Run(context.Background(), []string{"factorial", "--no-color", "calc", "--", "-5", "13"})
	require.NoError(t, err)
	require.Equal(t, "-5! = 1\n13! = 1932053504\n", out.String())
}
