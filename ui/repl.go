package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/vadiminshakov/factorial/core/config"
)

// lineReader is the subset of *readline.Instance the REPL depends on.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// REPL stores command history and provides the interactive prompt
type REPL struct {
	history []string
	reader  lineReader
	out     io.Writer
	cfg     config.Config

	newReader func(cfg config.Config) (lineReader, error)
	setup     func() (config.Config, error)
}

// createReadline creates a new readline instance with standard configuration
func createReadline(cfg config.Config) (lineReader, error) {
	return readline.NewEx(&readline.Config{
		Prompt:            "",
		HistoryFile:       cfg.HistoryFile,
		AutoComplete:      completer,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
}

// NewREPL creates a new REPL bound to the terminal
func NewREPL(cfg config.Config) (*REPL, error) {
	rl, err := createReadline(cfg)
	if err != nil {
		return nil, err
	}

	return &REPL{
		history:   make([]string, 0),
		reader:    rl,
		out:       os.Stdout,
		cfg:       cfg,
		newReader: createReadline,
		setup:     config.InteractiveSetup,
	}, nil
}

// completer provides auto-completion for built-in commands
var completer = readline.NewPrefixCompleter(
	readline.PcItem("help"),
	readline.PcItem("clear"),
	readline.PcItem("history"),
	readline.PcItem("reconfig"),
	readline.PcItem("exit"),
)

// Close releases REPL resources
func (r *REPL) Close() {
	if r.reader != nil {
		r.reader.Close()
	}
}

// Config returns the configuration currently in effect, including
// changes made through reconfig.
func (r *REPL) Config() config.Config {
	return r.cfg
}

// Out is the writer results and messages should go to.
func (r *REPL) Out() io.Writer {
	return r.out
}

// ShowWelcome prints the welcome message
func (r *REPL) ShowWelcome() {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, Header("factorial"))
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, Info("Enter a number to get its factorial (32-bit, wraps above 12)"))
	fmt.Fprintln(r.out, Dim("Available commands: help, clear, history, reconfig, exit"))
	fmt.Fprintln(r.out)
}

// GetPrompt returns a styled prompt for user input
func (r *REPL) GetPrompt() string {
	return fmt.Sprintf("%s %s ", BrightBlue("factorial"), BrightGreen("❯"))
}

// ReadInput reads one line and handles built-in commands.
// It returns the line to evaluate (empty when nothing is left to do)
// and whether the session should end.
func (r *REPL) ReadInput() (string, bool) {
	r.reader.SetPrompt(r.GetPrompt())

	line, err := r.reader.Readline()
	if err != nil {
		if err == readline.ErrInterrupt {
			return "", false
		}
		// io.EOF and anything unexpected end the session
		return "", true
	}

	inputStr := strings.TrimSpace(line)
	if inputStr == "" {
		return "", false
	}

	r.history = append(r.history, inputStr)

	switch inputStr {
	case "exit", "quit":
		return "", true

	case "help":
		r.showHelp()
		return "", false

	case "clear":
		r.clear()
		return "", false

	case "history":
		r.showHistory()
		return "", false

	case "reconfig":
		r.reconfig()
		return "", false

	default:
		return inputStr, false
	}
}

// showHelp prints built-in command help
func (r *REPL) showHelp() {
	helpText := `Available commands:

  <n>      – print n! computed with a 32-bit accumulator
  help     – show this help
  clear    – clear the screen
  history  – show input history
  reconfig – recreate configuration
  exit     – quit the program`

	fmt.Fprintln(r.out, helpText)
}

// clear clears the terminal screen; anything other than a terminal is left alone
func (r *REPL) clear() {
	if f, ok := r.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(r.out, "\033[2J\033[H")
	}
}

// showHistory prints input history
func (r *REPL) showHistory() {
	fmt.Fprintln(r.out)
	if len(r.history) == 0 {
		fmt.Fprintln(r.out, Info("History is empty"))
		fmt.Fprintln(r.out)
		return
	}

	fmt.Fprintln(r.out, BrightCyan("📜 History:"))
	fmt.Fprintln(r.out)

	start := 0
	if len(r.history) > 10 {
		start = len(r.history) - 10
		fmt.Fprintln(r.out, Dim("... (showing last 10 entries)"))
	}

	for i := start; i < len(r.history); i++ {
		fmt.Fprintf(r.out, "%s %s\n", Dim(fmt.Sprintf("%2d.", i+1)), BrightWhite(r.history[i]))
	}
	fmt.Fprintln(r.out)
}

// ShowError prints the error in a formatted style
func ShowError(w io.Writer, err error) {
	fmt.Fprintln(w, Error(err.Error()))
}

func (r *REPL) reconfig() bool {
	fmt.Fprintln(r.out)

	// promptui needs the terminal, so readline has to let go of it first
	if r.reader != nil {
		r.reader.Close()
	}

	cfg, err := r.setup()

	if err == nil {
		r.cfg = cfg
	}

	rl, reinitErr := r.newReader(r.cfg)
	if reinitErr != nil {
		ShowError(r.out, errors.Wrap(reinitErr, "failed to reinitialize readline"))
		return false
	}
	r.reader = rl

	if err != nil {
		ShowError(r.out, errors.Wrap(err, "failed to reconfigure"))
		return false
	}

	SetColor(r.cfg.Color)
	fmt.Fprintln(r.out, Success("configuration updated."))
	return true
}
