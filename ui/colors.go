package ui

import (
	"strings"

	"github.com/fatih/color"
)

var (
	brightRed    = color.New(color.FgHiRed).SprintFunc()
	brightGreen  = color.New(color.FgHiGreen).SprintFunc()
	brightYellow = color.New(color.FgHiYellow).SprintFunc()
	brightBlue   = color.New(color.FgHiBlue).SprintFunc()
	brightPurple = color.New(color.FgHiMagenta).SprintFunc()
	brightCyan   = color.New(color.FgHiCyan).SprintFunc()
	brightWhite  = color.New(color.FgHiWhite).SprintFunc()
	bold         = color.New(color.Bold).SprintFunc()
	dim          = color.New(color.Faint).SprintFunc()
)

// colorUnsupported is what color detected for stdout before any override.
var colorUnsupported = color.NoColor

// SetColor switches ANSI escapes on or off for every helper in this package.
// Enabling never forces color onto a stdout that color found unsuitable.
func SetColor(enabled bool) {
	color.NoColor = !enabled || colorUnsupported
}

// ColorSupported reports whether stdout can show color at all.
func ColorSupported() bool {
	return !colorUnsupported
}

// DisableColor turns off ANSI escapes for every helper in this package.
func DisableColor() {
	SetColor(false)
}

func BrightRed(text string) string    { return brightRed(text) }
func BrightGreen(text string) string  { return brightGreen(text) }
func BrightYellow(text string) string { return brightYellow(text) }
func BrightBlue(text string) string   { return brightBlue(text) }
func BrightCyan(text string) string   { return brightCyan(text) }
func BrightWhite(text string) string  { return brightWhite(text) }

func Bold(text string) string { return bold(text) }
func Dim(text string) string  { return dim(text) }

// Shortcuts for common message types
func Success(text string) string { return BrightGreen("✅ " + text) }
func Error(text string) string   { return BrightRed("❌ " + text) }
func Warning(text string) string { return BrightYellow("⚠️  " + text) }
func Info(text string) string    { return BrightBlue("ℹ️  " + text) }

// Header returns a stylized uppercase title
func Header(title string) string {
	title = strings.ToUpper(title)
	return brightPurple(Bold(title))
}
