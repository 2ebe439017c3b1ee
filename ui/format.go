package ui

import (
	"fmt"
)

// FormatResult renders "n! = value", with the value highlighted.
func FormatResult(n int32, value string) string {
	return fmt.Sprintf("%s = %s", BrightWhite(fmt.Sprintf("%d!", n)), BrightGreen(value))
}

// FormatWrapped explains that the value for n is a 32-bit wraparound residue.
func FormatWrapped(n int32) string {
	return Warning(fmt.Sprintf("%d! exceeds int32, the value above wrapped around", n))
}
