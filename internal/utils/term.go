package utils

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

const defaultTermWidth = 80

// TermWidth returns the current terminal width.
//
// In CI / tests there is often no TTY attached, in that case we fall back to
// the value from $COLUMNS if present, or 80.
func TermWidth() int {
	if c := os.Getenv("COLUMNS"); c != "" {
		if n, err := strconv.Atoi(c); err == nil && n > 0 {
			return n
		}
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}
