package utils

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether the process is attached to an interactive
// terminal. Bubble Tea additionally needs /dev/tty to be openable.
func IsTTY() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}

	tty, err := os.Open("/dev/tty")
	if err != nil {
		return false
	}
	defer tty.Close()

	return true
}
