package util

import (
	"golang.org/x/term"
)

// IsTerminal reports whether fd is attached to a terminal.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// TerminalWidth returns the column count of the terminal behind fd, or 0
// when fd is not a terminal or the size cannot be determined.
func TerminalWidth(fd uintptr) int {
	if !term.IsTerminal(int(fd)) {
		return 0
	}
	w, _, err := term.GetSize(int(fd))
	if err != nil || w <= 0 {
		return 0
	}
	return w
}
