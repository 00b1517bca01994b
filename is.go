package argsh

import (
	"os"

	"github.com/argsh/argsh/internal/util"
)

// IsArray reports whether every given name is declared with array storage
// in sc.
func IsArray(sc Scope, names ...string) bool {
	if len(names) == 0 {
		return false
	}
	for _, name := range names {
		if !sc.IsArray(name) {
			return false
		}
	}
	return true
}

// IsSet reports whether every given name is initialized in sc.
func IsSet(sc Scope, names ...string) bool {
	if len(names) == 0 {
		return false
	}
	for _, name := range names {
		if sc.IsUninitialized(name) {
			return false
		}
	}
	return true
}

// IsUninitialized reports whether every given name is unbound, or an array
// without elements.
func IsUninitialized(sc Scope, names ...string) bool {
	if len(names) == 0 {
		return false
	}
	for _, name := range names {
		if !sc.IsUninitialized(name) {
			return false
		}
	}
	return true
}

// IsTTY reports whether stdout is attached to a terminal.
func IsTTY() bool {
	return util.IsTerminal(os.Stdout.Fd())
}
