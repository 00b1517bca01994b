// Package parse turns raw command-line strings into argv slices using
// shell-style word splitting.
package parse

import "github.com/google/shlex"

// Split tokenizes s honoring quotes and escapes.
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}
