package completion

import "strings"

// Generator produces a completion script for one shell.
type Generator interface {
	Generate(programName string, data Data) string
}

// GetGenerator returns the generator for shell, or false for shells we do
// not support.
func GetGenerator(shell string) (Generator, bool) {
	switch shell {
	case "bash":
		return &BashGenerator{}, true
	case "zsh":
		return &ZshGenerator{}, true
	case "fish":
		return &FishGenerator{}, true
	}
	return nil, false
}

// Shells lists the supported shells in display order.
func Shells() []string {
	return []string{"bash", "zsh", "fish"}
}

// funcName derives a shell function name from the program name.
func funcName(programName string) string {
	return "_" + strings.ReplaceAll(programName, "-", "_")
}

// escapeSingle escapes a string for inclusion in single quotes in fish.
func escapeSingle(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}

// escapeZsh escapes a description for a zsh _arguments optspec.
func escapeZsh(s string) string {
	s = strings.ReplaceAll(s, "'", `'\''`)
	s = strings.ReplaceAll(s, "[", `\[`)
	s = strings.ReplaceAll(s, "]", `\]`)
	return s
}

// escapeColon escapes a description for a zsh _describe entry.
func escapeColon(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}

// flagWords lists every completion word a flag answers to.
func flagWords(flags []Flag) []string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}
