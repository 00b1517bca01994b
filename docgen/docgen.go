// Package docgen renders structured documentation (man pages, Markdown,
// reStructuredText, YAML and LLM tool schemas) from the command and flag
// declarations of a parser. All formats derive from the same Document
// model.
package docgen

import "strings"

// Command is one visible subcommand.
type Command struct {
	Name        string
	Description string
}

// Flag is one visible flag.
type Flag struct {
	Name        string
	Short       string
	Description string
	Type        string
	Boolean     bool
	Required    bool
}

// Document is the format-independent model every emitter consumes.
type Document struct {
	// Name is the full invocation path, e.g. "myapp deploy".
	Name string
	// Title is the raw multi-line title the author declared.
	Title string
	Commands []Command
	Flags    []Flag
}

// Summary returns the first non-empty line of the title.
func (d Document) Summary() string {
	for _, line := range strings.Split(d.Title, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			return t
		}
	}
	return ""
}

// description returns the title lines after the summary, trimmed.
func (d Document) description() []string {
	lines := strings.Split(d.Title, "\n")
	if len(lines) <= 1 {
		return nil
	}
	rest := make([]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rest = append(rest, strings.TrimSpace(line))
	}
	for len(rest) > 0 && rest[0] == "" {
		rest = rest[1:]
	}
	for len(rest) > 0 && rest[len(rest)-1] == "" {
		rest = rest[:len(rest)-1]
	}
	return rest
}

// synopsis renders the one-line invocation form.
func (d Document) synopsis() string {
	if len(d.Commands) > 0 {
		return d.Name + " [command] [options]"
	}
	return d.Name + " [options]"
}

// flagLabel renders "-s, --name", or "--name" without a short form. The
// value type is not included.
func flagLabel(f Flag) string {
	label := "--" + f.Name
	if f.Short != "" {
		label = "-" + f.Short + ", " + label
	}
	return label
}

// SanitizeToolName keeps only the characters LLM providers accept in tool
// names, replacing the rest with underscores.
func SanitizeToolName(s string) string {
	var out strings.Builder
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '-':
			out.WriteRune(c)
		default:
			out.WriteByte('_')
		}
	}
	return out.String()
}

// jsonType maps field type names onto JSON Schema types.
func jsonType(f Flag) string {
	if f.Boolean {
		return "boolean"
	}
	switch f.Type {
	case "int":
		return "integer"
	case "float":
		return "number"
	}
	return "string"
}
