package argsh

import "strings"

// CommandPath is the sequence of resolved command names from the program
// entry point down, used only for presentation. It replaces the
// process-global COMMANDNAME array of the shell implementation with an
// explicit value threaded through the parser.
type CommandPath struct {
	names []string
}

// NewCommandPath seeds the path with the program name.
func NewCommandPath(program string) *CommandPath {
	p := &CommandPath{}
	if program != "" {
		p.names = append(p.names, program)
	}
	return p
}

// Push appends a resolved command name. Appends are the only mutation.
func (p *CommandPath) Push(name string) {
	p.names = append(p.names, name)
}

// Len returns the number of names on the path, program included.
func (p *CommandPath) Len() int {
	return len(p.names)
}

// Last returns the most recently resolved name.
func (p *CommandPath) Last() string {
	if len(p.names) == 0 {
		return ""
	}
	return p.names[len(p.names)-1]
}

// String renders the invocation path for help and error output.
func (p *CommandPath) String() string {
	return strings.Join(p.names, " ")
}

// Names returns a copy of the path elements.
func (p *CommandPath) Names() []string {
	return append([]string(nil), p.names...)
}
