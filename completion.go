package argsh

import (
	"fmt"

	"github.com/argsh/argsh/completion"
)

// Completion implements the built-in "completion <shell>" command: it
// prints a completion script for the program's visible commands and flags.
// The usage engine routes here even when the caller never declared the
// command.
func (p *Parser) Completion(title string, usagePairs []string, tail []string) int {
	if len(tail) == 0 || tail[0] == "-h" || tail[0] == "--help" {
		fmt.Fprintf(p.stdout, "Generate shell completion scripts.\n\n")
		fmt.Fprintf(p.stdout, "Usage: %s completion <shell>\n\n", p.parentPath())
		fmt.Fprintln(p.stdout, "Available shells:")
		fmt.Fprintln(p.stdout, "  bash    Bash completion script")
		fmt.Fprintln(p.stdout, "  zsh     Zsh completion script")
		fmt.Fprintln(p.stdout, "  fish    Fish completion script")
		return HelpShown
	}

	gen, ok := completion.GetGenerator(tail[0])
	if !ok {
		return p.errorUsage("unknown shell: %s. Use bash, zsh, or fish", tail[0])
	}

	data, st := p.completionData(usagePairs)
	if st != ExitSuccess {
		return st
	}
	fmt.Fprint(p.stdout, gen.Generate(p.parentName(), data))
	return HelpShown
}

func (p *Parser) completionData(usagePairs []string) (completion.Data, int) {
	var data completion.Data

	entries, err := visibleEntries(usagePairs)
	if err != nil {
		return data, p.errorSpec("%v", err)
	}
	for _, entry := range entries {
		data.Commands = append(data.Commands, completion.Command{
			Name:        entry.Name,
			Description: entry.Description,
		})
	}

	flags, err := p.visibleFlags(p.scope.Array("args"), true)
	if err != nil {
		return data, p.errorSpec("%v", err)
	}
	for _, field := range flags {
		data.Flags = append(data.Flags, completion.Flag{
			Long:        field.DisplayName,
			Short:       field.Short,
			Description: field.Description,
			Type:        field.Type,
			Boolean:     field.Boolean,
			Required:    field.Required,
		})
	}
	return data, ExitSuccess
}
