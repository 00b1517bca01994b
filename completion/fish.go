package completion

import (
	"fmt"
	"strings"
)

// FishGenerator emits one `complete -c` line per command and flag.
type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	fmt.Fprintf(&script, "# fish completion for %s\n", programName)

	for _, cmd := range data.Commands {
		fmt.Fprintf(&script, "complete -c %s -n '__fish_use_subcommand' -a '%s' -d '%s'\n",
			programName, cmd.Name, escapeSingle(cmd.Description))
	}

	for _, flag := range data.Flags {
		var line strings.Builder
		fmt.Fprintf(&line, "complete -c %s -l '%s'", programName, flag.Long)
		if flag.Short != "" {
			fmt.Fprintf(&line, " -s '%s'", flag.Short)
		}
		if !flag.Boolean {
			line.WriteString(" -r")
		}
		fmt.Fprintf(&line, " -d '%s'", escapeSingle(flag.Description))
		script.WriteString(line.String())
		script.WriteString("\n")
	}

	return script.String()
}
