package completion

import (
	"fmt"
	"strings"
)

// BashGenerator emits a bash completion function registered with
// `complete -o default -F`.
type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data Data) string {
	var script strings.Builder
	fn := funcName(programName)

	cmdWords := make([]string, 0, len(data.Commands))
	for _, cmd := range data.Commands {
		cmdWords = append(cmdWords, cmd.Name)
	}

	fmt.Fprintf(&script, "# bash completion for %s\n", programName)
	fmt.Fprintf(&script, "%s() {\n", fn)
	script.WriteString("    local cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	script.WriteString("\n")
	script.WriteString("    if [[ \"${cur}\" == -* ]]; then\n")
	fmt.Fprintf(&script, "        COMPREPLY=($(compgen -W %q -- \"${cur}\"))\n", strings.Join(flagWords(data.Flags), " "))
	script.WriteString("    else\n")
	fmt.Fprintf(&script, "        COMPREPLY=($(compgen -W %q -- \"${cur}\"))\n", strings.Join(cmdWords, " "))
	script.WriteString("    fi\n")
	script.WriteString("}\n")
	fmt.Fprintf(&script, "complete -o default -F %s %s\n", fn, programName)

	return script.String()
}
