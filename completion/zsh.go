package completion

import (
	"fmt"
	"strings"
)

// ZshGenerator emits a #compdef completion function built on _arguments and
// _describe.
type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data Data) string {
	var script strings.Builder
	fn := funcName(programName)

	fmt.Fprintf(&script, "#compdef %s\n", programName)
	script.WriteString("\n")
	fmt.Fprintf(&script, "%s() {\n", fn)

	if len(data.Commands) > 0 {
		script.WriteString("    local -a commands=(\n")
		for _, cmd := range data.Commands {
			fmt.Fprintf(&script, "        '%s:%s'\n", cmd.Name, escapeColon(cmd.Description))
		}
		script.WriteString("    )\n")
		script.WriteString("\n")
	}

	script.WriteString("    _arguments -s")
	for _, flag := range data.Flags {
		desc := escapeZsh(flag.Description)
		switch {
		case flag.Short != "" && flag.Boolean:
			fmt.Fprintf(&script, " \\\n        '(-%[1]s --%[2]s)'{\"-%[1]s\",\"--%[2]s\"}'[%[3]s]'", flag.Short, flag.Long, desc)
		case flag.Short != "":
			fmt.Fprintf(&script, " \\\n        '(-%[1]s --%[2]s)'{\"-%[1]s\",\"--%[2]s\"}'[%[3]s]:%[4]s:'", flag.Short, flag.Long, desc, flag.Type)
		case flag.Boolean:
			fmt.Fprintf(&script, " \\\n        '--%s[%s]'", flag.Long, desc)
		default:
			fmt.Fprintf(&script, " \\\n        '--%s[%s]:%s:'", flag.Long, desc, flag.Type)
		}
	}

	if len(data.Commands) > 0 {
		script.WriteString(" \\\n        '*::command:->commands'\n")
		script.WriteString("\n")
		script.WriteString("    case \"$state\" in\n")
		script.WriteString("        commands)\n")
		script.WriteString("            _describe 'command' commands\n")
		script.WriteString("            ;;\n")
		script.WriteString("    esac\n")
	} else {
		script.WriteString("\n")
	}

	script.WriteString("}\n")
	script.WriteString("\n")
	fmt.Fprintf(&script, "%s \"$@\"\n", fn)

	return script.String()
}
