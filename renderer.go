package argsh

import (
	"fmt"
	"os"
	"strings"

	"github.com/argsh/argsh/internal/util"
)

// Help rendering. Both engines drive the same formatting from the same
// declarations: title, usage line, Arguments/Options sections with the
// field width taken from ARGSH_FIELD_WIDTH, group separators becoming
// section headings, and hidden entries omitted.

const descIndent = "           "

// implicitHelp is appended to every Options section unless the author
// declared their own help flag.
var implicitHelp = []string{"help|h:+", "Show this help message"}

// renderTitle prints the title with each line's leading whitespace
// stripped, so authors can indent heredoc-style titles naturally.
func (p *Parser) renderTitle(title string) {
	for _, line := range strings.Split(title, "\n") {
		fmt.Fprintln(p.stdout, strings.TrimLeft(line, " \t"))
	}
}

// renderArgsHelp prints the help screen of the argument engine.
func (p *Parser) renderArgsHelp(title string, pairs []string) int {
	p.renderTitle(title)

	// Positional signature: <name> when the value must be supplied,
	// [name] when a default exists, ...name for catch-alls.
	var sig []string
	var positionals []int
	for i := 0; i < len(pairs); i += 2 {
		spec := pairs[i]
		if strings.Contains(spec, "|") || spec == "-" {
			continue
		}
		positionals = append(positionals, i)
		name := FieldName(spec, true)
		switch {
		case p.scope.IsArray(name):
			sig = append(sig, "..."+name)
		case !p.scope.IsUninitialized(name):
			sig = append(sig, "["+name+"]")
		default:
			sig = append(sig, "<"+name+">")
		}
	}

	fmt.Fprintln(p.stdout)
	usage := p.path.String()
	if len(sig) > 0 {
		usage += " " + strings.Join(sig, " ")
	}
	fmt.Fprintf(p.stdout, "Usage: %s\n", usage)

	if len(positionals) > 0 {
		fmt.Fprintln(p.stdout)
		fmt.Fprintln(p.stdout, "Arguments:")
		for _, i := range positionals {
			field, err := ParseField(pairs[i], p.scope)
			if err != nil {
				return p.errorSpec("%v", err)
			}
			desc := ""
			if i+1 < len(pairs) {
				desc = pairs[i+1]
			}
			row := field.DisplayName + " " + field.Type
			fmt.Fprintf(p.stdout, "   %s%s\n", util.PadRight(row, p.fieldWidth), desc)
		}
	}

	if st := p.renderFlagsSection(pairs); st != ExitSuccess {
		return st
	}
	fmt.Fprintln(p.stdout)
	return ExitSuccess
}

// renderUsageHelp prints the help screen of the usage engine.
func (p *Parser) renderUsageHelp(title string, usagePairs, argsPairs []string) int {
	p.renderTitle(title)

	fmt.Fprintln(p.stdout)
	fmt.Fprintf(p.stdout, "Usage: %s <command> [args]\n", p.path.String())

	if len(usagePairs) > 0 && usagePairs[0] != "-" {
		fmt.Fprintln(p.stdout)
		fmt.Fprintln(p.stdout, "Available Commands:")
	}
	for i := 0; i < len(usagePairs); i += 2 {
		spec := usagePairs[i]
		desc := ""
		if i+1 < len(usagePairs) {
			desc = usagePairs[i+1]
		}
		if strings.HasPrefix(spec, "#") {
			continue
		}
		if spec == "-" {
			fmt.Fprintln(p.stdout)
			fmt.Fprintln(p.stdout, desc)
			continue
		}
		name := spec
		if pos := strings.IndexAny(name, "|:"); pos >= 0 {
			name = name[:pos]
		}
		fmt.Fprintf(p.stdout, "  %s %s\n", util.PadRight(name, p.fieldWidth), desc)
	}

	if st := p.renderFlagsSection(argsPairs); st != ExitSuccess {
		return st
	}

	fmt.Fprintln(p.stdout)
	fmt.Fprintf(p.stdout, "Use %q for more information.\n", p.path.String()+" <command> --help")
	return ExitSuccess
}

// renderFlagsSection prints the Options block shared by both help screens.
func (p *Parser) renderFlagsSection(pairs []string) int {
	withHelp := append([]string(nil), pairs...)
	if !hasHelpFlag(pairs) {
		withHelp = append(withHelp, implicitHelp...)
	}

	var flags []int
	for i := 0; i < len(withHelp); i += 2 {
		if strings.Contains(withHelp[i], "|") || withHelp[i] == "-" {
			flags = append(flags, i)
		}
	}
	if len(flags) == 0 {
		return ExitSuccess
	}

	if withHelp[flags[0]] != "-" {
		fmt.Fprintln(p.stdout)
		fmt.Fprintln(p.stdout, "Options:")
	}

	wrapWidth := p.descWrapWidth()
	for _, i := range flags {
		spec := withHelp[i]
		desc := ""
		if i+1 < len(withHelp) {
			desc = withHelp[i+1]
		}
		if strings.HasPrefix(spec, "#") {
			continue
		}
		if spec == "-" {
			fmt.Fprintln(p.stdout)
			fmt.Fprintln(p.stdout, desc)
			continue
		}
		field, err := ParseField(spec, p.scope)
		if err != nil {
			return p.errorSpec("%v", err)
		}
		fmt.Fprintln(p.stdout, p.formatField(field))
		for _, line := range util.Wrap(desc, wrapWidth) {
			fmt.Fprintf(p.stdout, "%s%s\n", descIndent, line)
		}
	}
	return ExitSuccess
}

// formatField renders the flag gutter line: a "!" marker for required
// flags, short and long forms, "..." for repeatable fields, the value type
// and any default taken from the scope.
func (p *Parser) formatField(field *Field) string {
	if field.Kind == KindPositional {
		return field.DisplayName + " " + field.Type
	}

	var out strings.Builder
	if field.Required {
		out.WriteString(" ! ")
	} else {
		out.WriteString("   ")
	}
	if field.Short != "" {
		out.WriteString("-" + field.Short + ", --" + field.DisplayName)
	} else {
		out.WriteString("    --" + field.DisplayName)
	}
	out.WriteString(" ")
	if field.Multiple {
		out.WriteString("...")
	}
	out.WriteString(field.Type)
	if field.HasDefault && !field.Boolean {
		if display := p.defaultDisplay(field); display != "" {
			out.WriteString(" (default: " + display + ")")
		}
	}
	return out.String()
}

func (p *Parser) defaultDisplay(field *Field) string {
	if field.Multiple {
		return strings.Join(p.scope.Array(field.Name), " ")
	}
	v, _ := p.scope.Get(field.Name)
	return v
}

// descWrapWidth returns the wrap width for option descriptions: the
// terminal width minus the description indent when stdout is a tty, zero
// (no wrapping) otherwise.
func (p *Parser) descWrapWidth() int {
	f, ok := p.stdout.(*os.File)
	if !ok {
		return 0
	}
	w := util.TerminalWidth(f.Fd())
	if w <= len(descIndent) {
		return 0
	}
	return w - len(descIndent)
}

func hasHelpFlag(pairs []string) bool {
	for i := 0; i < len(pairs); i += 2 {
		if pairs[i] == "help|h:+" {
			return true
		}
	}
	return false
}
