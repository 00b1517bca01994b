package docgen

import (
	"fmt"
	"io"
)

// Markdown writes the document as a Markdown page with command and option
// tables.
func Markdown(w io.Writer, doc Document) error {
	var err error
	p := func(format string, a ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, a...)
		}
	}

	p("# %s\n\n", doc.Name)
	p("%s\n\n", doc.Summary())

	p("## Synopsis\n\n")
	p("```\n%s\n```\n\n", doc.synopsis())

	if rest := doc.description(); len(rest) > 0 {
		p("## Description\n\n")
		for _, line := range rest {
			p("%s\n", line)
		}
		p("\n")
	}

	if len(doc.Commands) > 0 {
		p("## Commands\n\n")
		p("| Command | Description |\n")
		p("|---------|-------------|\n")
		for _, cmd := range doc.Commands {
			p("| `%s` | %s |\n", cmd.Name, cmd.Description)
		}
		p("\n")
	}

	if len(doc.Flags) > 0 {
		p("## Options\n\n")
		p("| Flag | Description |\n")
		p("|------|-------------|\n")
		for _, flag := range doc.Flags {
			label := "`--" + flag.Name + "`"
			if flag.Short != "" {
				label = "`-" + flag.Short + "`, " + label
			}
			if !flag.Boolean {
				label += " *" + flag.Type + "*"
			}
			p("| %s | %s |\n", label, flag.Description)
		}
		p("\n")
	}

	return err
}
