package docgen

import (
	"fmt"
	"io"
	"strings"
)

// RST writes the document as reStructuredText.
func RST(w io.Writer, doc Document) error {
	var err error
	p := func(format string, a ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, a...)
		}
	}

	p("%s\n%s\n\n", doc.Name, strings.Repeat("=", len(doc.Name)))
	p("%s\n\n", doc.Summary())

	p("Synopsis\n--------\n\n")
	p(".. code-block:: bash\n\n")
	p("   %s\n\n", doc.synopsis())

	if rest := doc.description(); len(rest) > 0 {
		p("Description\n-----------\n\n")
		for _, line := range rest {
			p("%s\n", line)
		}
		p("\n")
	}

	if len(doc.Commands) > 0 {
		p("Commands\n--------\n\n")
		for _, cmd := range doc.Commands {
			p("**%s**\n", cmd.Name)
			p("   %s\n\n", cmd.Description)
		}
	}

	if len(doc.Flags) > 0 {
		p("Options\n-------\n\n")
		for _, flag := range doc.Flags {
			label := flagLabel(flag)
			if !flag.Boolean {
				label += " *" + flag.Type + "*"
			}
			p("**%s**\n", label)
			p("   %s\n\n", flag.Description)
		}
	}

	return err
}
