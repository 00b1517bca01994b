package docgen

import (
	"io"
	"strings"
	"time"

	"github.com/muesli/roff"
)

// Man writes the document as a section-1 man page in troff format.
func Man(w io.Writer, doc Document) error {
	d := roff.NewDocument()
	d.Heading(1, strings.ToUpper(doc.Name), doc.Summary(), time.Time{})

	d.Section("NAME")
	d.Text(doc.Name + " - " + doc.Summary())

	d.Section("SYNOPSIS")
	d.TextBold(doc.Name)
	if len(doc.Commands) > 0 {
		d.Text(" ")
		d.TextItalic("[command]")
	}
	d.Text(" ")
	d.TextItalic("[options]")

	d.Section("DESCRIPTION")
	for _, line := range strings.Split(doc.Title, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			d.Paragraph()
			continue
		}
		d.Text(trimmed)
		d.Text("\n")
	}

	if len(doc.Commands) > 0 {
		d.Section("COMMANDS")
		for _, cmd := range doc.Commands {
			d.TaggedParagraph(-1)
			d.TextBold(cmd.Name)
			d.Text("\n")
			d.Text(cmd.Description)
		}
	}

	if len(doc.Flags) > 0 {
		d.Section("OPTIONS")
		for _, flag := range doc.Flags {
			d.TaggedParagraph(-1)
			if flag.Short != "" {
				d.TextBold("-" + flag.Short)
				d.Text(", ")
			}
			d.TextBold("--" + flag.Name)
			if !flag.Boolean {
				d.Text(" ")
				d.TextItalic(flag.Type)
			}
			d.Text("\n")
			d.Text(flag.Description)
		}
	}

	_, err := io.WriteString(w, d.String())
	return err
}
