package argsh

import (
	"fmt"

	"github.com/argsh/argsh/docgen"
)

// Docgen implements the built-in "docgen <format>" command. Formats: man,
// md, rst, yaml, and llm with a provider argument. Like Completion it is
// dispatchable without being declared.
func (p *Parser) Docgen(title string, usagePairs []string, tail []string) int {
	if len(tail) == 0 || tail[0] == "-h" || tail[0] == "--help" {
		fmt.Fprintf(p.stdout, "Generate documentation in various formats.\n\n")
		fmt.Fprintf(p.stdout, "Usage: %s docgen <format>\n\n", p.parentPath())
		fmt.Fprintln(p.stdout, "Available formats:")
		fmt.Fprintln(p.stdout, "  man     Man page (troff format)")
		fmt.Fprintln(p.stdout, "  md      Markdown")
		fmt.Fprintln(p.stdout, "  rst     reStructuredText")
		fmt.Fprintln(p.stdout, "  yaml    YAML")
		fmt.Fprintln(p.stdout, "  llm     LLM tool schema (anthropic, openai, gemini)")
		return HelpShown
	}

	format := tail[0]
	includeHelp := format != "llm"
	doc, st := p.document(title, usagePairs, includeHelp)
	if st != ExitSuccess {
		return st
	}

	var err error
	switch format {
	case "man":
		err = docgen.Man(p.stdout, doc)
	case "md":
		err = docgen.Markdown(p.stdout, doc)
	case "rst":
		err = docgen.RST(p.stdout, doc)
	case "yaml":
		err = docgen.YAML(p.stdout, doc)
	case "llm":
		if len(tail) < 2 {
			return p.errorUsage("llm format requires a provider: anthropic, openai, or gemini")
		}
		switch tail[1] {
		case "anthropic", "claude":
			err = docgen.LLMAnthropic(p.stdout, doc)
		case "openai", "gemini", "kimi":
			err = docgen.LLMOpenAI(p.stdout, doc)
		default:
			return p.errorUsage("unknown LLM provider: %s. Use anthropic, openai, or gemini", tail[1])
		}
	default:
		return p.errorUsage("unknown format: %s. Use man, md, rst, yaml, or llm", format)
	}
	if err != nil {
		return p.errorUsage("docgen failed: %v", err)
	}
	return HelpShown
}

func (p *Parser) document(title string, usagePairs []string, includeHelp bool) (docgen.Document, int) {
	doc := docgen.Document{
		Name:  p.parentPath(),
		Title: title,
	}

	entries, err := visibleEntries(usagePairs)
	if err != nil {
		return doc, p.errorSpec("%v", err)
	}
	for _, entry := range entries {
		doc.Commands = append(doc.Commands, docgen.Command{
			Name:        entry.Name,
			Description: entry.Description,
		})
	}

	flags, err := p.visibleFlags(p.scope.Array("args"), includeHelp)
	if err != nil {
		return doc, p.errorSpec("%v", err)
	}
	for _, field := range flags {
		doc.Flags = append(doc.Flags, docgen.Flag{
			Name:        field.DisplayName,
			Short:       field.Short,
			Description: field.Description,
			Type:        field.Type,
			Boolean:     field.Boolean,
			Required:    field.Required,
		})
	}
	return doc, ExitSuccess
}
