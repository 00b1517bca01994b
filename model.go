package argsh

import "strings"

// Shared extraction: the completion and docgen surfaces consume the same
// (commands, flags) model the help renderer does.

// visibleEntries parses the visible usage entries in declaration order,
// skipping hidden entries and group separators.
func visibleEntries(pairs []string) ([]*UsageEntry, error) {
	var entries []*UsageEntry
	for i := 0; i < len(pairs); i += 2 {
		spec := pairs[i]
		if spec == "-" || strings.HasPrefix(spec, "#") {
			continue
		}
		entry, err := ParseUsageEntry(spec)
		if err != nil {
			return nil, err
		}
		if i+1 < len(pairs) {
			entry.Description = pairs[i+1]
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// visibleFlags parses the visible flag fields in declaration order. With
// includeHelp the implicit help flag is appended unless the author
// declared one; LLM tool schemas pass false and additionally drop any
// author-declared help.
func (p *Parser) visibleFlags(pairs []string, includeHelp bool) ([]*Field, error) {
	var flags []*Field
	var hasHelp bool
	for i := 0; i < len(pairs); i += 2 {
		spec := pairs[i]
		if spec == "-" || strings.HasPrefix(spec, "#") || !strings.Contains(spec, "|") {
			continue
		}
		field, err := ParseField(spec, p.scope)
		if err != nil {
			return nil, err
		}
		if i+1 < len(pairs) {
			field.Description = pairs[i+1]
		}
		if field.Name == "help" {
			hasHelp = true
			if !includeHelp {
				continue
			}
		}
		flags = append(flags, field)
	}
	if includeHelp && !hasHelp {
		flags = append(flags, &Field{
			Name:        "help",
			DisplayName: "help",
			Short:       "h",
			Kind:        KindFlag,
			Boolean:     true,
			Description: "Show this help message",
		})
	}
	return flags, nil
}

// parentPath renders the command path without its last element, used by
// the completion and docgen subcommands to name the program they document.
func (p *Parser) parentPath() string {
	names := p.path.Names()
	if len(names) > 1 {
		return strings.Join(names[:len(names)-1], " ")
	}
	return p.scriptName
}

// parentName returns the single name directly above the last path element.
func (p *Parser) parentName() string {
	names := p.path.Names()
	if len(names) > 1 {
		return names[len(names)-2]
	}
	return p.scriptName
}
