package argsh

import (
	"fmt"
	"strings"
)

// FieldName extracts the variable name from a field spec. With asref true
// dashes are rewritten to underscores so the result is a legal variable
// name; with asref false the source spelling is preserved for display.
//
//	FieldName("flag|f:~int!", true)  == "flag"
//	FieldName("#hidden|h", true)     == "hidden"
//	FieldName("my-flag|m", true)     == "my_flag"
//	FieldName("my-flag|m", false)    == "my-flag"
func FieldName(spec string, asref bool) string {
	name := spec
	if pos := strings.IndexAny(name, "|:"); pos >= 0 {
		name = name[:pos]
	}
	name = strings.TrimPrefix(name, "#")
	if asref {
		return strings.ReplaceAll(name, "-", "_")
	}
	return name
}

// ParseField decodes one field spec string into a Field. The scope is
// consulted only to learn whether the bound variable already exists
// (HasDefault) and whether it has array storage (Multiple).
//
// Spec-author mistakes (a boolean with an explicit type, duplicated or
// unknown modifiers) are reported as errors wrapping ErrFieldSpec.
func ParseField(spec string, sc Scope) (*Field, error) {
	if spec == "-" {
		return &Field{Kind: KindSeparator, Raw: spec}, nil
	}

	f := &Field{
		Name:        FieldName(spec, true),
		DisplayName: FieldName(spec, false),
		Hidden:      strings.HasPrefix(spec, "#"),
		Raw:         spec,
	}
	if f.Name == "" {
		return nil, fmt.Errorf("%w: empty name in %q", ErrFieldSpec, spec)
	}
	if !ValidName(f.Name) {
		return nil, fmt.Errorf("%w: %q in %q", ErrInvalidName, f.Name, spec)
	}

	if strings.Contains(spec, "|") {
		f.Kind = KindFlag
		head := spec
		if pos := strings.Index(head, ":"); pos >= 0 {
			head = head[:pos]
		}
		parts := strings.SplitN(head, "|", 2)
		if len(parts) > 1 && parts[1] != "" {
			f.Short = parts[1]
			if len(f.Short) > 1 {
				return nil, fmt.Errorf("%w: short alias %q must be a single character in %q", ErrFieldSpec, f.Short, spec)
			}
		}
	} else {
		f.Kind = KindPositional
	}

	if pos := strings.Index(spec, ":"); pos >= 0 {
		if err := parseModifiers(f, spec[pos+1:]); err != nil {
			return nil, err
		}
	}

	if f.Type == "" && !f.Boolean {
		f.Type = "string"
	}

	if sc != nil {
		f.Multiple = sc.IsArray(f.Name)
		if f.Multiple {
			f.HasDefault = !sc.IsUninitialized(f.Name) && sc.ArrayLen(f.Name) > 0
		} else {
			f.HasDefault = !sc.IsUninitialized(f.Name)
		}
	}

	return f, nil
}

// parseModifiers walks the characters after the first ':'. Each modifier
// may appear at most once and "+" excludes "~".
func parseModifiers(f *Field, mods string) error {
	var sawType bool
	for i := 0; i < len(mods); {
		switch mods[i] {
		case '+':
			if f.Boolean {
				return fmt.Errorf("%w: duplicate '+' in %q", ErrFieldSpec, f.Raw)
			}
			f.Boolean = true
			i++
		case '~':
			if sawType {
				return fmt.Errorf("%w: duplicate '~' in %q", ErrFieldSpec, f.Raw)
			}
			sawType = true
			i++
			start := i
			for i < len(mods) && mods[i] != '+' && mods[i] != '~' && mods[i] != '!' {
				i++
			}
			f.Type = mods[start:i]
			if f.Type == "" {
				return fmt.Errorf("%w: '~' without a type name in %q", ErrFieldSpec, f.Raw)
			}
		case '!':
			if f.Required {
				return fmt.Errorf("%w: duplicate '!' in %q", ErrFieldSpec, f.Raw)
			}
			f.Required = true
			i++
		default:
			return fmt.Errorf("%w: unknown modifier %q in %q", ErrFieldSpec, string(mods[i]), f.Raw)
		}
	}
	if f.Boolean && sawType {
		return fmt.Errorf("%w: '+' and '~' cannot be combined in %q", ErrFieldSpec, f.Raw)
	}
	return nil
}

// ParseUsageEntry decodes one subcommand declaration.
func ParseUsageEntry(spec string) (*UsageEntry, error) {
	if spec == "-" {
		return &UsageEntry{Separator: true, Raw: spec}, nil
	}

	u := &UsageEntry{
		Hidden: strings.HasPrefix(spec, "#"),
		Raw:    spec,
	}
	body := strings.TrimPrefix(spec, "#")
	if pos := strings.Index(body, ":-"); pos >= 0 {
		u.Handler = strings.TrimPrefix(body[pos+2:], "#")
		body = body[:pos]
	} else if pos := strings.Index(body, ":"); pos >= 0 {
		return nil, fmt.Errorf("%w: unknown modifier %q in %q", ErrUsageSpec, string(body[pos+1]), spec)
	}
	if body == "" {
		return nil, fmt.Errorf("%w: empty name in %q", ErrUsageSpec, spec)
	}
	for _, alias := range strings.Split(body, "|") {
		if alias == "" {
			continue
		}
		u.Aliases = append(u.Aliases, alias)
	}
	if len(u.Aliases) == 0 {
		return nil, fmt.Errorf("%w: empty name in %q", ErrUsageSpec, spec)
	}
	u.Name = u.Aliases[0]
	return u, nil
}

// fieldLookup finds the pair index of the flag whose long or short name
// equals flag. It scans spec strings without full parsing so that lookup
// stays cheap on the hot path.
func fieldLookup(flag string, pairs []string) int {
	for i := 0; i < len(pairs); i += 2 {
		spec := pairs[i]
		if spec == "-" || !strings.Contains(spec, "|") {
			continue
		}
		head := spec
		if pos := strings.Index(head, ":"); pos >= 0 {
			head = head[:pos]
		}
		head = strings.TrimPrefix(head, "#")
		for _, part := range strings.Split(head, "|") {
			if part != "" && part == flag {
				return i
			}
		}
	}
	return -1
}

// fieldPositional finds the pair index of the nth positional field
// (1-based). An array-declared positional always matches: it is the
// catch-all for every remaining positional token.
func fieldPositional(position int, pairs []string, sc Scope) int {
	pos := position
	for i := 0; i < len(pairs); i += 2 {
		spec := pairs[i]
		if strings.Contains(spec, "|") || spec == "-" {
			continue
		}
		if sc.IsArray(FieldName(spec, true)) {
			return i
		}
		pos--
		if pos == 0 {
			return i
		}
	}
	return -1
}
