package argsh

import (
	"errors"
	"os"
	"strings"

	"github.com/argsh/argsh/types/queue"
	"github.com/iancoleman/strcase"
)

// setBoolFunc writes the presence value for a scalar boolean flag. parseFlag
// calls it only for non-array booleans; array-typed booleans get a "1"
// appended by parseFlag itself in both engines.
type setBoolFunc func(name string)

// parseFlag consumes the flag token at the front of q, together with its
// value when the field takes one. It returns handled=true when the token
// was recognized and bound, handled=false with ExitSuccess when the token
// is not a known flag (the caller decides what that means), and a non-zero
// status when an error was already reported.
func (p *Parser) parseFlag(j *journal, q *queue.Q[string], pairs []string, matched map[string]bool, setBool setBoolFunc) (bool, int) {
	arg, ok := q.Front()
	if !ok {
		return false, ExitSuccess
	}

	flagPart := arg
	if i := strings.Index(arg, "="); i >= 0 {
		flagPart = arg[:i]
	}

	var lookup string
	var isLong bool
	switch {
	case strings.HasPrefix(flagPart, "--"):
		lookup = flagPart[2:]
		isLong = true
	case strings.HasPrefix(flagPart, "-") && len(flagPart) >= 2:
		lookup = flagPart[1:2]
	default:
		return false, ExitSuccess
	}

	idx := fieldLookup(lookup, pairs)
	if idx < 0 {
		return false, ExitSuccess
	}
	spec := pairs[idx]
	field, err := ParseField(spec, p.scope)
	if err != nil {
		return false, p.errorSpec("%v", err)
	}
	matched[spec] = true

	if field.Boolean {
		if field.Multiple {
			j.Append(field.Name, "1")
		} else {
			setBool(field.Name)
		}
		q.PopFront()
		if !isLong {
			// The rest of a short cluster stays on the queue: -vvv peels
			// one letter per round.
			if remaining := "-" + arg[2:]; remaining != "-" {
				q.PushFront(remaining)
			}
		}
		return true, ExitSuccess
	}

	var value string
	if isLong {
		if i := strings.Index(arg, "="); i >= 0 {
			value = arg[i+1:]
			q.PopFront()
		} else {
			q.PopFront()
			v, ok := q.PopFront()
			if !ok {
				return false, p.errorUsage("missing value for flag: %s", field.Name)
			}
			value = v
		}
	} else {
		inline := arg[2:]
		if inline == "" {
			q.PopFront()
			v, ok := q.PopFront()
			if !ok {
				return false, p.errorUsage("missing value for flag: %s", field.Name)
			}
			value = v
		} else {
			value = strings.TrimPrefix(inline, "=")
			q.PopFront()
		}
	}

	converted, err := p.types.Coerce(field.Type, value)
	if err != nil {
		return false, p.coerceError(field, err)
	}

	if field.Multiple {
		j.Append(field.Name, converted)
	} else {
		j.Set(field.Name, converted)
	}
	return true, ExitSuccess
}

// coerceError routes a coercion failure to the right taxonomy: a type
// that was never registered is the author's bug, a rejected value is the
// user's.
func (p *Parser) coerceError(field *Field, err error) int {
	if errors.Is(err, ErrNotRegistered) || errors.Is(err, ErrUnknownType) {
		return p.errorSpec("%s: %v", field.DisplayName, err)
	}
	return p.errorUsage("%s: %v", field.DisplayName, err)
}

// checkRequiredFlags runs after the token walk: seeds environment
// defaults, writes the absence value for booleans, and rejects missing
// required flags.
func (p *Parser) checkRequiredFlags(j *journal, pairs []string, matched map[string]bool) int {
	for i := 0; i < len(pairs); i += 2 {
		spec := pairs[i]
		if spec == "-" {
			continue
		}
		field, err := ParseField(spec, p.scope)
		if err != nil {
			return p.errorSpec("%v", err)
		}
		if field.Kind == KindPositional {
			continue
		}

		if !matched[spec] && p.envPrefix != "" && p.scope.IsUninitialized(field.Name) {
			if st, seeded := p.envDefault(j, field); st != ExitSuccess {
				return st
			} else if seeded {
				matched[spec] = true
				field.HasDefault = true
			}
		}

		if field.Boolean && !field.HasDefault && !matched[spec] {
			j.Set(field.Name, "0")
		}
		if field.Required && !matched[spec] {
			return p.errorUsage("missing required flag: %s", field.DisplayName)
		}
	}
	return ExitSuccess
}

// envDefault seeds an uninitialized flag variable from
// <PREFIX>_<SCREAMING_SNAKE(name)> when that variable is exported.
func (p *Parser) envDefault(j *journal, field *Field) (int, bool) {
	raw, ok := os.LookupEnv(p.envPrefix + "_" + strcase.ToScreamingSnake(field.Name))
	if !ok {
		return ExitSuccess, false
	}
	if field.Boolean {
		v, _ := toBoolean(raw)
		j.Set(field.Name, v)
		return ExitSuccess, true
	}
	converted, err := p.types.Coerce(field.Type, raw)
	if err != nil {
		return p.coerceError(field, err), false
	}
	if field.Multiple {
		j.Append(field.Name, converted)
	} else {
		j.Set(field.Name, converted)
	}
	return ExitSuccess, true
}

// visibleFlagNames lists the long names offered to the suggestion engine.
// Hidden flags are accepted on the command line but never suggested.
func visibleFlagNames(pairs []string) []string {
	var names []string
	for i := 0; i < len(pairs); i += 2 {
		spec := pairs[i]
		if spec == "-" || strings.HasPrefix(spec, "#") || !strings.Contains(spec, "|") {
			continue
		}
		names = append(names, FieldName(spec, false))
	}
	return names
}

// strippedFlag reduces a flag token to the bare name compared during
// suggestion: dashes and any inline value removed.
func strippedFlag(tok string) string {
	tok = strings.TrimLeft(tok, "-")
	if i := strings.Index(tok, "="); i >= 0 {
		tok = tok[:i]
	}
	return tok
}
