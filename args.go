package argsh

import (
	"strings"

	"github.com/argsh/argsh/types/queue"
)

// Args is the argument engine. It reads the caller-scoped "args" array of
// (spec, description) pairs, walks tail left to right binding positionals
// and flags into the scope, applies defaults and required checks, and
// returns an engine status. On -h/--help it renders help on stdout and
// returns HelpShown without touching any binding.
func (p *Parser) Args(title string, tail ...string) int {
	pairs := p.scope.Array("args")
	if len(pairs)%2 != 0 {
		return p.errorSpec("args %v", ErrOddPairs)
	}

	if len(tail) > 0 && (tail[0] == "-h" || tail[0] == "--help") {
		if st := p.renderArgsHelp(title, pairs); st != ExitSuccess {
			return st
		}
		return HelpShown
	}

	j := newJournal(p.scope)
	q := queue.New(tail...)
	matched := map[string]bool{}
	positionalIndex := 1
	clearedArray := false

	for q.Len() > 0 {
		tok, _ := q.Front()

		if !strings.HasPrefix(tok, "-") {
			idx := fieldPositional(positionalIndex, pairs, p.scope)
			if idx < 0 {
				return p.errorUsage("too many arguments: %s", tok)
			}
			field, err := ParseField(pairs[idx], p.scope)
			if err != nil {
				return p.errorSpec("%v", err)
			}
			value, err := p.types.Coerce(field.Type, tok)
			if err != nil {
				return p.coerceError(field, err)
			}
			if p.scope.IsArray(field.Name) {
				// Caller-provided contents act as the default; the first
				// supplied value replaces them instead of appending.
				if !clearedArray {
					j.SetAll(field.Name, nil)
					clearedArray = true
				}
				j.Append(field.Name, value)
			} else {
				j.Set(field.Name, value)
			}
			q.PopFront()
			positionalIndex++
			continue
		}

		handled, st := p.parseFlag(j, q, pairs, matched, func(name string) {
			j.Set(name, "1")
		})
		if st != ExitSuccess {
			return st
		}
		if !handled {
			msg := "unknown flag: " + tok
			if match, ok := Suggest(strippedFlag(tok), visibleFlagNames(pairs)); ok {
				msg += ". Did you mean '--" + match + "'?"
			}
			return p.errorUsage("%s", msg)
		}
	}

	// A scalar positional that never received a value and carries no
	// default is implicitly required.
	if idx := fieldPositional(positionalIndex, pairs, p.scope); idx >= 0 {
		name := FieldName(pairs[idx], true)
		if p.scope.IsUninitialized(name) && !p.scope.IsArray(name) {
			return p.errorUsage("missing required argument: %s", name)
		}
	}

	if st := p.checkRequiredFlags(j, pairs, matched); st != ExitSuccess {
		return st
	}
	if err := j.apply(); err != nil {
		return p.errorSpec("%v", err)
	}
	return ExitSuccess
}
