package argsh

import (
	"fmt"
	"strings"

	"github.com/argsh/argsh/types/queue"
)

// Usage is the subcommand router. It reads the caller-scoped "usage" array
// of (spec, description) pairs, plus the optional "args" array holding
// global flags, and consumes a prefix of tail made of global flags and one
// command token, resolves that token to a handler function, pushes the
// command onto the command path, and rewrites "usage" to
// [handler, remaining tail...] so the host can dispatch.
//
// An empty tail, -h/--help, or an unresolved command prefix all surface the
// help screen and return HelpShown. An unknown command returns ExitUsage
// with a suggestion when a visible command is close enough.
func (p *Parser) Usage(title string, tail ...string) int {
	usagePairs := p.scope.Array("usage")
	argsPairs := p.scope.Array("args")
	if len(usagePairs)%2 != 0 {
		return p.errorSpec("usage %v", ErrOddPairs)
	}

	if len(tail) == 0 || tail[0] == "-h" || tail[0] == "--help" {
		if st := p.renderUsageHelp(title, usagePairs, argsPairs); st != ExitSuccess {
			return st
		}
		return HelpShown
	}

	if tail[0] == "--argsh" && p.path.Len() <= 1 {
		sha, version := p.version()
		fmt.Fprintf(p.stdout, "https://arg.sh %s %s\n", sha, version)
		return HelpShown
	}

	j := newJournal(p.scope)
	q := queue.New(tail...)
	matched := map[string]bool{}
	var cmd string
	var haveCmd bool

	for q.Len() > 0 {
		tok, _ := q.Front()

		if !strings.HasPrefix(tok, "-") {
			if haveCmd {
				// A second non-flag token ends the walk: it and everything
				// after it belong to the handler. Flags between the command
				// and this token were still matched against the globals.
				break
			}
			cmd = tok
			haveCmd = true
			q.PopFront()
			continue
		}

		handled, st := p.parseFlag(j, q, argsPairs, matched, func(name string) {
			if p.scope.IsArray(name) {
				j.Append(name, "1")
			} else {
				j.Set(name, "1")
			}
		})
		if st != ExitSuccess {
			return st
		}
		if !handled {
			// Unknown flag: stop consuming. Before a command this falls
			// through to the help screen; after one it stays in the
			// handler's tail.
			break
		}
	}

	if st := p.checkRequiredFlags(j, argsPairs, matched); st != ExitSuccess {
		return st
	}

	if !haveCmd {
		if st := p.renderUsageHelp(title, usagePairs, argsPairs); st != ExitSuccess {
			return st
		}
		return HelpShown
	}

	entry, st := p.matchUsageEntry(cmd, usagePairs)
	if st != ExitSuccess {
		return st
	}
	rest := q.Drain()

	if entry == nil {
		// Built-in commands are dispatchable without being declared;
		// declared entries take precedence since they were checked first.
		switch cmd {
		case "completion":
			if err := j.apply(); err != nil {
				return p.errorSpec("%v", err)
			}
			p.path.Push(cmd)
			return p.Completion(title, usagePairs, rest)
		case "docgen":
			if err := j.apply(); err != nil {
				return p.errorSpec("%v", err)
			}
			p.path.Push(cmd)
			return p.Docgen(title, usagePairs, rest)
		}
		msg := "Invalid command: " + cmd
		if match, ok := Suggest(cmd, visibleCommandNames(usagePairs)); ok {
			msg += fmt.Sprintf(". Did you mean '%s'?", match)
		}
		return p.errorUsage("%s", msg)
	}

	handler, st := p.resolveHandler(cmd, entry)
	if st != ExitSuccess {
		return st
	}

	if err := j.apply(); err != nil {
		return p.errorSpec("%v", err)
	}
	p.path.Push(entry.Name)
	p.scope.SetAll("usage", append([]string{handler}, rest...))
	return ExitSuccess
}

// matchUsageEntry scans the usage pairs for the first entry with an alias
// equal to cmd. A nil entry with ExitSuccess means no match.
func (p *Parser) matchUsageEntry(cmd string, pairs []string) (*UsageEntry, int) {
	for i := 0; i < len(pairs); i += 2 {
		if pairs[i] == "-" {
			continue
		}
		entry, err := ParseUsageEntry(pairs[i])
		if err != nil {
			return nil, p.errorSpec("%v", err)
		}
		if i+1 < len(pairs) {
			entry.Description = pairs[i+1]
		}
		if entry.Matches(cmd) {
			return entry, ExitSuccess
		}
	}
	return nil, ExitSuccess
}

// resolveHandler maps a matched entry to a function name. An explicit
// ":-handler" mapping is an exclusive override; otherwise the namespace
// fallback tries, in order: <caller>::<name>, <lastSegment>::<name>, the
// bare <name>, and argsh::<name>.
func (p *Parser) resolveHandler(cmd string, entry *UsageEntry) (string, int) {
	if entry.Handler != "" {
		if !p.scope.HasFunction(entry.Handler) {
			return "", p.errorSpec("command %q maps to unknown function %q", cmd, entry.Handler)
		}
		return entry.Handler, ExitSuccess
	}

	var candidates []string
	if p.callerPrefix != "" {
		candidates = append(candidates, p.callerPrefix+"::"+entry.Name)
		if i := strings.LastIndex(p.callerPrefix, "::"); i >= 0 {
			candidates = append(candidates, p.callerPrefix[i+2:]+"::"+entry.Name)
		}
	}
	candidates = append(candidates, entry.Name, "argsh::"+entry.Name)

	for _, cand := range candidates {
		if p.scope.HasFunction(cand) {
			return cand, ExitSuccess
		}
	}
	return "", p.errorUsage("Invalid command: %s", cmd)
}

// visibleCommandNames lists every alias of every visible entry for the
// suggestion engine. Hidden commands stay dispatchable but unsuggested.
func visibleCommandNames(pairs []string) []string {
	var names []string
	for i := 0; i < len(pairs); i += 2 {
		spec := pairs[i]
		if spec == "-" || strings.HasPrefix(spec, "#") {
			continue
		}
		entry, err := ParseUsageEntry(spec)
		if err != nil {
			continue
		}
		names = append(names, entry.Aliases...)
	}
	return names
}
