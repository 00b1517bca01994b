package argsh

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Parser drives the argument and usage engines over a Scope. One Parser is
// typically created per program invocation; the engines borrow the scope's
// declaration arrays for the duration of one parse.
type Parser struct {
	scope        Scope
	types        *Registry
	path         *CommandPath
	stdout       io.Writer
	stderr       io.Writer
	stdin        io.Reader
	fieldWidth   int
	scriptName   string
	callerPrefix string
	envPrefix    string
}

// NewParser returns a parser bound to sc with default configuration:
// program name from ARGSH_SOURCE (falling back to the argv[0] basename),
// help column width from ARGSH_FIELD_WIDTH, output on os.Stdout/os.Stderr.
func NewParser(sc Scope, opts ...ConfigureParserFunc) *Parser {
	if sc == nil {
		sc = NewScope()
	}
	p := &Parser{
		scope:      sc,
		types:      NewRegistry(),
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		stdin:      os.Stdin,
		fieldWidth: fieldWidthFromEnv(),
		scriptName: scriptNameFromEnv(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.stdout == nil {
		p.stdout = discard{}
	}
	if p.stderr == nil {
		p.stderr = discard{}
	}
	if p.path == nil {
		p.path = NewCommandPath(p.scriptName)
	}
	p.types.SetInput(p.stdin)
	return p
}

func scriptNameFromEnv() string {
	if src := os.Getenv(EnvSource); src != "" {
		return filepath.Base(src)
	}
	if len(os.Args) > 0 {
		return filepath.Base(os.Args[0])
	}
	return "argsh"
}

func fieldWidthFromEnv() int {
	if raw := os.Getenv(EnvFieldWidth); raw != "" {
		if w, err := strconv.Atoi(raw); err == nil && w > 0 {
			return w
		}
	}
	return defaultFieldWidth
}

// Scope returns the scope the parser binds into.
func (p *Parser) Scope() Scope {
	return p.scope
}

// Types returns the coercer registry so hosts can add custom types.
func (p *Parser) Types() *Registry {
	return p.types
}

// Path returns the command path accumulated by usage resolution.
func (p *Parser) Path() *CommandPath {
	return p.path
}

// ScriptName returns the program basename used in help and diagnostics.
func (p *Parser) ScriptName() string {
	return p.scriptName
}

// errorUsage reports a user error on stderr and returns ExitUsage. Help
// goes to stdout, diagnostics to stderr, and nothing here terminates the
// process.
func (p *Parser) errorUsage(format string, a ...any) int {
	fmt.Fprintf(p.stderr, "Error: "+format+"\n\n", a...)
	fmt.Fprintf(p.stderr, "  Run %q for more information.\n", p.scriptName+" -h")
	return ExitUsage
}

// errorSpec reports a spec-author error. Same status as a user error but a
// distinct prefix: these indicate a bug in the calling script, not a typo
// on the command line.
func (p *Parser) errorSpec(format string, a ...any) int {
	fmt.Fprintf(p.stderr, "Spec error: "+format+"\n", a...)
	return ExitUsage
}

func (p *Parser) version() (sha, version string) {
	sha, _ = p.scope.Get(EnvCommitSHA)
	if sha == "" {
		sha = os.Getenv(EnvCommitSHA)
	}
	version, _ = p.scope.Get(EnvVersion)
	if version == "" {
		version = os.Getenv(EnvVersion)
	}
	return sha, version
}
