package argsh

import "io"

// ConfigureParserFunc is used when defining Parser options.
type ConfigureParserFunc func(p *Parser)

// WithScriptName overrides the program name shown in help and diagnostics.
func WithScriptName(name string) ConfigureParserFunc {
	return func(p *Parser) {
		p.scriptName = name
		p.path = nil
	}
}

// WithCommandPath supplies an explicit command path, replacing the one
// derived from the script name.
func WithCommandPath(path *CommandPath) ConfigureParserFunc {
	return func(p *Parser) {
		p.path = path
	}
}

// WithCallerPrefix sets the caller function name used by the usage engine's
// namespace fallback, e.g. "app::deploy".
func WithCallerPrefix(prefix string) ConfigureParserFunc {
	return func(p *Parser) {
		p.callerPrefix = prefix
	}
}

// WithFieldWidth overrides the help column width otherwise taken from
// ARGSH_FIELD_WIDTH.
func WithFieldWidth(width int) ConfigureParserFunc {
	return func(p *Parser) {
		if width > 0 {
			p.fieldWidth = width
		}
	}
}

// WithEnvPrefix enables environment defaults: a flag whose variable is
// uninitialized is seeded from <PREFIX>_<SCREAMING_SNAKE(name)> before
// required checks run. Disabled when the prefix is empty.
func WithEnvPrefix(prefix string) ConfigureParserFunc {
	return func(p *Parser) {
		p.envPrefix = prefix
	}
}

// WithStdout redirects help output.
func WithStdout(w io.Writer) ConfigureParserFunc {
	return func(p *Parser) {
		p.stdout = w
	}
}

// WithStderr redirects diagnostics.
func WithStderr(w io.Writer) ConfigureParserFunc {
	return func(p *Parser) {
		p.stderr = w
	}
}

// WithStdin redirects the reader consumed by the stdin type.
func WithStdin(r io.Reader) ConfigureParserFunc {
	return func(p *Parser) {
		p.stdin = r
	}
}

// WithRegistry replaces the coercer registry, keeping any custom types the
// host registered ahead of time.
func WithRegistry(r *Registry) ConfigureParserFunc {
	return func(p *Parser) {
		if r != nil {
			p.types = r
		}
	}
}
