package argsh

import (
	"bytes"
	"os"
)

// newTestParser wires a parser to buffers so tests can assert on exactly
// what reached stdout and stderr.
func newTestParser(sc *MapScope, opts ...ConfigureParserFunc) (*Parser, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	base := []ConfigureParserFunc{
		WithScriptName("prog"),
		WithStdout(&stdout),
		WithStderr(&stderr),
		WithFieldWidth(24),
	}
	p := NewParser(sc, append(base, opts...)...)
	return p, &stdout, &stderr
}

// declareArgs populates the caller-scoped args array from pairs.
func declareArgs(sc *MapScope, pairs ...string) {
	sc.SetAll("args", pairs)
}

// declareUsage populates the caller-scoped usage array from pairs.
func declareUsage(sc *MapScope, pairs ...string) {
	sc.SetAll("usage", pairs)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
