// Command argsh loads an argsh manifest, a YAML file declaring the same
// title/usage/args pairs a script would put in scope, and runs the
// engines over it. It is the quickest way to exercise declarations:
// inspect parse results, resolve subcommands, or emit completion and
// documentation output without writing a host program.
//
// Usage:
//
//	argsh <manifest.yaml> [args...]
//	argsh --line '<command line>' <manifest.yaml>
package main

import (
	"fmt"
	"os"

	"github.com/argsh/argsh"
	"github.com/argsh/argsh/internal/parse"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

type manifest struct {
	Title     string            `yaml:"title"`
	Script    string            `yaml:"script"`
	Caller    string            `yaml:"caller"`
	EnvPrefix string            `yaml:"env_prefix"`
	Usage     [][]string        `yaml:"usage"`
	Args      [][]string        `yaml:"args"`
	Arrays    []string          `yaml:"arrays"`
	Defaults  map[string]string `yaml:"defaults"`
}

var errOut = color.New(color.FgRed)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	var line string
	if len(argv) >= 2 && argv[0] == "--line" {
		line = argv[1]
		argv = argv[2:]
	}
	if len(argv) == 0 {
		fmt.Fprintln(os.Stderr, "usage: argsh [--line '<command line>'] <manifest.yaml> [args...]")
		return 2
	}

	m, err := loadManifest(argv[0])
	if err != nil {
		errOut.Fprintf(os.Stderr, "argsh: %v\n", err)
		return 2
	}

	tail := argv[1:]
	if line != "" {
		tail, err = parse.Split(line)
		if err != nil {
			errOut.Fprintf(os.Stderr, "argsh: bad command line: %v\n", err)
			return 2
		}
	}

	sc := argsh.NewScope()
	if err := populate(sc, m); err != nil {
		errOut.Fprintf(os.Stderr, "argsh: %v\n", err)
		return 2
	}

	var opts []argsh.ConfigureParserFunc
	if m.Script != "" {
		opts = append(opts, argsh.WithScriptName(m.Script))
	}
	if m.Caller != "" {
		opts = append(opts, argsh.WithCallerPrefix(m.Caller))
	}
	if m.EnvPrefix != "" {
		opts = append(opts, argsh.WithEnvPrefix(m.EnvPrefix))
	}
	p := argsh.NewParser(sc, opts...)

	if len(m.Usage) > 0 {
		return runUsage(p, sc, m, tail)
	}
	return runArgs(p, sc, m, tail)
}

func runUsage(p *argsh.Parser, sc *argsh.MapScope, m *manifest, tail []string) int {
	// Handlers that report the dispatch instead of doing work: the
	// manifest has no code to run, resolution is what we demonstrate.
	for _, pair := range m.Usage {
		if len(pair) == 0 || pair[0] == "-" {
			continue
		}
		entry, err := argsh.ParseUsageEntry(pair[0])
		if err != nil {
			continue
		}
		name := entry.Name
		bind := name
		if entry.Handler != "" {
			bind = entry.Handler
		}
		sc.BindFunc(bind, func(handlerTail []string) int {
			fmt.Printf("dispatch: %s %v\n", name, handlerTail)
			return 0
		})
	}

	st := p.Usage(m.Title, tail...)
	switch st {
	case argsh.HelpShown:
		return 0
	case argsh.ExitSuccess:
	default:
		return st
	}

	resolved := sc.Array("usage")
	if len(resolved) == 0 {
		return 0
	}
	handler := resolved[0]
	if fn, ok := sc.Func(handler); ok {
		return fn(resolved[1:])
	}
	fmt.Printf("resolved: %s %v\n", handler, resolved[1:])
	return 0
}

func runArgs(p *argsh.Parser, sc *argsh.MapScope, m *manifest, tail []string) int {
	st := p.Args(m.Title, tail...)
	switch st {
	case argsh.HelpShown:
		return 0
	case argsh.ExitSuccess:
	default:
		return st
	}

	// Report the record of bindings for every declared field.
	out := map[string]any{}
	for _, pair := range m.Args {
		if len(pair) == 0 || pair[0] == "-" {
			continue
		}
		name := argsh.FieldName(pair[0], true)
		if sc.IsArray(name) {
			out[name] = sc.Array(name)
		} else if v, ok := sc.Get(name); ok {
			out[name] = v
		}
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		errOut.Fprintf(os.Stderr, "argsh: %v\n", err)
		return 1
	}
	os.Stdout.Write(data)
	return 0
}

func loadManifest(path string) (*manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &m, nil
}

func populate(sc *argsh.MapScope, m *manifest) error {
	for _, name := range m.Arrays {
		if err := sc.DeclareArray(name); err != nil {
			return err
		}
	}
	for name, value := range m.Defaults {
		if sc.IsArray(name) {
			if err := sc.Append(name, value); err != nil {
				return err
			}
			continue
		}
		if err := sc.Set(name, value); err != nil {
			return err
		}
	}
	if err := sc.SetAll("args", flatten(m.Args)); err != nil {
		return err
	}
	if len(m.Usage) > 0 {
		if err := sc.SetAll("usage", flatten(m.Usage)); err != nil {
			return err
		}
	}
	return nil
}

func flatten(pairs [][]string) []string {
	out := make([]string, 0, len(pairs)*2)
	for _, pair := range pairs {
		spec, desc := "", ""
		if len(pair) > 0 {
			spec = pair[0]
		}
		if len(pair) > 1 {
			desc = pair[1]
		}
		out = append(out, spec, desc)
	}
	return out
}
