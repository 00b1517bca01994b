package completion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData() Data {
	return Data{
		Commands: []Command{
			{Name: "serve", Description: "Start the server"},
			{Name: "build", Description: "Build the project"},
		},
		Flags: []Flag{
			{Long: "verbose", Short: "v", Description: "Verbose output", Boolean: true},
			{Long: "config", Short: "c", Description: "Config file", Type: "file"},
			{Long: "output", Description: "Output dir", Type: "string"},
		},
	}
}

func TestGetGenerator(t *testing.T) {
	for _, shell := range Shells() {
		gen, ok := GetGenerator(shell)
		assert.True(t, ok, shell)
		assert.NotNil(t, gen, shell)
	}

	_, ok := GetGenerator("powershell")
	assert.False(t, ok)
}

func TestBashGenerator(t *testing.T) {
	gen := &BashGenerator{}
	script := gen.Generate("mytool", testData())

	assert.Contains(t, script, "# bash completion for mytool")
	assert.Contains(t, script, "_mytool() {")
	assert.Contains(t, script, "complete -o default -F _mytool mytool")
	assert.Contains(t, script, "--verbose")
	assert.Contains(t, script, "-v")
	assert.Contains(t, script, "serve build")
}

func TestBashGeneratorDashedName(t *testing.T) {
	gen := &BashGenerator{}
	script := gen.Generate("my-tool", Data{})

	assert.Contains(t, script, "_my_tool() {", "function names cannot carry dashes")
	assert.Contains(t, script, "complete -o default -F _my_tool my-tool")
}

func TestZshGenerator(t *testing.T) {
	gen := &ZshGenerator{}
	script := gen.Generate("mytool", testData())

	assert.True(t, strings.HasPrefix(script, "#compdef mytool\n"))
	assert.Contains(t, script, "_arguments -s")
	assert.Contains(t, script, "'serve:Start the server'")
	assert.Contains(t, script, "_describe 'command' commands")
	assert.Contains(t, script, `{"-v","--verbose"}`)
	assert.Contains(t, script, ":file:", "value-taking flags advertise their type")
	assert.Contains(t, script, "'--output[Output dir]:string:'")
}

func TestZshGeneratorNoCommands(t *testing.T) {
	gen := &ZshGenerator{}
	script := gen.Generate("mytool", Data{Flags: testData().Flags})

	assert.NotContains(t, script, "_describe")
	assert.NotContains(t, script, "commands=(")
}

func TestFishGenerator(t *testing.T) {
	gen := &FishGenerator{}
	script := gen.Generate("mytool", testData())

	assert.Contains(t, script, "# fish completion for mytool")
	assert.Contains(t, script, "complete -c mytool -n '__fish_use_subcommand' -a 'serve' -d 'Start the server'")
	assert.Contains(t, script, "complete -c mytool -l 'verbose' -s 'v' -d 'Verbose output'")
	assert.Contains(t, script, "complete -c mytool -l 'config' -s 'c' -r -d 'Config file'")

	// Boolean flags must not demand a value.
	for _, line := range strings.Split(script, "\n") {
		if strings.Contains(line, "'verbose'") {
			assert.NotContains(t, line, " -r ")
		}
	}
}

func TestFishGeneratorEscaping(t *testing.T) {
	gen := &FishGenerator{}
	script := gen.Generate("mytool", Data{
		Commands: []Command{{Name: "rm", Description: "it's gone"}},
	})

	assert.Contains(t, script, `it\'s gone`)
}

func TestManagerGenerate(t *testing.T) {
	m, err := NewManager("bash", "/usr/local/bin/mytool")
	require.NoError(t, err)
	assert.Equal(t, "mytool", m.ProgramName, "program names are reduced to the basename")

	m.Accept(testData())
	assert.Contains(t, m.Script(), "complete -o default -F _mytool mytool")

	_, err = NewManager("tcsh", "mytool")
	assert.Error(t, err)
}

func TestManagerSaveWithoutScript(t *testing.T) {
	m, err := NewManager("fish", "mytool")
	require.NoError(t, err)
	assert.Error(t, m.Save(), "saving before Accept must fail")
}
