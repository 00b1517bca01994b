package argsh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldName(t *testing.T) {
	tests := []struct {
		spec  string
		asref bool
		want  string
	}{
		{"flag|f:~int!", true, "flag"},
		{"#hidden|h", true, "hidden"},
		{"my-flag|m", true, "my_flag"},
		{"my-flag|m", false, "my-flag"},
		{"name", true, "name"},
		{"name:~file", true, "name"},
		{"#dry-run|n:+", false, "dry-run"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FieldName(tt.spec, tt.asref), "FieldName(%q, %v)", tt.spec, tt.asref)
	}
}

func TestFieldNameRoundTrip(t *testing.T) {
	// The display name preserves the source spelling; the variable name is
	// the display name with dashes rewritten.
	specs := []string{"dry-run|n:+", "log-level|l:~string", "plain", "#sneaky-one|s"}
	for _, spec := range specs {
		display := FieldName(spec, false)
		ref := FieldName(spec, true)
		assert.Equal(t, ref, FieldName(display, true), "variable name must derive from display name for %q", spec)
	}
}

func TestParseField(t *testing.T) {
	sc := NewScope()

	f, err := ParseField("age|a:~int!", sc)
	require.NoError(t, err)
	assert.Equal(t, "age", f.Name)
	assert.Equal(t, "a", f.Short)
	assert.Equal(t, KindFlag, f.Kind)
	assert.Equal(t, "int", f.Type)
	assert.True(t, f.Required)
	assert.False(t, f.Boolean)
	assert.False(t, f.Hidden)

	f, err = ParseField("verbose|v:+", sc)
	require.NoError(t, err)
	assert.True(t, f.Boolean)
	assert.Empty(t, f.Type, "boolean flags carry no value type")

	f, err = ParseField("name", sc)
	require.NoError(t, err)
	assert.Equal(t, KindPositional, f.Kind)
	assert.Equal(t, "string", f.Type, "string is the default type")

	f, err = ParseField("#token|t", sc)
	require.NoError(t, err)
	assert.True(t, f.Hidden)

	f, err = ParseField("-", sc)
	require.NoError(t, err)
	assert.Equal(t, KindSeparator, f.Kind)

	f, err = ParseField("output|:~file", sc)
	require.NoError(t, err)
	assert.Empty(t, f.Short, "empty short alias means long-only")
	assert.Equal(t, "file", f.Type)
}

func TestParseFieldRequiredBoolean(t *testing.T) {
	// "!" and "+" may coexist: a required boolean must be supplied.
	f, err := ParseField("confirm|c:+!", NewScope())
	require.NoError(t, err)
	assert.True(t, f.Boolean)
	assert.True(t, f.Required)
}

func TestParseFieldErrors(t *testing.T) {
	sc := NewScope()
	tests := []struct {
		name string
		spec string
	}{
		{"boolean with type", "flag|f:+~int"},
		{"type then boolean", "flag|f:~int+"},
		{"duplicate boolean", "flag|f:++"},
		{"duplicate required", "flag|f:!!"},
		{"duplicate type", "flag|f:~int~str"},
		{"unknown modifier", "flag|f:%"},
		{"empty type", "flag|f:~"},
		{"empty name", "|f"},
		{"multi-char short", "flag|fx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseField(tt.spec, sc)
			assert.ErrorIs(t, err, ErrFieldSpec, "spec %q must be rejected", tt.spec)
		})
	}
}

func TestParseFieldScopeState(t *testing.T) {
	sc := NewScope()
	require.NoError(t, sc.Set("env", "prod"))
	require.NoError(t, sc.DeclareArray("tags"))

	f, err := ParseField("env|e", sc)
	require.NoError(t, err)
	assert.True(t, f.HasDefault, "a pre-set scalar is the default value")
	assert.False(t, f.Multiple)

	f, err = ParseField("tags|t", sc)
	require.NoError(t, err)
	assert.True(t, f.Multiple, "array storage makes a field repeatable")
	assert.False(t, f.HasDefault, "an empty array carries no default")

	require.NoError(t, sc.Append("tags", "a"))
	f, err = ParseField("tags|t", sc)
	require.NoError(t, err)
	assert.True(t, f.HasDefault, "array elements are the default value")
}

func TestParseUsageEntry(t *testing.T) {
	u, err := ParseUsageEntry("serve|s")
	require.NoError(t, err)
	assert.Equal(t, "serve", u.Name)
	assert.Equal(t, []string{"serve", "s"}, u.Aliases)
	assert.Empty(t, u.Handler)
	assert.False(t, u.Hidden)

	u, err = ParseUsageEntry("#migrate")
	require.NoError(t, err)
	assert.True(t, u.Hidden)
	assert.True(t, u.Matches("migrate"), "hidden commands still match")

	u, err = ParseUsageEntry("deploy|d:-app::deploy")
	require.NoError(t, err)
	assert.Equal(t, "deploy", u.Name)
	assert.Equal(t, "app::deploy", u.Handler)

	u, err = ParseUsageEntry("-")
	require.NoError(t, err)
	assert.True(t, u.Separator)
	assert.False(t, u.Matches("-"))

	_, err = ParseUsageEntry("")
	assert.ErrorIs(t, err, ErrUsageSpec)
}

func TestFieldLookup(t *testing.T) {
	pairs := []string{
		"name", "Name",
		"age|a:~int", "Age",
		"#secret|s", "Secret",
		"-", "Group",
		"verbose|v:+", "Verbose",
	}

	assert.Equal(t, 2, fieldLookup("age", pairs))
	assert.Equal(t, 2, fieldLookup("a", pairs))
	assert.Equal(t, 4, fieldLookup("secret", pairs), "hidden flags stay addressable")
	assert.Equal(t, 8, fieldLookup("v", pairs))
	assert.Equal(t, -1, fieldLookup("name", pairs), "positionals are not flag targets")
	assert.Equal(t, -1, fieldLookup("nope", pairs))
}

func TestFieldPositional(t *testing.T) {
	sc := NewScope()
	pairs := []string{
		"first", "First",
		"flag|f", "Flag",
		"second", "Second",
	}

	assert.Equal(t, 0, fieldPositional(1, pairs, sc))
	assert.Equal(t, 4, fieldPositional(2, pairs, sc))
	assert.Equal(t, -1, fieldPositional(3, pairs, sc))

	// An array positional catches everything from its position on.
	require.NoError(t, sc.DeclareArray("second"))
	assert.Equal(t, 4, fieldPositional(2, pairs, sc))
	assert.Equal(t, 4, fieldPositional(9, pairs, sc))
}
