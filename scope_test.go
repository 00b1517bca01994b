package argsh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapScopeScalars(t *testing.T) {
	sc := NewScope()

	_, ok := sc.Get("missing")
	assert.False(t, ok, "reading an unset scalar reports absence, not an error")
	assert.True(t, sc.IsUninitialized("missing"))

	require.NoError(t, sc.Set("env", "prod"))
	v, ok := sc.Get("env")
	assert.True(t, ok)
	assert.Equal(t, "prod", v)
	assert.False(t, sc.IsUninitialized("env"))
	assert.False(t, sc.IsArray("env"))
}

func TestMapScopeArrays(t *testing.T) {
	sc := NewScope()

	require.NoError(t, sc.DeclareArray("tags"))
	assert.True(t, sc.IsArray("tags"))
	assert.True(t, sc.IsUninitialized("tags"), "a declared array without elements counts as uninitialized")
	assert.Equal(t, 0, sc.ArrayLen("tags"))

	require.NoError(t, sc.Append("tags", "a"))
	require.NoError(t, sc.Append("tags", "b"))
	assert.False(t, sc.IsUninitialized("tags"))
	assert.Equal(t, []string{"a", "b"}, sc.Array("tags"))

	require.NoError(t, sc.SetAll("tags", []string{"x"}))
	assert.Equal(t, []string{"x"}, sc.Array("tags"))

	// Scalar writes to an array binding land in element zero.
	require.NoError(t, sc.Set("tags", "0"))
	assert.Equal(t, []string{"0"}, sc.Array("tags"))
	v, ok := sc.Get("tags")
	assert.True(t, ok)
	assert.Equal(t, "0", v, "unsubscripted reads return element zero")
}

func TestMapScopeInvalidNames(t *testing.T) {
	sc := NewScope()

	assert.ErrorIs(t, sc.Set("1bad", "x"), ErrInvalidName)
	assert.ErrorIs(t, sc.Set("has-dash", "x"), ErrInvalidName)
	assert.ErrorIs(t, sc.Append("a b", "x"), ErrInvalidName)
	assert.ErrorIs(t, sc.SetAll("$ref", nil), ErrInvalidName)
	assert.NoError(t, sc.Set("_ok_2", "x"))
}

func TestMapScopeFunctions(t *testing.T) {
	sc := NewScope()
	assert.False(t, sc.HasFunction("main::serve"))

	sc.BindFunc("main::serve", func(tail []string) int { return 0 })
	assert.True(t, sc.HasFunction("main::serve"))

	fn, ok := sc.Func("main::serve")
	require.True(t, ok)
	assert.Equal(t, 0, fn(nil))
}

func TestIsHelpers(t *testing.T) {
	sc := NewScope()
	require.NoError(t, sc.Set("a", "1"))
	require.NoError(t, sc.DeclareArray("arr"))

	assert.True(t, IsSet(sc, "a"))
	assert.False(t, IsSet(sc, "a", "b"), "all names must be set")
	assert.True(t, IsArray(sc, "arr"))
	assert.False(t, IsArray(sc, "a"))
	assert.True(t, IsUninitialized(sc, "arr"), "empty arrays are uninitialized")
	assert.False(t, IsUninitialized(sc, "a"))
	assert.False(t, IsSet(sc), "no names means no answer")
}
