package argsh

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	orderedmap "github.com/wk8/go-ordered-map"
)

// CoerceFunc converts a raw command-line string into its typed form. A nil
// error means the value was accepted; the returned string is what gets
// bound. A non-nil error rejects the value.
type CoerceFunc func(value string) (string, error)

// Registry maps type names to coercers. Registration order is preserved and
// Names lists the types in that order.
type Registry struct {
	types *orderedmap.OrderedMap
	input io.Reader
}

var typeNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

var floatRe = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// NewRegistry returns a registry populated with the built-in types:
// string, int, float, boolean, file, stdin and date.
func NewRegistry() *Registry {
	r := &Registry{
		types: orderedmap.New(),
		input: os.Stdin,
	}
	r.types.Set("string", CoerceFunc(toString))
	r.types.Set("int", CoerceFunc(toInt))
	r.types.Set("float", CoerceFunc(toFloat))
	r.types.Set("boolean", CoerceFunc(toBoolean))
	r.types.Set("file", CoerceFunc(toFile))
	r.types.Set("stdin", CoerceFunc(r.toStdin))
	r.types.Set("date", CoerceFunc(toDate))
	return r
}

// SetInput redirects the reader consumed by the stdin type. Used by tests
// and by hosts that feed a captured stream.
func (r *Registry) SetInput(in io.Reader) {
	r.input = in
}

// Register adds a custom coercer under name, the programmatic equivalent of
// defining a to::<name> function in shell scope. Overwrites are allowed so
// hosts can shadow built-ins.
func (r *Registry) Register(name string, fn CoerceFunc) error {
	if !typeNameRe.MatchString(name) {
		return fmt.Errorf("%w: invalid type name: %s", ErrUnknownType, name)
	}
	r.types.Set(name, fn)
	return nil
}

// Lookup returns the coercer registered under name.
func (r *Registry) Lookup(name string) (CoerceFunc, bool) {
	if name == "" {
		name = "string"
	}
	v, ok := r.types.Get(name)
	if !ok {
		return nil, false
	}
	return v.(CoerceFunc), true
}

// Names returns the registered type names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.types.Len())
	for pair := r.types.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key.(string))
	}
	return names
}

// Coerce runs the named coercer over value. An unregistered name is a spec
// bug, reported as ErrNotRegistered so the engines can surface it with the
// spec-error prefix; a coercer rejection is a plain user-facing error.
func (r *Registry) Coerce(typeName, value string) (string, error) {
	if typeName != "" && !typeNameRe.MatchString(typeName) {
		return "", fmt.Errorf("%w: invalid type name: %s", ErrUnknownType, typeName)
	}
	fn, ok := r.Lookup(typeName)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotRegistered, typeName)
	}
	return fn(value)
}

func toString(value string) (string, error) {
	return value, nil
}

func toInt(value string) (string, error) {
	if _, err := strconv.ParseInt(value, 10, 64); err != nil {
		return "", fmt.Errorf("invalid type (int): %s", value)
	}
	return value, nil
}

func toFloat(value string) (string, error) {
	if !floatRe.MatchString(value) {
		return "", fmt.Errorf("invalid type (float): %s", value)
	}
	return value, nil
}

func toBoolean(value string) (string, error) {
	switch value {
	case "", "0", "false":
		return "0", nil
	default:
		return "1", nil
	}
}

func toFile(value string) (string, error) {
	info, err := os.Stat(value)
	if err != nil || !info.Mode().IsRegular() {
		return "", fmt.Errorf("file not found: %s", value)
	}
	return value, nil
}

// toStdin reads the registry input to EOF when the value is "-", the
// conventional "read it from stdin" marker; any other value passes through.
func (r *Registry) toStdin(value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(r.input)
	if err != nil {
		return "", fmt.Errorf("invalid type (stdin): %v", err)
	}
	return string(data), nil
}

func toDate(value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("invalid type (date): %s", value)
	}
	val, err := dateparse.ParseLocal(value)
	if err != nil {
		return "", fmt.Errorf("invalid type (date): %s", value)
	}
	return val.Format(time.RFC3339), nil
}

// Invoke runs the named coercer the way the standalone to::<type> surface
// does: the converted value is printed to w and the status reports
// acceptance. Rejected values return ExitCoerce so hosts can distinguish
// coercer rejections from parse errors.
func (r *Registry) Invoke(typeName, value string, w io.Writer) int {
	out, err := r.Coerce(typeName, value)
	if err != nil {
		return ExitCoerce
	}
	fmt.Fprintln(w, out)
	return ExitSuccess
}
