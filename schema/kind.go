package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the value type of an option.
type Kind int

const (
	// Text options hold strings. It is the zero Kind.
	Text Kind = iota
	// Int options hold int64 values.
	Int
	// Float options hold float64 values.
	Float
	// Bool options hold booleans. On the command line they take no value.
	Bool
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Int:
		return "integer"
	case Float:
		return "float"
	case Bool:
		return "boolean"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) valid() bool {
	return k >= Text && k <= Bool
}

// CoercionError is returned when a raw string cannot be read as a Kind.
type CoercionError struct {
	Kind Kind
	Raw  string
	Err  error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s", e.Raw, e.Kind)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}

var boolLiterals = map[string]bool{
	"1":     true,
	"yes":   true,
	"true":  true,
	"on":    true,
	"0":     false,
	"no":    false,
	"false": false,
	"off":   false,
}

// Parse coerces a raw source string into a value of kind k.
// Booleans accept 1/yes/true/on and 0/no/false/off, case-insensitive.
func (k Kind) Parse(raw string) (any, error) {
	switch k {
	case Text:
		return raw, nil
	case Int:
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, &CoercionError{Kind: k, Raw: raw, Err: err}
		}
		return v, nil
	case Float:
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, &CoercionError{Kind: k, Raw: raw, Err: err}
		}
		return v, nil
	case Bool:
		v, ok := boolLiterals[strings.ToLower(strings.TrimSpace(raw))]
		if !ok {
			return nil, &CoercionError{Kind: k, Raw: raw}
		}
		return v, nil
	}

	return nil, &CoercionError{Kind: k, Raw: raw}
}

// normalize converts a Go value into the canonical representation of k:
// string, int64, float64 or bool.
func (k Kind) normalize(v any) (any, bool) {
	switch k {
	case Text:
		s, ok := v.(string)
		return s, ok
	case Int:
		switch n := v.(type) {
		case int:
			return int64(n), true
		case int8:
			return int64(n), true
		case int16:
			return int64(n), true
		case int32:
			return int64(n), true
		case int64:
			return n, true
		case uint8:
			return int64(n), true
		case uint16:
			return int64(n), true
		case uint32:
			return int64(n), true
		}
	case Float:
		switch n := v.(type) {
		case float64:
			return n, true
		case float32:
			return float64(n), true
		case int:
			return float64(n), true
		case int64:
			return float64(n), true
		}
	case Bool:
		b, ok := v.(bool)
		return b, ok
	}

	return nil, false
}

// FormatValue renders a resolved value the way Kind.Parse reads it back.
func FormatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	}

	return fmt.Sprint(v)
}
