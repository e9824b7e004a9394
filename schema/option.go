package schema

import (
	"fmt"
	"strings"
)

// DefaultGroup is the usage group of options that do not name one.
const DefaultGroup = "default"

// Optional is a value that may be absent. The zero Optional is absent.
type Optional struct {
	value any
	set   bool
}

// Default wraps v as the default value of an option.
func Default(v any) Optional {
	return Optional{value: v, set: true}
}

// Get returns the wrapped value and whether there is one.
func (o Optional) Get() (any, bool) {
	return o.value, o.set
}

// IsSet reports whether a value is present.
func (o Optional) IsSet() bool {
	return o.set
}

// Option describes one option: where it lives in the configuration file,
// how it is spelled on the command line and what kind of value it holds.
type Option struct {
	// Section and Name identify the option and map to the [section] and key
	// of the configuration file.
	Section string `validate:"ident"`
	Name    string `validate:"ident"`

	// CmdName is the long flag (--name), CmdShortName the short one (-n).
	CmdName      string `validate:"omitempty,longflag"`
	CmdShortName string `validate:"omitempty,shortflag"`

	Kind    Kind `validate:"kind"`
	Default Optional

	// CmdOnly options are never read from the configuration file.
	CmdOnly bool
	// IsConfigFile marks the option holding the configuration file path.
	IsConfigFile bool
	// IsHelp marks the flag that prints usage and stops the program.
	IsHelp bool

	Help     string
	CmdGroup string

	required bool
	setBy    Source
}

// Required reports whether a value must come from some source.
func (o *Option) Required() bool {
	return o.required
}

// SetBy returns the source that assigned the current value.
func (o *Option) SetBy() Source {
	return o.setBy
}

// Key returns "section.name".
func (o *Option) Key() string {
	return o.Section + "." + o.Name
}

// HasFlag reports whether the option can be given on the command line.
func (o *Option) HasFlag() bool {
	return o.CmdName != "" || o.CmdShortName != ""
}

// Flag returns the preferred command-line spelling, long before short.
func (o *Option) Flag() string {
	switch {
	case o.CmdName != "":
		return "--" + o.CmdName
	case o.CmdShortName != "":
		return "-" + o.CmdShortName
	}

	return ""
}

// ValueName is the placeholder shown for the option's value in usage text.
func (o *Option) ValueName() string {
	if o.CmdName != "" {
		return o.CmdName
	}

	return o.Name
}

// Arity values for CountArgs.
const (
	ZeroOrMore = -1
	OneOrMore  = -2
)

// ArgsSpec describes the positional arguments a program expects: either a
// list of distinct names, or a count with a single name.
type ArgsSpec struct {
	Count int
	Name  string
	Names []string
}

// NamedArgs expects exactly len(names) arguments.
func NamedArgs(names ...string) ArgsSpec {
	if names == nil {
		names = []string{}
	}

	return ArgsSpec{Count: len(names), Names: names}
}

// CountArgs expects n arguments all called name. n may be ZeroOrMore or OneOrMore.
func CountArgs(n int, name string) ArgsSpec {
	return ArgsSpec{Count: n, Name: name}
}

func (a ArgsSpec) check() error {
	const shape = "define either CountArgs(count, name) (use -1 for zero or more, -2 for one or more) or NamedArgs(names...)"

	switch {
	case a.Names != nil && a.Name != "":
		return Definitionf("%s, not both", shape)
	case a.Names != nil:
		if a.Count != len(a.Names) {
			return Definitionf("%s: count %d does not match %d names", shape, a.Count, len(a.Names))
		}
		seen := make(map[string]bool, len(a.Names))
		for _, n := range a.Names {
			if strings.TrimSpace(n) == "" {
				return Definitionf("positional argument names cannot be empty")
			}
			if seen[n] {
				return Definitionf("positional argument %q is named twice", n)
			}
			seen[n] = true
		}
	case a.Name != "":
		if a.Count < OneOrMore {
			return Definitionf("%s: invalid count %d", shape, a.Count)
		}
	default:
		return Definitionf("%s", shape)
	}

	return nil
}

// Expected returns the argument names shown in messages and usage.
func (a ArgsSpec) Expected() []string {
	if a.Names != nil {
		return a.Names
	}

	n := a.Count
	if n < 0 {
		n = 1
	}

	names := make([]string, n)
	for i := range names {
		names[i] = a.Name
	}

	return names
}

// Usage renders the positional part of a usage line.
func (a ArgsSpec) Usage() string {
	switch {
	case a.Names == nil && a.Count == ZeroOrMore:
		return fmt.Sprintf("[%s] ...", a.Name)
	case a.Names == nil && a.Count == OneOrMore:
		return fmt.Sprintf("<%s> [%s] ...", a.Name, a.Name)
	}

	return bracketed(a.Expected())
}

func bracketed(names []string) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = "<" + n + ">"
	}

	return strings.Join(parts, " ")
}

// Check verifies that n leftover arguments are acceptable.
func (a ArgsSpec) Check(n int) error {
	switch {
	case a.Names == nil && a.Count == ZeroOrMore:
		return nil
	case a.Names == nil && a.Count == OneOrMore:
		if n < 1 {
			return Userf("At least one <%s> argument required.", a.Name)
		}
		return nil
	}

	if n != a.Count {
		return Userf("Required arguments were not specified: %s.", bracketed(a.Expected()))
	}

	return nil
}
