// Package flag provides command-line support for xopts.
package flag

import (
	"errors"
	"io"

	"github.com/spf13/pflag"
	"github.com/sxwebdev/xopts/plugins"
	"github.com/sxwebdev/xopts/schema"
)

// New returns a plugin that parses args (without the program name).
// Parsing stops at the first non-flag argument or at "--"; everything
// from there on becomes the session's positional arguments.
func New(args []string) plugins.Plugin {
	return &visitor{args: args}
}

type visitor struct {
	args  []string
	state *schema.State

	fs     *pflag.FlagSet
	byName map[string]*schema.Option
}

type occurrence struct {
	opt   *schema.Option
	value string
}

func (v *visitor) Visit(state *schema.State) error {
	v.state = state
	v.byName = make(map[string]*schema.Option)

	v.fs = pflag.NewFlagSet("xopts", pflag.ContinueOnError)
	v.fs.SetOutput(io.Discard)
	v.fs.SetInterspersed(false)
	v.fs.Usage = func() {}

	for _, o := range state.Registry.All() {
		if !o.HasFlag() {
			continue
		}

		name := o.CmdName
		if name == "" {
			name = hiddenName(o)
		}

		f := v.fs.VarPF(&rawValue{kind: o.Kind}, name, o.CmdShortName, o.Help)
		if o.Kind == schema.Bool {
			f.NoOptDefVal = "true"
		}

		v.byName[name] = o
	}

	return nil
}

// hiddenName names short-only options inside the flag set. pflag rejects
// long flags starting with a dash, so the name cannot be typed.
func hiddenName(o *schema.Option) string {
	return "-" + o.Key()
}

func (v *visitor) Parse() error {
	var seen []occurrence

	err := v.fs.ParseAll(v.args, func(f *pflag.Flag, value string) error {
		seen = append(seen, occurrence{opt: v.byName[f.Name], value: value})
		return nil
	})
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return schema.Userf("Unknown command line parameter -h/--help.")
		}
		return schema.Userf("Could not parse the command line: %v.", err)
	}

	v.state.SetArgs(v.fs.Args())

	for _, oc := range seen {
		if oc.opt.IsHelp {
			return plugins.ErrUsage
		}
	}

	var violations []string
	for _, oc := range seen {
		value, err := coerce(oc)
		if err != nil {
			violations = append(violations, err.Error())
			continue
		}

		v.state.Assign(oc.opt, value, schema.SourceCLI)
	}

	if cf := v.state.Registry.ConfigFileOption(); cf != nil {
		if path, ok := v.state.Lookup(cf.Section, cf.Name); ok {
			v.state.ConfigPath = path.(string)
		}
	}

	if len(violations) > 0 {
		return &schema.UserError{Violations: violations}
	}

	return nil
}

// coerce turns a raw flag value into the option's kind. Boolean flags carry
// no value: their presence means true.
func coerce(oc occurrence) (any, error) {
	if oc.opt.Kind == schema.Bool {
		if oc.value != "true" {
			return nil, schema.Userf("Command line option %s does not take a value.", oc.opt.Flag())
		}
		return true, nil
	}

	value, err := oc.opt.Kind.Parse(oc.value)
	if err != nil {
		return nil, schema.Userf("Could not parse command line option %s: it must be of type %s.", oc.opt.Name, oc.opt.Kind)
	}

	return value, nil
}

// rawValue satisfies pflag.Value. Values are collected through ParseAll,
// so Set only keeps the last raw string.
type rawValue struct {
	kind schema.Kind
	raw  string
}

func (r *rawValue) String() string {
	return r.raw
}

func (r *rawValue) Set(s string) error {
	r.raw = s
	return nil
}

func (r *rawValue) Type() string {
	if r.kind == schema.Bool {
		return "bool"
	}

	return "string"
}
