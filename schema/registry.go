// Package schema defines option definitions, the registry that holds them and
// the resolved state a session builds from them.
package schema

import (
	"slices"
	"strings"
)

// Registry holds option definitions in definition order, grouped by section.
type Registry struct {
	sections []string
	options  map[string]map[string]*Option
	order    map[string][]*Option

	longFlags  map[string]*Option
	shortFlags map[string]*Option

	configFile *Option
	args       *ArgsSpec
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		options:    make(map[string]map[string]*Option),
		order:      make(map[string][]*Option),
		longFlags:  make(map[string]*Option),
		shortFlags: make(map[string]*Option),
	}
}

// Define validates o and adds it to the registry. Names and long flags are
// trimmed and lower-cased first. The returned Option is the stored copy.
func (r *Registry) Define(o Option) (*Option, error) {
	o.Section = normalizeName(o.Section)
	o.Name = normalizeName(o.Name)
	o.CmdName = normalizeName(o.CmdName)
	o.CmdShortName = strings.TrimSpace(o.CmdShortName)

	if err := checkNames(&o); err != nil {
		return nil, err
	}

	if _, exists := r.options[o.Section][o.Name]; exists {
		return nil, optionErrorf(&o, "option %s is already defined", o.Key())
	}

	hasFlag := o.HasFlag()

	switch {
	case o.CmdOnly && !hasFlag:
		return nil, optionErrorf(&o, "defined as cmd-only, but neither a cmd name nor a short cmd name is set")
	case o.IsConfigFile && o.Kind != Text:
		return nil, optionErrorf(&o, "defined as config file, but with kind %s instead of %s", o.Kind, Text)
	case o.IsConfigFile && r.configFile != nil:
		return nil, optionErrorf(&o, "duplicate config file options %s and %s", o.Key(), r.configFile.Key())
	case o.IsConfigFile && !hasFlag:
		return nil, optionErrorf(&o, "defined as config file, but neither a cmd name nor a short cmd name is set")
	case o.IsHelp && o.Kind != Bool:
		return nil, optionErrorf(&o, "defined as help, but with kind %s instead of %s", o.Kind, Bool)
	}

	if prev, used := r.longFlags[o.CmdName]; o.CmdName != "" && used {
		return nil, optionErrorf(&o, "cmd name --%s is already used by %s", o.CmdName, prev.Key())
	}

	if prev, used := r.shortFlags[o.CmdShortName]; o.CmdShortName != "" && used {
		return nil, optionErrorf(&o, "short cmd name -%s is already used by %s", o.CmdShortName, prev.Key())
	}

	if raw, ok := o.Default.Get(); ok {
		v, ok := o.Kind.normalize(raw)
		if !ok {
			return nil, optionErrorf(&o, "default %v (%T) does not match kind %s", raw, raw, o.Kind)
		}
		o.Default = Default(v)
	} else if o.Kind == Bool {
		o.Default = Default(false)
	} else {
		o.required = true
	}

	if o.CmdGroup == "" {
		o.CmdGroup = DefaultGroup
	}

	o.CmdOnly = o.CmdOnly || o.IsConfigFile || o.IsHelp
	o.setBy = SourceUnset

	opt := &o

	if _, ok := r.options[o.Section]; !ok {
		r.sections = append(r.sections, o.Section)
		r.options[o.Section] = make(map[string]*Option)
	}

	r.options[o.Section][o.Name] = opt
	r.order[o.Section] = append(r.order[o.Section], opt)

	if o.CmdName != "" {
		r.longFlags[o.CmdName] = opt
	}

	if o.CmdShortName != "" {
		r.shortFlags[o.CmdShortName] = opt
	}

	if o.IsConfigFile {
		r.configFile = opt
	}

	return opt, nil
}

// DefineArgs sets the positional argument spec, replacing any earlier one.
func (r *Registry) DefineArgs(spec ArgsSpec) error {
	if err := spec.check(); err != nil {
		return err
	}

	spec.Names = slices.Clone(spec.Names)
	r.args = &spec

	return nil
}

// Args returns the positional argument spec, if one was defined.
func (r *Registry) Args() (ArgsSpec, bool) {
	if r.args == nil {
		return ArgsSpec{}, false
	}

	return *r.args, true
}

// Sections returns section names in definition order.
func (r *Registry) Sections() []string {
	return append([]string(nil), r.sections...)
}

// Options returns the options of one section in definition order.
func (r *Registry) Options(section string) []*Option {
	return append([]*Option(nil), r.order[section]...)
}

// All returns every option, section by section, in definition order.
func (r *Registry) All() []*Option {
	var all []*Option
	for _, s := range r.sections {
		all = append(all, r.order[s]...)
	}

	return all
}

// Lookup finds an option by section and name.
func (r *Registry) Lookup(section, name string) (*Option, bool) {
	o, ok := r.options[section][name]
	return o, ok
}

// ConfigFileOption returns the option marked IsConfigFile, or nil.
func (r *Registry) ConfigFileOption() *Option {
	return r.configFile
}

