package schema

// Source records which input assigned an option its value.
type Source int

const (
	SourceUnset Source = iota
	SourceCLI
	SourceFile
	SourceDefault
)

func (s Source) String() string {
	switch s {
	case SourceCLI:
		return "command-line"
	case SourceFile:
		return "config-file"
	case SourceDefault:
		return "default"
	}

	return "unset"
}

// Values maps section -> name -> resolved value. A name is present only
// once some source assigned it.
type Values map[string]map[string]any

// Get returns the value of section.name.
func (v Values) Get(section, name string) (any, bool) {
	val, ok := v[section][name]
	return val, ok
}

// State is everything one resolution session owns: the schema, the resolved
// values, leftover arguments and the configuration file path in use.
type State struct {
	Registry *Registry
	Values   Values
	Args     []string

	// ConfigPath is the configuration file to read: the IsConfigFile default,
	// then whatever the command line or an explicit ParseConfig call gave.
	ConfigPath string
}

// NewState returns an empty State.
func NewState() *State {
	return &State{
		Registry: NewRegistry(),
		Values:   make(Values),
		Args:     []string{},
	}
}

// Define adds o to the registry and creates the value container of its
// section on first use.
func (s *State) Define(o Option) (*Option, error) {
	opt, err := s.Registry.Define(o)
	if err != nil {
		return nil, err
	}

	if _, ok := s.Values[opt.Section]; !ok {
		s.Values[opt.Section] = make(map[string]any)
	}

	if def, ok := opt.Default.Get(); ok && opt.IsConfigFile {
		s.ConfigPath = def.(string)
	}

	return opt, nil
}

// Assign stores v for o and records src as its provenance.
func (s *State) Assign(o *Option, v any, src Source) {
	if _, ok := s.Values[o.Section]; !ok {
		s.Values[o.Section] = make(map[string]any)
	}

	s.Values[o.Section][o.Name] = v
	o.setBy = src
}

// Lookup returns the resolved value of section.name.
func (s *State) Lookup(section, name string) (any, bool) {
	return s.Values.Get(section, name)
}

// SetArgs replaces the leftover positional arguments.
func (s *State) SetArgs(args []string) {
	s.Args = make([]string, len(args))
	copy(s.Args, args)
}
