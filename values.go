package xopts

import (
	"fmt"
	"io"
	"slices"

	"github.com/mitchellh/mapstructure"
	"github.com/sxwebdev/xopts/export"
	"github.com/sxwebdev/xopts/schema"
)

// Values returns the resolved values, section -> name -> value. Strings,
// int64, float64 and bool are the only value types.
func (s *Session) Values() schema.Values {
	return s.state.Values
}

// Lookup returns the resolved value of section.name.
func (s *Session) Lookup(section, name string) (any, bool) {
	return s.state.Lookup(section, name)
}

// String returns the value of a text option, or "" when it has none.
func (s *Session) String(section, name string) string {
	v, _ := s.Lookup(section, name)
	str, _ := v.(string)
	return str
}

// Int returns the value of an integer option, or 0 when it has none.
func (s *Session) Int(section, name string) int64 {
	v, _ := s.Lookup(section, name)
	n, _ := v.(int64)
	return n
}

// Float returns the value of a float option, or 0 when it has none.
func (s *Session) Float(section, name string) float64 {
	v, _ := s.Lookup(section, name)
	f, _ := v.(float64)
	return f
}

// Bool returns the value of a boolean option, or false when it has none.
func (s *Session) Bool(section, name string) bool {
	v, _ := s.Lookup(section, name)
	b, _ := v.(bool)
	return b
}

// Source reports where the value of section.name came from.
func (s *Session) Source(section, name string) schema.Source {
	o, ok := s.state.Registry.Lookup(section, name)
	if !ok {
		return schema.SourceUnset
	}

	return o.SetBy()
}

// Args returns the positional arguments left after the flags.
func (s *Session) Args() []string {
	return slices.Clone(s.state.Args)
}

// ConfigFile returns the configuration file path in use, if any.
func (s *Session) ConfigFile() string {
	return s.state.ConfigPath
}

// UnknownFields returns the section.key entries of the last config file
// read that no option claims.
func (s *Session) UnknownFields() []string {
	return slices.Clone(s.unknown)
}

// Scan decodes the resolved values of section into target, a pointer to a
// struct. Fields are matched by their `opt` tag, or by name.
func (s *Session) Scan(section string, target any) error {
	if _, ok := s.state.Values[section]; !ok {
		return fmt.Errorf("section %q is not defined", section)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "opt",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(s.state.Values[section]); err != nil {
		return fmt.Errorf("failed to decode section %q: %w", section, err)
	}

	return nil
}

// Export writes the resolved values in format. Command line only options
// are left out.
func (s *Session) Export(w io.Writer, format export.Format) error {
	doc := export.Document{}

	for _, section := range s.state.Registry.Sections() {
		var entries []export.Entry
		for _, o := range s.state.Registry.Options(section) {
			if o.CmdOnly {
				continue
			}

			if v, ok := s.Lookup(o.Section, o.Name); ok {
				entries = append(entries, export.Entry{Name: o.Name, Value: v})
			}
		}

		if len(entries) > 0 {
			doc = append(doc, export.Section{Name: section, Entries: entries})
		}
	}

	return export.Write(w, doc, format)
}
