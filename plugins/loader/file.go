// Package loader provides INI configuration file support for xopts.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-ini/ini"
	"github.com/sxwebdev/xopts/schema"
)

// Config describes how a configuration file is read.
type Config struct {
	// DisallowUnknownFields turns keys no option claims into a user error.
	DisallowUnknownFields bool
}

// New returns a plugin reading the INI file at path. An empty path means
// the one the session discovered: the command line value of the config
// file option, or its default.
func New(path string, config Config) *File {
	return &File{
		explicit: path,
		config:   config,
	}
}

// File is the configuration file plugin.
type File struct {
	explicit string
	config   Config

	path    string
	state   *schema.State
	unknown []string
}

func (f *File) Visit(state *schema.State) error {
	f.state = state

	path := f.explicit
	if path == "" {
		path = state.ConfigPath
	}

	if path == "" {
		return schema.Definitionf("pass a config file path to ParseConfig or define a command line option with IsConfigFile and an optional default")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve config file path %q: %w", path, err)
	}

	f.path = abs

	return nil
}

func (f *File) Parse() error {
	if _, err := os.Stat(f.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return schema.Userf("Configuration file %s does not exist.", f.path)
		}
		return schema.Userf("Could not read configuration file %s: %v.", f.path, err)
	}

	cfg, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:     true,
		IgnoreInlineComment: true,
	}, f.path)
	if err != nil {
		return schema.Userf("Could not parse configuration file %s: %v.", f.path, err)
	}

	f.state.ConfigPath = f.path

	var violations []string

	for _, o := range f.state.Registry.All() {
		if o.CmdOnly {
			continue
		}

		// Command line values and earlier reads are final.
		if src := o.SetBy(); src == schema.SourceCLI || src == schema.SourceFile {
			continue
		}

		sec, err := cfg.GetSection(o.Section)
		if err != nil {
			continue
		}

		if !sec.HasKey(o.Name) {
			if !o.Default.IsSet() {
				violations = append(violations, fmt.Sprintf("Could not parse configuration file %s: section %s option %s was not found.", f.path, o.Section, o.Name))
			}
			continue
		}

		// Value is the raw text; String would expand %(key)s references.
		raw := sec.Key(o.Name).Value()

		value, err := o.Kind.Parse(raw)
		if err != nil {
			violations = append(violations, fmt.Sprintf("Could not parse configuration file %s: section %s option %s must be of type %s, not %q.", f.path, o.Section, o.Name, o.Kind, raw))
			continue
		}

		f.state.Assign(o, value, schema.SourceFile)
	}

	f.unknown = findUnknownFields(cfg, f.state.Registry)

	if f.config.DisallowUnknownFields && len(f.unknown) > 0 {
		violations = append(violations, (&UnknownFieldsError{Path: f.path, Fields: f.unknown}).Error())
	}

	if len(violations) > 0 {
		return &schema.UserError{Violations: violations}
	}

	return nil
}

// Path returns the absolute path of the file, once Visit has run.
func (f *File) Path() string {
	return f.path
}

// UnknownFields returns the section.key entries found in the file that no
// option reads, sorted.
func (f *File) UnknownFields() []string {
	return f.unknown
}
