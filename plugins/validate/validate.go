package validate

import (
	"errors"
	"fmt"

	"github.com/sxwebdev/xopts/plugins"
	"github.com/sxwebdev/xopts/schema"
)

// CustomValidator inspects the resolved state after the built-in checks.
// A returned *schema.UserError contributes its violations, any other error
// becomes a single violation.
type CustomValidator func(state *schema.State) error

type validator struct {
	state           *schema.State
	customValidator []CustomValidator
}

// New returns a validator plugin.
// It accepts a list of CustomValidator functions.
//
// The built-in checks run in order: the configuration file option must have
// produced a path, every required option must have a value, and the number
// of positional arguments must match the definition. All problems found are
// returned together as one *schema.UserError.
//
// Example:
//
//	validate.New(func(s *schema.State) error {
//		if port, _ := s.Lookup("server", "port"); port.(int64) > 65535 {
//			return fmt.Errorf("server.port is out of range")
//		}
//		return nil
//	})
func New(validators ...CustomValidator) plugins.Plugin {
	v := &validator{}
	for _, validator := range validators {
		if validator == nil {
			continue
		}
		v.customValidator = append(v.customValidator, validator)
	}
	return v
}

func (v *validator) Visit(state *schema.State) error {
	v.state = state
	return nil
}

func (v *validator) Parse() error {
	if v == nil || v.state == nil {
		return nil
	}

	var violations []string

	configFile := v.state.Registry.ConfigFileOption()
	if configFile != nil && v.state.ConfigPath == "" {
		violations = append(violations, fmt.Sprintf("Required command line option %s was not specified.", configFile.Flag()))
	}

	for _, o := range v.state.Registry.All() {
		// The config file option is covered by the check above.
		if !o.Required() || o == configFile {
			continue
		}

		if _, ok := v.state.Lookup(o.Section, o.Name); ok {
			continue
		}

		violations = append(violations, missing(o))
	}

	if spec, ok := v.state.Registry.Args(); ok {
		if err := spec.Check(len(v.state.Args)); err != nil {
			violations = append(violations, violationsOf(err)...)
		}
	}

	for _, validator := range v.customValidator {
		if err := validator(v.state); err != nil {
			violations = append(violations, violationsOf(err)...)
		}
	}

	if len(violations) > 0 {
		return &schema.UserError{Violations: violations}
	}

	return nil
}

func missing(o *schema.Option) string {
	if !o.HasFlag() {
		return fmt.Sprintf("Required option %s was not specified in the config file.", o.Key())
	}

	if o.CmdOnly {
		return fmt.Sprintf("Required command line option %s was not specified.", o.Flag())
	}

	return fmt.Sprintf("Required command line option %s was not specified, and %s could not be found in the config file.", o.Flag(), o.Key())
}

func violationsOf(err error) []string {
	var ue *schema.UserError
	if errors.As(err, &ue) {
		return ue.Violations
	}

	return []string{err.Error()}
}
