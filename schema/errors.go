package schema

import (
	"errors"
	"fmt"
	"strings"
)

// DefinitionError reports a mistake in the option schema itself. It is a bug
// in the calling program and must never be shown to users as bad input.
type DefinitionError struct {
	Section string
	Name    string
	Msg     string
}

func (e *DefinitionError) Error() string {
	if e.Section == "" && e.Name == "" {
		return "xopts: " + e.Msg
	}

	return fmt.Sprintf("xopts: option %s.%s: %s", e.Section, e.Name, e.Msg)
}

// Definitionf returns a DefinitionError that is not tied to one option.
func Definitionf(format string, args ...any) *DefinitionError {
	return &DefinitionError{Msg: fmt.Sprintf(format, args...)}
}

func optionErrorf(o *Option, format string, args ...any) *DefinitionError {
	return &DefinitionError{Section: o.Section, Name: o.Name, Msg: fmt.Sprintf(format, args...)}
}

// UserError collects problems caused by untrusted input: the command line,
// the configuration file or missing values. Each violation is one line.
type UserError struct {
	Violations []string
}

func (e *UserError) Error() string {
	return strings.Join(e.Violations, "\n")
}

// Userf returns a UserError holding a single violation.
func Userf(format string, args ...any) *UserError {
	return &UserError{Violations: []string{fmt.Sprintf(format, args...)}}
}

// IsUserError reports whether err wraps a *UserError.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}

// IsDefinitionError reports whether err wraps a *DefinitionError.
func IsDefinitionError(err error) bool {
	var de *DefinitionError
	return errors.As(err, &de)
}
