package xopts

import (
	"errors"
	"fmt"
	"os"

	"github.com/sxwebdev/xopts/plugins/defaults"
	"github.com/sxwebdev/xopts/plugins/flag"
	"github.com/sxwebdev/xopts/plugins/loader"
	"github.com/sxwebdev/xopts/plugins/validate"
	"github.com/sxwebdev/xopts/schema"
)

// ParseArgs reads the command line (without the program name). Values it
// finds override every other source. If the help flag is given, the usage
// text is printed, the exit func is called with ExitOK and ErrUsage is
// returned.
func (s *Session) ParseArgs(args []string) error {
	err := s.run(flag.New(args))
	if errors.Is(err, ErrUsage) {
		fmt.Fprintln(s.options.stdout, s.Usage())
		s.options.exit(ExitOK)
		return err
	}

	if err != nil {
		return err
	}

	s.logger().Debug().
		Int("args", len(s.state.Args)).
		Str("config", s.state.ConfigPath).
		Msg("command line parsed")

	return nil
}

// ParseConfig reads the INI file at path, or the discovered config file
// when path is empty. Options already set from the command line or a
// previous file are left alone.
func (s *Session) ParseConfig(path string) error {
	file := loader.New(path, loader.Config{
		DisallowUnknownFields: s.options.disallowUnknownFields,
	})

	err := s.run(file)
	if file.Path() != "" {
		s.unknown = file.UnknownFields()
	}

	for _, field := range s.unknown {
		s.logger().Warn().
			Str("file", file.Path()).
			Str("option", field).
			Msg("unknown option in config file")
	}

	if err != nil {
		return err
	}

	s.logger().Debug().Str("file", file.Path()).Msg("config file parsed")

	return nil
}

// SetDefaults assigns defaults to every option no source has set.
func (s *Session) SetDefaults() error {
	d := defaults.New()
	if err := s.run(d); err != nil {
		return err
	}

	s.logger().Debug().Int("applied", d.Applied()).Msg("defaults applied")

	return nil
}

// Verify checks that the config file was found, every required option has
// a value and the positional arguments match their definition.
func (s *Session) Verify() error {
	return s.run(validate.New(s.options.validators...))
}

// Resolve runs the whole pipeline: command line, config file (when one is
// known), defaults, extra plugins and verification.
func (s *Session) Resolve(args []string) error {
	if err := s.ParseArgs(args); err != nil {
		return err
	}

	if s.options.configFile != "" || s.state.ConfigPath != "" {
		if err := s.ParseConfig(s.options.configFile); err != nil {
			return err
		}
	}

	if err := s.SetDefaults(); err != nil {
		return err
	}

	for _, plug := range s.options.plugins {
		if err := s.run(plug); err != nil {
			return err
		}
	}

	return s.Verify()
}

// Init resolves args, or os.Args[1:] when args is nil, and stops the
// program on failure: user errors print the problem and the usage text and
// exit with ExitUsage, other errors exit with ExitFailure. A definition
// error is a bug in the program and panics.
func (s *Session) Init(args []string) {
	if args == nil {
		args = os.Args[1:]
	}

	err := s.Resolve(args)

	switch {
	case err == nil, errors.Is(err, ErrUsage):
		return
	case schema.IsDefinitionError(err):
		panic(err)
	case schema.IsUserError(err):
		fmt.Fprintf(s.options.stderr, "%s\n\n%s\n", err, s.Usage())
		s.options.exit(ExitUsage)
	default:
		fmt.Fprintln(s.options.stderr, err)
		s.options.exit(ExitFailure)
	}
}
