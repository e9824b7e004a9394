package xopts

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/sxwebdev/xopts/plugins"
	"github.com/sxwebdev/xopts/plugins/validate"
)

type Option func(*options)

type options struct {
	programName string

	stdout io.Writer
	stderr io.Writer
	exit   func(code int)

	logger zerolog.Logger

	// DisallowUnknownFields set to true will cause loading to fail if the config file holds keys no option reads.
	disallowUnknownFields bool

	// configFile is read by Resolve even when no config file option is defined.
	configFile string

	plugins    []plugins.Plugin
	validators []validate.CustomValidator
}

func defaultOptions() *options {
	return &options{
		programName: filepath.Base(os.Args[0]),
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		exit:        os.Exit,
		logger:      zerolog.Nop(),
	}
}

// WithProgramName sets the name shown in usage lines. It defaults to the
// base name of os.Args[0].
func WithProgramName(name string) Option {
	return func(o *options) {
		o.programName = name
	}
}

// WithOutput redirects what Init and the help flag print.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(o *options) {
		o.stdout = stdout
		o.stderr = stderr
	}
}

// WithExitFunc replaces os.Exit.
func WithExitFunc(exit func(code int)) Option {
	return func(o *options) {
		o.exit = exit
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithDisallowUnknownFields() Option {
	return func(o *options) {
		o.disallowUnknownFields = true
	}
}

func WithConfigFile(path string) Option {
	return func(o *options) {
		o.configFile = path
	}
}

// WithPlugins adds plugins that Resolve runs after the defaults pass and
// before validation. Each must implement plugins.Visitor.
func WithPlugins(plugins ...plugins.Plugin) Option {
	return func(o *options) {
		o.plugins = append(o.plugins, plugins...)
	}
}

func WithValidators(validators ...validate.CustomValidator) Option {
	return func(o *options) {
		o.validators = append(o.validators, validators...)
	}
}
