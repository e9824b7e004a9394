package xopts

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/sxwebdev/xopts/plugins"
	"github.com/sxwebdev/xopts/schema"
)

// ErrUsage is returned by ParseArgs and Resolve when the help option was
// given, after the usage text has been printed.
var ErrUsage = plugins.ErrUsage

// Exit statuses used by Init.
const (
	ExitOK      = 0
	ExitFailure = 1
	// ExitUsage is EX_USAGE from sysexits.h.
	ExitUsage = 64
)

// Session owns one option schema and the values resolved for it. Sessions
// are independent of each other and are not safe for concurrent use.
type Session struct {
	state   *schema.State
	options *options

	unknown []string
}

// New returns an empty Session.
func New(opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Session{
		state:   schema.NewState(),
		options: o,
	}
}

// Define adds an option to the schema. Mistakes in the definition are
// reported as *schema.DefinitionError.
func (s *Session) Define(o schema.Option) error {
	opt, err := s.state.Define(o)
	if err != nil {
		return err
	}

	s.logger().Debug().
		Str("option", opt.Key()).
		Str("kind", opt.Kind.String()).
		Bool("required", opt.Required()).
		Msg("option defined")

	return nil
}

// MustDefine is like Define but panics on a definition error.
func (s *Session) MustDefine(o schema.Option) {
	if err := s.Define(o); err != nil {
		panic(err)
	}
}

// DefineArgs sets the positional arguments the program expects.
func (s *Session) DefineArgs(spec schema.ArgsSpec) error {
	return s.state.Registry.DefineArgs(spec)
}

// State exposes the session state to custom plugins and validators.
func (s *Session) State() *schema.State {
	return s.state
}

func (s *Session) logger() *zerolog.Logger {
	return &s.options.logger
}

// run hands the session state to plug and parses it.
func (s *Session) run(plug plugins.Plugin) error {
	visitorPlugin, ok := plug.(plugins.Visitor)
	if !ok {
		return errors.New("unsupported plugin. expecting a Visitor")
	}

	if err := visitorPlugin.Visit(s.state); err != nil {
		return err
	}

	return plug.Parse()
}
