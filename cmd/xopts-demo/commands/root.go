package commands

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/sxwebdev/xopts"
	"github.com/sxwebdev/xopts/export"
	"github.com/sxwebdev/xopts/schema"
)

const defaultConfigFile = "xopts-demo.conf"

// Execute runs the root command
func Execute(version string) error {
	return newRootCommand(version).Execute()
}

func newRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xopts-demo [options] [file] ...",
		Short: "Resolve options from flags, an INI file and defaults",
		Long: `xopts-demo resolves its options from the command line, the configuration
file named by --config and built-in defaults, then prints the result.

Run "xopts-demo sample-config --write xopts-demo.conf" to create a config file.`,
		Version: version,

		// Flags belong to the xopts session, not to cobra.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,

		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Name())
			if err != nil {
				return err
			}

			s.Init(args)

			format, err := export.ParseFormat(s.String("output", "format"))
			if err != nil {
				return err
			}

			for _, field := range s.UnknownFields() {
				log.Warn().Str("option", field).Msg("ignored config file entry")
			}

			if files := s.Args(); len(files) > 0 {
				log.Info().Strs("files", files).Msg("positional arguments")
			}

			return s.Export(cmd.OutOrStdout(), format)
		},
	}

	rootCmd.AddCommand(newSampleConfigCommand())
	rootCmd.AddCommand(newMarkdownCommand())

	return rootCmd
}

// newSession declares the demo options.
func newSession(program string) (*xopts.Session, error) {
	s := xopts.New(
		xopts.WithProgramName(program),
		xopts.WithLogger(log.Logger),
		xopts.WithValidators(checkPort, checkFormat),
	)

	defs := []schema.Option{
		{Section: "server", Name: "host", CmdName: "host", Default: schema.Default("localhost"), Help: "address to listen on"},
		{Section: "server", Name: "port", CmdName: "port", CmdShortName: "p", Kind: schema.Int, Default: schema.Default(8080), Help: "port to listen on"},
		{Section: "server", Name: "timeout", Kind: schema.Float, Default: schema.Default(2.5)},
		{Section: "server", Name: "debug", CmdName: "debug", CmdShortName: "d", Kind: schema.Bool, Help: "enable debug mode"},
		{Section: "auth", Name: "token", CmdName: "token", Help: "API token"},
		{Section: "output", Name: "format", CmdName: "format", CmdShortName: "f", Default: schema.Default(string(export.INI)), Help: "output format: " + formatNames(), CmdGroup: "output"},
		{Section: "cmd", Name: "config", CmdName: "config", CmdShortName: "c", IsConfigFile: true, Default: schema.Default(defaultConfigFile), Help: "configuration file"},
		{Section: "cmd", Name: "help", CmdName: "help", CmdShortName: "h", Kind: schema.Bool, IsHelp: true, CmdGroup: "help", Help: "show this help"},
	}

	for _, def := range defs {
		if err := s.Define(def); err != nil {
			return nil, err
		}
	}

	if err := s.DefineArgs(schema.CountArgs(schema.ZeroOrMore, "file")); err != nil {
		return nil, err
	}

	return s, nil
}

func checkPort(state *schema.State) error {
	port, ok := state.Lookup("server", "port")
	if !ok {
		return nil
	}

	if p := port.(int64); p < 1 || p > 65535 {
		return fmt.Errorf("Port %d is out of range.", p)
	}

	return nil
}

func checkFormat(state *schema.State) error {
	format, ok := state.Lookup("output", "format")
	if !ok {
		return nil
	}

	if _, err := export.ParseFormat(format.(string)); err != nil {
		return fmt.Errorf("Output format %q is not one of %s.", format, formatNames())
	}

	return nil
}

func formatNames() string {
	names := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		names[i] = string(f)
	}

	return strings.Join(names, ", ")
}
