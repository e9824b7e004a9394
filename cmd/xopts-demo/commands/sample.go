package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newSampleConfigCommand() *cobra.Command {
	var write string

	cmd := &cobra.Command{
		Use:   "sample-config",
		Short: "Print a configuration file skeleton",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Root().Name())
			if err != nil {
				return err
			}

			if write == "" {
				fmt.Fprint(cmd.OutOrStdout(), s.GenerateSampleConfig())
				return nil
			}

			if err := s.WriteSampleConfig(write); err != nil {
				return err
			}

			log.Info().Str("path", write).Msg("sample config written")

			return nil
		},
	}

	cmd.Flags().StringVarP(&write, "write", "w", "", "write to this file instead of stdout")

	return cmd
}

func newMarkdownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "markdown",
		Short: "Print the option reference as a Markdown table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Root().Name())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), s.Markdown())

			return nil
		},
	}
}
