// Package cli provides the Cobra command structure for stylefix.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/yaklabco/stylefix/internal/logging"
	"github.com/yaklabco/stylefix/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	debug      bool
	quiet      bool
	configPath string
	noConfig   bool
	color      string
}

// NewRootCommand creates the root stylefix command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	globals := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "stylefix",
		Short: "Lint and fix Markdown and Ansible YAML style issues",
		Long: `stylefix checks Markdown documents and Ansible YAML files for common
style problems and can rewrite them in place.

Markdown rules cover fenced code blocks, blank lines around headings, lists
and fences, trailing whitespace, line length, bare URLs and the final newline.
YAML rules cover fully qualified module names, truthy values, Jinja
expression spacing, trailing whitespace and CRLF line endings.

Use "check" to report issues and "fix" to rewrite files. Fixes are
idempotent: running fix twice changes nothing the second time.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := "info"
			if globals.debug {
				level = "debug"
			}
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)
			logging.SetDefault(logger)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.WithLogger(ctx, logger))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&globals.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&globals.quiet, "quiet", "q", false, "only print files that need attention")
	rootCmd.PersistentFlags().StringVar(&globals.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&globals.noConfig, "no-config", false,
		"ignore user and project config files")
	rootCmd.PersistentFlags().StringVar(&globals.color, "color", string(config.ColorAuto),
		"colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageErrorf(err)
	})

	rootCmd.AddCommand(newCheckCommand(globals))
	rootCmd.AddCommand(newFixCommand(globals))
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(config.ColorAuto)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
