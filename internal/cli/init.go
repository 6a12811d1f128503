package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/stylefix/internal/logging"
	"github.com/yaklabco/stylefix/pkg/config"
	"github.com/yaklabco/stylefix/pkg/lint"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

type initFlags struct {
	force  bool
	toml   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a commented stylefix configuration file",
		Long: `Create a .stylefix.yml configuration file in the current directory.
Every rule is listed with its defaults so it can be tuned or disabled.`,
		Example: `  stylefix init                      # Create .stylefix.yml
  stylefix init --toml               # Create .stylefix.toml
  stylefix init -o ci/stylefix.yml   # Write to a custom path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.toml, "toml", false, "write TOML instead of YAML")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: .stylefix.yml or .stylefix.toml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.FromContext(cmd.Context())

	format := config.FileFormatYAML
	outputPath := flags.output
	if flags.toml {
		format = config.FileFormatTOML
	}
	if outputPath == "" {
		outputPath = ".stylefix.yml"
		if flags.toml {
			outputPath = ".stylefix.toml"
		}
	} else if !flags.toml {
		format = config.FileFormatFor(outputPath)
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return usageErrorf(fmt.Errorf("file %q already exists; use --force to overwrite", outputPath))
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content := config.GenerateTemplate(config.TemplateOptions{
		Format: format,
		Rules:  templateRules(ruleInfos(lint.DefaultRegistry)),
	})

	if err := os.WriteFile(absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'stylefix rules' to see all available rules")

	return nil
}
