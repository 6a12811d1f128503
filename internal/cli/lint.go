package cli

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/stylefix/internal/configloader"
	"github.com/yaklabco/stylefix/internal/logging"
	"github.com/yaklabco/stylefix/pkg/config"
	"github.com/yaklabco/stylefix/pkg/document"
	"github.com/yaklabco/stylefix/pkg/lint"
	_ "github.com/yaklabco/stylefix/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/stylefix/pkg/reporter"
	"github.com/yaklabco/stylefix/pkg/runner"
)

type lintFlags struct {
	format     string
	kinds      []string
	enable     []string
	disable    []string
	ignore     []string
	lineLength int
	maxIssues  int
	ruleFormat string
	compact    bool
	symlinks   bool

	// fix only
	dryRun       bool
	backup       bool
	backupSuffix string
	compress     bool
}

func newCheckCommand(globals *globalFlags) *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report style issues without changing files",
		Long: `Check Markdown, YAML and Jinja files for style issues.

By default, checks every supported file under the current directory.
Directories such as .git, node_modules and virtualenvs are skipped.
Exits 1 when any issue is found and 2 when a file could not be read.`,
		Example: `  stylefix check                     # Check current directory
  stylefix check docs/ roles/        # Check specific directories
  stylefix check --kind yaml         # Only Ansible YAML
  stylefix check --format json       # Machine-readable output
  stylefix check --format diff       # Show what fix would change`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, globals, flags, config.ModeCheck)
		},
	}

	addSharedFlags(cmd, flags)

	return cmd
}

func newFixCommand(globals *globalFlags) *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Rewrite files to fix style issues",
		Long: `Fix style issues in place.

Each file is fixed in memory until no rule proposes further edits, then
written atomically. Issues that cannot be fixed automatically are counted
for manual review. Per-file failures are reported without stopping the run.`,
		Example: `  stylefix fix                       # Fix current directory
  stylefix fix --dry-run             # Show diffs, write nothing
  stylefix fix --backup README.md    # Keep README.md.bak`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, globals, flags, config.ModeFix)
		},
	}

	addSharedFlags(cmd, flags)
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "show what would change without writing")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep a copy of each file before fixing it")
	cmd.Flags().StringVar(&flags.backupSuffix, "backup-suffix", config.DefaultBackupSuffix, "suffix for backup files")
	cmd.Flags().BoolVar(&flags.compress, "backup-compress", false, "zstd-compress backup files")

	return cmd
}

func addSharedFlags(cmd *cobra.Command, flags *lintFlags) {
	cmd.Flags().StringVar(&flags.format, "format", string(config.FormatText), "output format: text, json, diff, summary")
	cmd.Flags().StringSliceVar(&flags.kinds, "kind", nil, "document kinds to process: md, yaml, jinja")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs or names to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs or names to disable")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns of files to skip")
	cmd.Flags().IntVar(&flags.lineLength, "line-length", config.DefaultLineLength, "maximum line length for MD013")
	cmd.Flags().IntVar(&flags.maxIssues, "max-issues", config.DefaultMaxIssuesPerFile, "issues listed per file in text output")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", string(config.RuleFormatID),
		"rule identifier format in output: id, name, or combined")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minified JSON output")
	cmd.Flags().BoolVar(&flags.symlinks, "follow-symlinks", false, "descend into symlinked directories")
}

// cliConfig converts explicitly set flags into a config overlay.
func (f *lintFlags) cliConfig(cmd *cobra.Command, globals *globalFlags, mode config.RunMode) (*config.Config, error) {
	changed := cmd.Flags().Changed
	cfg := &config.Config{
		Mode:         mode,
		Quiet:        globals.quiet,
		DryRun:       f.dryRun,
		EnableRules:  f.enable,
		DisableRules: f.disable,
		Ignore:       f.ignore,
	}

	if changed("format") {
		format, err := reporter.ParseFormat(f.format)
		if err != nil {
			return nil, usageErrorf(err)
		}
		cfg.Format = format
	}

	if changed("color") {
		colorMode := config.ColorMode(globals.color)
		if !slices.Contains([]config.ColorMode{config.ColorAuto, config.ColorAlways, config.ColorNever}, colorMode) {
			return nil, usageErrorf(fmt.Errorf("invalid color mode %q: must be auto, always or never", globals.color))
		}
		cfg.Color = colorMode
	}

	if changed("kind") {
		for _, name := range f.kinds {
			if _, ok := document.ParseKind(name); !ok {
				return nil, usageErrorf(fmt.Errorf("unknown kind %q: must be md, yaml or jinja", name))
			}
		}
		cfg.Kinds = f.kinds
	}

	if changed("line-length") {
		if f.lineLength <= 0 {
			return nil, usageErrorf(errors.New("--line-length must be positive"))
		}
		cfg.LineLength = f.lineLength
	}

	if changed("max-issues") {
		if f.maxIssues <= 0 {
			return nil, usageErrorf(errors.New("--max-issues must be positive"))
		}
		cfg.MaxIssuesPerFile = f.maxIssues
	}

	if changed("rule-format") {
		cfg.RuleFormat = config.RuleFormat(f.ruleFormat)
	}

	if changed("follow-symlinks") {
		cfg.FollowSymlinks = config.BoolPtr(f.symlinks)
	}

	if changed("backup") {
		cfg.Backups.Enabled = config.BoolPtr(f.backup)
	}
	if changed("backup-suffix") {
		if f.backupSuffix == "" {
			return nil, usageErrorf(errors.New("--backup-suffix must not be empty"))
		}
		cfg.Backups.Suffix = f.backupSuffix
	}
	if changed("backup-compress") {
		cfg.Backups.Compress = config.BoolPtr(f.compress)
	}

	return cfg, nil
}

func runLint(cmd *cobra.Command, args []string, globals *globalFlags, flags *lintFlags, mode config.RunMode) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	cliCfg, err := flags.cliConfig(cmd, globals, mode)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:          workDir,
		ExplicitPath:        globals.configPath,
		IgnoreUserConfig:    globals.noConfig,
		IgnoreProjectConfig: globals.noConfig,
		CLIConfig:           cliCfg,
	})
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	cfg := loadResult.Config
	logger.Debug("configuration loaded",
		logging.FieldConfig, loadResult.LoadedFrom,
		logging.FieldMode, cfg.Mode,
		logging.FieldKinds, cfg.Kinds,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldBackup, cfg.BackupsEnabled(),
	)

	// A diff in check mode is a dry-run fix that is still judged by its issues.
	runCfg := cfg
	if cfg.Mode == config.ModeCheck && cfg.Format == config.FormatDiff {
		runCfg = cfg.Clone()
		runCfg.Mode = config.ModeFix
		runCfg.DryRun = true
	}

	pipeline := lint.NewPipeline(lint.NewEngine(lint.DefaultRegistry))
	lintRunner := runner.New(pipeline)

	runOpts := runner.OptionsFromConfig(runCfg, args)
	runOpts.WorkingDir = workDir

	logger.Debug("starting run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
	)

	result, runErr := lintRunner.Run(ctx, runOpts)
	if result == nil {
		return fmt.Errorf("discover files: %w", runErr)
	}

	repOpts := reporter.OptionsFromConfig(cfg, cmd.OutOrStdout(), workDir)
	repOpts.Compact = flags.compact

	rep, err := reporter.New(repOpts)
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	logger.Debug("run complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
		logging.FieldDiagnosticsTotal, result.Stats.DiagnosticsTotal,
		logging.FieldFilesModified, result.Stats.FilesModified,
	)

	if runErr != nil {
		return runErr
	}

	switch ExitCodeFromResult(result, cfg.Mode) {
	case ExitFileErrors:
		return ErrFileErrors
	case ExitIssuesFound:
		return ErrIssuesFound
	default:
		return nil
	}
}
