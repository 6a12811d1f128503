package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/stylefix/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	Color config.ColorMode

	// Mode selects the check or fix layout of text output.
	Mode config.RunMode

	// DryRun words fix output as pending changes.
	DryRun bool

	// Quiet drops lines for files that needed no changes.
	Quiet bool

	// MaxIssuesPerFile limits the issues listed per file in text output.
	// Zero or negative means config.DefaultMaxIssuesPerFile.
	MaxIssuesPerFile int

	// Compact uses minified JSON.
	Compact bool

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat config.RuleFormat

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:           os.Stdout,
		Format:           FormatText,
		Color:            config.ColorAuto,
		Mode:             config.ModeCheck,
		MaxIssuesPerFile: config.DefaultMaxIssuesPerFile,
		RuleFormat:       config.RuleFormatID,
	}
}

// OptionsFromConfig derives reporter options from the resolved config.
func OptionsFromConfig(cfg *config.Config, w io.Writer, workDir string) Options {
	opts := DefaultOptions()
	if w != nil {
		opts.Writer = w
	}
	opts.WorkingDir = workDir
	if cfg == nil {
		return opts
	}
	if cfg.Format != "" {
		opts.Format = cfg.Format
	}
	if cfg.Color != "" {
		opts.Color = cfg.Color
	}
	if cfg.Mode != "" {
		opts.Mode = cfg.Mode
	}
	if cfg.RuleFormat != "" {
		opts.RuleFormat = cfg.RuleFormat
	}
	if cfg.MaxIssuesPerFile > 0 {
		opts.MaxIssuesPerFile = cfg.MaxIssuesPerFile
	}
	opts.DryRun = cfg.DryRun
	opts.Quiet = cfg.Quiet
	return opts
}

// maxIssues returns the effective per-file issue limit.
func (o Options) maxIssues() int {
	if o.MaxIssuesPerFile <= 0 {
		return config.DefaultMaxIssuesPerFile
	}
	return o.MaxIssuesPerFile
}

