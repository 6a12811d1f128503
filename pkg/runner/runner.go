package runner

import (
	"context"
	"fmt"

	"github.com/yaklabco/stylefix/internal/logging"
	"github.com/yaklabco/stylefix/pkg/lint"
)

// Runner orchestrates multi-file linting using a lint.Pipeline.
type Runner struct {
	// Pipeline handles per-file processing with safety guarantees.
	Pipeline *lint.Pipeline
}

// New creates a new Runner with the given pipeline.
func New(pipeline *lint.Pipeline) *Runner {
	return &Runner{Pipeline: pipeline}
}

// Run discovers files under opts.Paths and processes them one at a time in
// sorted order. A failing file is recorded in its FileOutcome and the batch
// continues. Cancellation is checked between files; the partial result is
// returned along with the context error.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	return r.RunFiles(ctx, files, opts)
}

// RunFiles processes an explicit, already ordered file list.
func (r *Runner) RunFiles(ctx context.Context, files []string, opts Options) (*Result, error) {
	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	pipelineOpts := lint.PipelineOptionsFromConfig(opts.Config)

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("run cancelled: %w", err)
		}

		outcome := FileOutcome{Path: path}
		fileCtx, logger := logging.With(ctx, logging.FieldPath, path)

		pr, err := r.Pipeline.ProcessFile(fileCtx, path, opts.Config, pipelineOpts)
		switch {
		case err == nil:
			logger.Debug("file processed",
				logging.FieldIssues, len(pr.Diagnostics),
				logging.FieldStatus, pr.Summary(),
			)
			outcome.Result = pr
		case lint.IsPipelineError(err):
			// Unreadable, undecodable or unwritable files are expected in a batch.
			logger.Debug("file failed", logging.FieldError, err)
			outcome.Error = err
		default:
			logger.Warn("file failed", logging.FieldError, err)
			outcome.Error = err
		}

		result.accumulate(outcome)
	}

	return result, nil
}
