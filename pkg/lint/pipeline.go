package lint

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/stylefix/pkg/config"
	"github.com/yaklabco/stylefix/pkg/document"
	"github.com/yaklabco/stylefix/pkg/fix"
	"github.com/yaklabco/stylefix/pkg/fsutil"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrDecodeFailure indicates bytes that could not be decoded as text.
	ErrDecodeFailure = errors.New("decode failure")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")

	// ErrFixBrokeDocument indicates fixes turned a valid document invalid.
	ErrFixBrokeDocument = errors.New("fix produced an invalid document")
)

// PipelineResult contains the result of processing a single file.
type PipelineResult struct {
	// FileResult contains diagnostics for the final content. In fix mode
	// these are the issues that remain after fixing.
	*FileResult

	// Path is the file path that was processed.
	Path string

	// OriginalInfo is the file state before processing.
	OriginalInfo *fsutil.FileInfo

	// InitialIssues is the number of diagnostics before any fix pass.
	InitialIssues int

	// Modified is true if the content was changed in memory.
	Modified bool

	// ModifiedContent is the new content after applying edits (nil if not modified).
	ModifiedContent []byte

	// Diff is the unified diff for dry-run mode (nil if not in dry-run).
	Diff *fix.Diff

	// Skipped is true if the file was not written despite pending changes.
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// BackupPath is the backup written before the file, if any.
	BackupPath string

	// Written is true if the file was written to disk.
	Written bool

	// FixPasses is the number of fix passes performed.
	FixPasses int

	// TotalEditsApplied is the total number of edits applied across all passes.
	TotalEditsApplied int
}

// Summary returns a human-readable summary of the pipeline result.
func (pr *PipelineResult) Summary() string {
	if pr.Skipped {
		return "skipped: " + pr.SkipReason
	}
	if pr.Written {
		if pr.BackupPath != "" {
			return "fixed (backup " + pr.BackupPath + ")"
		}
		return "fixed"
	}
	if pr.Modified {
		return "changes pending"
	}
	if pr.FileResult != nil && pr.HasIssues() {
		return "issues found"
	}
	return "ok"
}

// PipelineOptions controls pipeline behavior.
type PipelineOptions struct {
	// Fix enables rewrite mode.
	Fix bool

	// DryRun generates diffs without writing files.
	DryRun bool

	// Backup writes a copy of the original before overwriting. Nil disables backups.
	Backup fsutil.BackupWriter

	// Validate refuses fixes that make a parseable document unparseable.
	Validate bool

	// MaxFixPasses limits the number of fix iterations. A later pass can
	// pick up edits skipped for conflicts in an earlier one.
	// Zero means config.DefaultMaxFixPasses.
	MaxFixPasses int
}

// PipelineOptionsFromConfig creates PipelineOptions from config.Config.
func PipelineOptionsFromConfig(cfg *config.Config) PipelineOptions {
	if cfg == nil {
		return PipelineOptions{Validate: true}
	}
	opts := PipelineOptions{
		Fix:          cfg.Mode == config.ModeFix,
		DryRun:       cfg.DryRun,
		Validate:     cfg.ValidateFixes(),
		MaxFixPasses: cfg.Fix.MaxPasses,
	}
	if cfg.BackupsEnabled() {
		opts.Backup = fsutil.SidecarBackup{
			Suffix:   cfg.Backups.Suffix,
			Compress: cfg.CompressBackups(),
		}
	}
	return opts
}

// Pipeline orchestrates the safe processing of a single file.
type Pipeline struct {
	// Engine runs the rules.
	Engine *Engine
}

// NewPipeline creates a new pipeline with the given engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessFile runs the full pipeline for a single file:
//  1. Read and hash the original file, then decode it.
//  2. Lint, and in fix mode apply edits and re-lint until no edits remain
//     or the pass limit is hit.
//  3. Refuse fixes that break a previously valid YAML document.
//  4. Generate a diff in dry-run mode.
//  5. Check for concurrent modifications.
//  6. Write a backup when a backup writer is configured.
//  7. Re-encode and write the new content atomically.
func (p *Pipeline) ProcessFile(
	ctx context.Context,
	path string,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	raw, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	doc, err := document.Load(path, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeFailure, path, err)
	}

	result, err := p.process(ctx, doc, cfg, opts)
	if err != nil {
		return nil, err
	}
	result.OriginalInfo = info

	if !result.Modified || result.Skipped || opts.DryRun {
		return result, nil
	}

	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	if opts.Backup != nil {
		backupPath, err := opts.Backup.Backup(ctx, path, raw, info.Mode.Perm())
		if err != nil {
			return nil, fmt.Errorf("%w: backup: %w", ErrWriteFailure, err)
		}
		result.BackupPath = backupPath
	}

	out, err := document.Encode(result.ModifiedContent, doc.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	if err := fsutil.WriteAtomic(ctx, path, out, info.Mode.Perm()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	return result, nil
}

// ProcessContent processes in-memory content without file I/O.
// A diff is produced whenever fixes change the content.
func (p *Pipeline) ProcessContent(
	ctx context.Context,
	doc *document.Document,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	result, err := p.process(ctx, doc, cfg, opts)
	if err != nil {
		return nil, err
	}
	if result.Modified && result.Diff == nil {
		result.Diff = fix.GenerateDiff(doc.Path, doc.Content, result.ModifiedContent)
	}
	return result, nil
}

// process runs the lint and fix passes shared by ProcessFile and ProcessContent.
func (p *Pipeline) process(
	ctx context.Context,
	doc *document.Document,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	result := &PipelineResult{Path: doc.Path}

	maxPasses := opts.MaxFixPasses
	if maxPasses <= 0 {
		maxPasses = config.DefaultMaxFixPasses
	}

	current := doc
	var fileResult *FileResult
	stale := false

	for pass := 0; pass < maxPasses; pass++ {
		var err error
		fileResult, err = p.Engine.Lint(ctx, current, cfg)
		if err != nil {
			return nil, err
		}
		if pass == 0 {
			result.InitialIssues = fileResult.IssueCount()
		}
		stale = false

		if !opts.Fix || len(fileResult.Edits) == 0 {
			break
		}

		content := fix.ApplyEdits(current.Content, fileResult.Edits)
		result.FixPasses++
		result.TotalEditsApplied += len(fileResult.Edits)
		result.Modified = true
		stale = true

		next := document.New(doc.Path, doc.Kind, content)
		next.Encoding = doc.Encoding
		current = next
	}

	// The pass limit was reached with edits just applied.
	if stale {
		var err error
		fileResult, err = p.Engine.Lint(ctx, current, cfg)
		if err != nil {
			return nil, err
		}
	}

	result.FileResult = fileResult
	if !result.Modified {
		return result, nil
	}

	if string(current.Content) == string(doc.Content) {
		result.Modified = false
		return result, nil
	}
	result.ModifiedContent = current.Content

	if opts.Validate && document.Validate(doc.Kind, doc.Content) == nil {
		if err := document.Validate(doc.Kind, current.Content); err != nil {
			result.Skipped = true
			result.SkipReason = fmt.Errorf("%w: %w", ErrFixBrokeDocument, err).Error()
			return result, nil
		}
	}

	if opts.DryRun {
		result.Diff = fix.GenerateDiff(doc.Path, doc.Content, current.Content)
	}

	return result, nil
}

// categorizeError wraps an error with the matching pipeline error type.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}

	return err
}

// IsPipelineError checks if an error is a known pipeline error type.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrDecodeFailure) ||
		errors.Is(err, ErrWriteFailure)
}
