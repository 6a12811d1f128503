package runner

import (
	"github.com/yaklabco/stylefix/pkg/config"
	"github.com/yaklabco/stylefix/pkg/lint"
)

// FileOutcome wraps PipelineResult with resolved path metadata.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the pipeline result for this file.
	// Nil if the file encountered an error during processing.
	Result *lint.PipelineResult

	// Error is set if the file could not be processed.
	Error error
}

// Fixed reports whether the file was rewritten, or would be in a dry run.
func (o FileOutcome) Fixed() bool {
	if o.Error != nil || o.Result == nil || o.Result.Skipped {
		return false
	}
	return o.Result.Written || (o.Result.Modified && o.Result.Diff != nil)
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesSkipped is the number of files whose fixes were not written.
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one diagnostic
	// before fixing.
	FilesWithIssues int

	// FilesModified is the number of files changed by fixes. In a dry run
	// this counts the files that would change.
	FilesModified int

	// DiagnosticsTotal is the number of diagnostics across all files. In
	// fix mode it counts the issues left after fixing.
	DiagnosticsTotal int

	// DiagnosticsFixable is the number of diagnostics that have auto-fixes.
	DiagnosticsFixable int

	// DiagnosticsBySeverity maps severity levels to counts.
	DiagnosticsBySeverity map[string]int

	// InitialIssues is the number of diagnostics found before any fix pass.
	InitialIssues int

	// EditsApplied is the number of edits applied across all files.
	EditsApplied int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any diagnostics with error severity occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsBySeverity[string(config.SeverityError)] > 0
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0
}

// HasErrors reports whether any file could not be processed.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		DiagnosticsBySeverity: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	res := outcome.Result
	if res == nil {
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.InitialIssues += res.InitialIssues
	r.Stats.EditsApplied += res.TotalEditsApplied

	if res.Skipped {
		r.Stats.FilesSkipped++
	}
	if outcome.Fixed() {
		r.Stats.FilesModified++
	}
	if res.InitialIssues > 0 {
		r.Stats.FilesWithIssues++
	}

	if res.FileResult == nil {
		return
	}

	r.Stats.DiagnosticsTotal += len(res.Diagnostics)
	r.Stats.DiagnosticsFixable += res.FixableCount()

	for _, diag := range res.Diagnostics {
		severity := string(diag.Severity)
		if severity == "" {
			severity = string(config.SeverityWarning)
		}
		r.Stats.DiagnosticsBySeverity[severity]++
	}
}
