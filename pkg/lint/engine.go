package lint

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/yaklabco/stylefix/pkg/config"
	"github.com/yaklabco/stylefix/pkg/document"
	"github.com/yaklabco/stylefix/pkg/fix"
)

// FileResult contains the results of linting a single document.
type FileResult struct {
	// Doc is the linted document.
	Doc *document.Document

	// Diagnostics contains all issues found, sorted by position.
	Diagnostics []Diagnostic

	// Edits contains validated, sorted edits for auto-fix.
	// Empty unless the run is in fix mode.
	Edits []fix.TextEdit

	// SkippedEdits contains edits that were skipped due to conflicts.
	// When edits overlap, the earlier one (by start position) wins.
	SkippedEdits []fix.TextEdit

	// EditConflicts is true if any edits were skipped due to conflicts.
	EditConflicts bool

	// RuleErrors contains any errors from rule execution.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// HasFixes returns true if any fixes are available.
func (fr *FileResult) HasFixes() bool {
	return len(fr.Edits) > 0
}

// IssueCount returns the total number of diagnostics.
func (fr *FileResult) IssueCount() int {
	return len(fr.Diagnostics)
}

// FixableCount returns the number of diagnostics with fixes.
func (fr *FileResult) FixableCount() int {
	count := 0
	for _, d := range fr.Diagnostics {
		if d.HasFix() {
			count++
		}
	}
	return count
}

// Engine runs rules against documents.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine backed by registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// LintContent builds a document for content and lints it. The kind is
// taken from the path extension.
func (e *Engine) LintContent(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	return e.Lint(ctx, document.New(path, document.Detect(path), content), cfg)
}

// Lint runs every enabled rule that applies to doc.Kind.
func (e *Engine) Lint(ctx context.Context, doc *document.Document, cfg *config.Config) (*FileResult, error) {
	resolved := ResolveRules(e.Registry, cfg, doc.Kind)

	result := &FileResult{
		Doc:        doc,
		RuleErrors: make(map[string]error),
	}

	// Rules share one scan of the document.
	scan := Scan(doc)

	var allEdits []fix.TextEdit

	for _, rr := range resolved {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, doc, cfg, rr.Config)
		ruleCtx.Registry = e.Registry
		ruleCtx.scan = scan

		diags, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			continue
		}

		for i := range diags {
			diags[i].Severity = rr.Severity
			if diags[i].FilePath == "" {
				diags[i].FilePath = doc.Path
			}
			if diags[i].RuleName == "" {
				diags[i].RuleName = rr.Rule.Name()
			}
			if rr.AutoFix && len(diags[i].FixEdits) > 0 {
				allEdits = append(allEdits, diags[i].FixEdits...)
			}
		}

		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	SortDiagnostics(result.Diagnostics)

	if len(allEdits) > 0 {
		accepted, skipped, err := fix.Prepare(allEdits, len(doc.Content))
		if err != nil {
			// A rule produced an out-of-range edit; report but do not fix.
			result.EditConflicts = true
		} else {
			result.Edits = accepted
			result.SkippedEdits = skipped
			result.EditConflicts = len(skipped) > 0
		}
	}

	return result, nil
}

// SortDiagnostics orders diagnostics by line, column, then rule ID.
func SortDiagnostics(diags []Diagnostic) {
	slices.SortStableFunc(diags, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.StartLine, b.StartLine),
			cmp.Compare(a.StartColumn, b.StartColumn),
			cmp.Compare(a.RuleID, b.RuleID),
		)
	})
}
