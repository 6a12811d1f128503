// Package lint provides the rule engine, line scanner, diagnostics, and
// registry for stylefix.
package lint

import (
	"fmt"

	"github.com/yaklabco/stylefix/pkg/config"
	"github.com/yaklabco/stylefix/pkg/document"
	"github.com/yaklabco/stylefix/pkg/fix"
)

// Diagnostic represents a single issue found in a file.
type Diagnostic struct {
	// RuleID is the identifier of the rule that produced this diagnostic.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "no-trailing-spaces").
	RuleName string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the diagnostic.
	Severity config.Severity

	// FilePath is the path to the file containing the issue.
	FilePath string

	// StartLine is the 1-based line number where the issue starts.
	StartLine int

	// StartColumn is the 1-based column number where the issue starts.
	StartColumn int

	// EndLine is the 1-based line number where the issue ends.
	EndLine int

	// EndColumn is the 1-based column number where the issue ends.
	EndColumn int

	// Suggestion is an optional human-readable fix suggestion.
	Suggestion string

	// FixEdits contains the text edits to fix this issue (may be empty).
	FixEdits []fix.TextEdit
}

// HasFix returns true if this diagnostic has associated fix edits.
func (d *Diagnostic) HasFix() bool {
	return len(d.FixEdits) > 0
}

// String renders the diagnostic as "Line N: RULE - message".
func (d *Diagnostic) String() string {
	return fmt.Sprintf("Line %d: %s - %s", d.StartLine, d.RuleID, d.Message)
}

// Rule defines the interface that all rules implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "MD009").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns what the rule checks.
	Description() string

	// Kinds returns the document kinds the rule applies to.
	Kinds() []document.Kind

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// CanFix returns whether this rule proposes fix edits.
	CanFix() bool

	// Apply runs the rule and returns diagnostics. Rules never mutate the
	// document; fixes are attached as edits. An error means the rule itself
	// failed, not that a violation was found.
	Apply(ctx *RuleContext) ([]Diagnostic, error)
}

// AppliesTo reports whether rule handles documents of kind.
func AppliesTo(rule Rule, kind document.Kind) bool {
	for _, k := range rule.Kinds() {
		if k == kind {
			return true
		}
	}
	return false
}
