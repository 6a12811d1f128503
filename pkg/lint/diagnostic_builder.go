package lint

import (
	"github.com/yaklabco/stylefix/pkg/config"
	"github.com/yaklabco/stylefix/pkg/fix"
)

// DiagnosticBuilder helps construct Diagnostic values.
type DiagnosticBuilder struct {
	diag Diagnostic
}

// NewDiagnosticAt starts building a diagnostic spanning columns
// [startCol, endCol] of a single line.
func NewDiagnosticAt(ruleID, filePath string, line, startCol, endCol int, message string) *DiagnosticBuilder {
	if startCol < 1 {
		startCol = 1
	}
	if endCol < startCol {
		endCol = startCol
	}
	return &DiagnosticBuilder{
		diag: Diagnostic{
			RuleID:      ruleID,
			Message:     message,
			FilePath:    filePath,
			StartLine:   line,
			StartColumn: startCol,
			EndLine:     line,
			EndColumn:   endCol,
		},
	}
}

// NewLineDiagnostic starts building a diagnostic covering a whole line.
func NewLineDiagnostic(ruleID, filePath string, line int, message string) *DiagnosticBuilder {
	return NewDiagnosticAt(ruleID, filePath, line, 1, 1, message)
}

// WithName sets the rule name.
func (b *DiagnosticBuilder) WithName(name string) *DiagnosticBuilder {
	b.diag.RuleName = name
	return b
}

// WithSeverity sets the severity.
func (b *DiagnosticBuilder) WithSeverity(s config.Severity) *DiagnosticBuilder {
	b.diag.Severity = s
	return b
}

// WithSuggestion sets a human-readable fix suggestion.
func (b *DiagnosticBuilder) WithSuggestion(s string) *DiagnosticBuilder {
	b.diag.Suggestion = s
	return b
}

// WithFix adds fix edits from an EditBuilder.
func (b *DiagnosticBuilder) WithFix(builder *fix.EditBuilder) *DiagnosticBuilder {
	if builder != nil {
		b.diag.FixEdits = append(b.diag.FixEdits, builder.Edits...)
	}
	return b
}

// WithEdit adds a single fix edit.
func (b *DiagnosticBuilder) WithEdit(edit fix.TextEdit) *DiagnosticBuilder {
	b.diag.FixEdits = append(b.diag.FixEdits, edit)
	return b
}

// Build returns the constructed Diagnostic.
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.diag
}
