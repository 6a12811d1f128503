package rules

import (
	"fmt"

	"github.com/yaklabco/stylefix/pkg/fix"
	"github.com/yaklabco/stylefix/pkg/lint"
)

// LineEndingsRule normalizes CRLF and lone CR line endings to LF.
type LineEndingsRule struct {
	lint.BaseRule
}

// NewLineEndingsRule creates a new line endings rule.
func NewLineEndingsRule() *LineEndingsRule {
	return &LineEndingsRule{
		BaseRule: lint.NewBaseRule(
			"Y005",
			"new-lines",
			"Line endings should be LF",
			lint.AnyKind(),
			true,
		),
	}
}

// Apply reports one diagnostic at the first offending line carrying the
// edits for the whole file.
func (r *LineEndingsRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	content := ctx.Doc.Content
	builder := fix.NewEditBuilder()
	first := -1
	crlf, cr := 0, 0

	for i := 0; i < len(content); i++ {
		if content[i] != '\r' {
			continue
		}
		if first < 0 {
			first = i
		}
		if i+1 < len(content) && content[i+1] == '\n' {
			builder.Delete(i, i+1)
			crlf++
			continue
		}
		builder.ReplaceRange(i, i+1, "\n")
		cr++
	}

	if first < 0 {
		return nil, nil
	}

	line, _ := ctx.Doc.LineAt(first)
	return []lint.Diagnostic{
		lint.NewLineDiagnostic(r.ID(), ctx.Path(), line,
			fmt.Sprintf("Line endings should be LF (%d CRLF, %d CR)", crlf, cr)).
			WithSuggestion("Convert line endings to LF").
			WithFix(builder).
			Build(),
	}, nil
}
