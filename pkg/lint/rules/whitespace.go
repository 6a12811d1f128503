package rules

import (
	"fmt"

	"github.com/yaklabco/stylefix/pkg/document"
	"github.com/yaklabco/stylefix/pkg/fix"
	"github.com/yaklabco/stylefix/pkg/lint"
)

// DefaultBreakSpaces is the trailing space count that marks a hard line break.
const DefaultBreakSpaces = 2

// TrailingWhitespaceRule checks for trailing whitespace on lines.
// In Markdown an exact run of br_spaces spaces is a hard break and is kept.
type TrailingWhitespaceRule struct {
	lint.BaseRule

	hardBreaks bool
}

// NewTrailingWhitespaceRule creates the Markdown trailing whitespace rule.
func NewTrailingWhitespaceRule() *TrailingWhitespaceRule {
	return &TrailingWhitespaceRule{
		BaseRule: lint.NewBaseRule(
			"MD009",
			"no-trailing-spaces",
			"Lines should not have trailing spaces",
			lint.Markdown(),
			true,
		),
		hardBreaks: true,
	}
}

// NewYAMLTrailingWhitespaceRule creates the trailing whitespace rule for
// YAML and Jinja files, where no hard-break exception applies.
func NewYAMLTrailingWhitespaceRule() *TrailingWhitespaceRule {
	return &TrailingWhitespaceRule{
		BaseRule: lint.NewBaseRule(
			"Y004",
			"trailing-spaces",
			"Lines should not have trailing spaces",
			lint.Templated(),
			true,
		),
	}
}

// Apply checks for trailing whitespace on each line.
func (r *TrailingWhitespaceRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	brSpaces := 0
	if r.hardBreaks {
		brSpaces = ctx.OptionInt("br_spaces", DefaultBreakSpaces)
	}

	var diags []lint.Diagnostic

	for lineNum := 1; lineNum <= ctx.Doc.LineCount(); lineNum++ {
		if err := checkCancelled(ctx); err != nil {
			return diags, err
		}

		text := ctx.Doc.LineText(lineNum)
		n := trailingWhitespace(text)
		if n == 0 {
			continue
		}
		if brSpaces >= DefaultBreakSpaces && onlySpaces(text[len(text)-n:], brSpaces) {
			continue
		}

		line := ctx.Doc.Lines[lineNum-1]
		start := line.NewlineStart - n

		diags = append(diags, lint.NewDiagnosticAt(r.ID(), ctx.Path(), lineNum, len(text)-n+1, len(text),
			fmt.Sprintf("Trailing spaces (%d)", n)).
			WithSuggestion("Remove trailing whitespace").
			WithFix(fix.NewEditBuilder().Delete(start, line.NewlineStart)).
			Build())
	}

	return diags, nil
}

// FinalNewlineRule ensures files end with a single newline.
type FinalNewlineRule struct {
	lint.BaseRule
}

// NewFinalNewlineRule creates a new final newline rule.
func NewFinalNewlineRule() *FinalNewlineRule {
	return &FinalNewlineRule{
		BaseRule: lint.NewBaseRule(
			"MD047",
			"single-trailing-newline",
			"Files should end with a single newline character",
			lint.Markdown(),
			true,
		),
	}
}

// Apply checks that the file ends with exactly one newline. Empty documents
// are left alone; a document of blank lines collapses to its first line.
func (r *FinalNewlineRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	doc := ctx.Doc
	if doc.LineCount() == 0 {
		return nil, nil
	}

	last := lastContentLine(doc)
	if last == 0 {
		last = 1
	}

	info := doc.Lines[last-1]

	if last == doc.LineCount() && !doc.EndsWithNewline() {
		col := info.NewlineStart - info.StartOffset + 1
		return []lint.Diagnostic{
			lint.NewDiagnosticAt(r.ID(), ctx.Path(), last, col, col, "Missing trailing newline").
				WithSuggestion("Add a newline at end of file").
				WithFix(fix.NewEditBuilder().Insert(len(doc.Content), "\n")).
				Build(),
		}, nil
	}

	if last < doc.LineCount() {
		return []lint.Diagnostic{
			lint.NewLineDiagnostic(r.ID(), ctx.Path(), last+1, "Multiple trailing newlines").
				WithSuggestion("Remove blank lines at end of file").
				WithFix(fix.NewEditBuilder().Delete(info.EndOffset, len(doc.Content))).
				Build(),
		}, nil
	}

	return nil, nil
}

// lastContentLine returns the last non-blank line, or 0 if there is none.
func lastContentLine(doc *document.Document) int {
	for n := doc.LineCount(); n >= 1; n-- {
		if !doc.Lines[n-1].IsBlank(doc.Content) {
			return n
		}
	}
	return 0
}
