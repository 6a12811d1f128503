package rules

import "github.com/yaklabco/stylefix/pkg/lint"

// HeadingBlankLinesRule checks that headings are surrounded by blank lines.
type HeadingBlankLinesRule struct {
	lint.BaseRule
}

// NewHeadingBlankLinesRule creates a new blanks around headings rule.
func NewHeadingBlankLinesRule() *HeadingBlankLinesRule {
	return &HeadingBlankLinesRule{
		BaseRule: lint.NewBaseRule(
			"MD022",
			"blanks-around-headings",
			"Headings should be surrounded by blank lines",
			lint.Markdown(),
			true,
		),
	}
}

// Apply checks the neighbours of every heading line. Adjacent headings do
// not need a blank line between them.
func (r *HeadingBlankLinesRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	scan := ctx.Scan()

	var diags []lint.Diagnostic

	for i := range scan.Lines {
		if err := checkCancelled(ctx); err != nil {
			return diags, err
		}

		prev, cur, next := scan.View(i + 1)
		if !cur.Heading {
			continue
		}

		if prev.Content() && !prev.IsHeading() {
			diags = append(diags, lint.NewLineDiagnostic(r.ID(), ctx.Path(), cur.Num,
				"Missing blank line before heading").
				WithSuggestion("Add a blank line before the heading").
				WithFix(blankLineBefore(ctx, cur.Num)).
				Build())
		}

		if next.Content() && !next.IsHeading() {
			diags = append(diags, lint.NewLineDiagnostic(r.ID(), ctx.Path(), cur.Num,
				"Missing blank line after heading").
				WithSuggestion("Add a blank line after the heading").
				WithFix(blankLineBefore(ctx, next.Num)).
				Build())
		}
	}

	return diags, nil
}
