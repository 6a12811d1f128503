package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/stylefix/pkg/config"
	"github.com/yaklabco/stylefix/pkg/lint"
)

// Width modes for the line-length rule.
const (
	WidthRunes   = "runes"
	WidthDisplay = "display"
)

// urlLinePattern matches lines that start with a URL scheme token.
var urlLinePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://`)

// MaxLineLengthRule flags lines longer than the configured limit.
type MaxLineLengthRule struct {
	lint.BaseRule
}

// NewMaxLineLengthRule creates a new line length rule.
func NewMaxLineLengthRule() *MaxLineLengthRule {
	return &MaxLineLengthRule{
		BaseRule: lint.NewBaseRule(
			"MD013",
			"line-length",
			"Line length should not exceed the configured maximum",
			lint.Markdown(),
			false,
		),
	}
}

// Apply checks every line outside fenced code blocks.
func (r *MaxLineLengthRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	limit := config.DefaultLineLength
	if ctx.Config != nil && ctx.Config.LineLength > 0 {
		limit = ctx.Config.LineLength
	}
	limit = ctx.OptionInt("line_length", limit)
	if limit <= 0 {
		return nil, nil
	}
	display := ctx.OptionString("width_mode", WidthRunes) == WidthDisplay

	scan := ctx.Scan()
	var diags []lint.Diagnostic

	for i := range scan.Lines {
		if err := checkCancelled(ctx); err != nil {
			return diags, err
		}

		ls := &scan.Lines[i]
		if ls.InFence || urlLinePattern.MatchString(strings.TrimLeft(ls.Text, " \t")) {
			continue
		}

		width := utf8.RuneCountInString(ls.Text)
		if display {
			width = runewidth.StringWidth(ls.Text)
		}
		if width <= limit {
			continue
		}

		diags = append(diags, lint.NewDiagnosticAt(r.ID(), ctx.Path(), ls.Num, limit+1, width,
			fmt.Sprintf("Line too long (%d > %d)", width, limit)).
			WithSuggestion(fmt.Sprintf("Wrap the line at %d characters", limit)).
			Build())
	}

	return diags, nil
}
