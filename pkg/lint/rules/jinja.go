package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/stylefix/pkg/fix"
	"github.com/yaklabco/stylefix/pkg/lint"
)

// Jinja spacing styles.
const (
	JinjaSpaced  = "spaced"
	JinjaCompact = "compact"
)

var jinjaExprPattern = regexp.MustCompile(`\{\{([^{}\n]+)\}\}`)

// JinjaSpacingRule normalizes padding inside {{ }} expressions.
type JinjaSpacingRule struct {
	lint.BaseRule
}

// NewJinjaSpacingRule creates a new Jinja spacing rule.
func NewJinjaSpacingRule() *JinjaSpacingRule {
	return &JinjaSpacingRule{
		BaseRule: lint.NewBaseRule(
			"Y003",
			"jinja-spacing",
			"Jinja expressions should use consistent brace padding",
			lint.Templated(),
			true,
		),
	}
}

// Apply scans the whole content for single-line expressions.
func (r *JinjaSpacingRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	style := ctx.OptionString("style", JinjaSpaced)
	if style != JinjaCompact {
		style = JinjaSpaced
	}

	content := string(ctx.Doc.Content)
	var diags []lint.Diagnostic

	for _, loc := range jinjaExprPattern.FindAllStringSubmatchIndex(content, -1) {
		if err := checkCancelled(ctx); err != nil {
			return diags, err
		}

		expr := content[loc[0]:loc[1]]
		want, ok := normalizeJinja(content[loc[2]:loc[3]], style)
		if !ok || want == expr {
			continue
		}

		line, col := ctx.Doc.LineAt(loc[0])
		diags = append(diags, lint.NewDiagnosticAt(r.ID(), ctx.Path(), line, col, col+len(expr)-1,
			fmt.Sprintf("Jinja spacing: %s should be %s", expr, want)).
			WithSuggestion("Use " + want).
			WithFix(fix.NewEditBuilder().ReplaceRange(loc[0], loc[1], want)).
			Build())
	}

	return diags, nil
}

// normalizeJinja rebuilds an expression from its inner text, keeping
// whitespace-control markers. It returns false for empty expressions.
func normalizeJinja(inner, style string) (string, bool) {
	var lead, trail string
	if strings.HasPrefix(inner, "-") || strings.HasPrefix(inner, "+") {
		lead, inner = inner[:1], inner[1:]
	}
	if strings.HasSuffix(inner, "-") || strings.HasSuffix(inner, "+") {
		inner, trail = inner[:len(inner)-1], inner[len(inner)-1:]
	}

	body := strings.TrimSpace(inner)
	if body == "" {
		return "", false
	}

	if style == JinjaCompact {
		return "{{" + lead + body + trail + "}}", true
	}
	return "{{" + lead + " " + body + " " + trail + "}}", true
}
