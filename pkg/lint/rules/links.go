package rules

import (
	"regexp"
	"strings"

	"github.com/yaklabco/stylefix/pkg/fix"
	"github.com/yaklabco/stylefix/pkg/lint"
)

var bareURLPattern = regexp.MustCompile(`https?://[^\s<>` + "`" + `\]]+`)

// urlWrappers are characters that mark a URL as already embedded in
// a construct when they immediately precede it.
const urlWrappers = "<([`\"'="

// urlTrailingPunct is stripped from the end of a matched URL.
const urlTrailingPunct = ".,;:!?'\""

// NoBareURLsRule flags URLs that are not wrapped in angle brackets or a link.
type NoBareURLsRule struct {
	lint.BaseRule
}

// NewNoBareURLsRule creates a new bare URL rule.
func NewNoBareURLsRule() *NoBareURLsRule {
	return &NoBareURLsRule{
		BaseRule: lint.NewBaseRule(
			"MD034",
			"no-bare-urls",
			"Bare URL used",
			lint.Markdown(),
			true,
		),
	}
}

// Apply reports bare URLs outside fences. Lines that contain link syntax or
// are list items are reported without a fix so existing links are never
// rewritten.
func (r *NoBareURLsRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	scan := ctx.Scan()
	var diags []lint.Diagnostic

	for i := range scan.Lines {
		if err := checkCancelled(ctx); err != nil {
			return diags, err
		}

		ls := &scan.Lines[i]
		if ls.InFence {
			continue
		}

		fixable := !ls.ListItem && !strings.Contains(ls.Text, "](")
		base := lineStart(ctx, ls.Num)

		for _, loc := range bareURLs(ls.Text) {
			url := ls.Text[loc[0]:loc[1]]
			b := lint.NewDiagnosticAt(r.ID(), ctx.Path(), ls.Num, loc[0]+1, loc[1], "Bare URL: "+url).
				WithSuggestion("Wrap the URL in angle brackets: <" + url + ">")
			if fixable {
				b.WithFix(fix.NewEditBuilder().
					Insert(base+loc[0], "<").
					Insert(base+loc[1], ">"))
			}
			diags = append(diags, b.Build())
		}
	}

	return diags, nil
}

// bareURLs returns the byte ranges of unwrapped URLs in text.
func bareURLs(text string) [][2]int {
	var out [][2]int
	for _, loc := range bareURLPattern.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		if start > 0 && strings.IndexByte(urlWrappers, text[start-1]) >= 0 {
			continue
		}
		if insideCodeSpan(text, start) {
			continue
		}
		end = trimURL(text[start:end]) + start
		out = append(out, [2]int{start, end})
	}
	return out
}

// trimURL returns the length of url without trailing sentence punctuation.
// A closing parenthesis is kept only when the URL contains an opening one.
func trimURL(url string) int {
	n := len(url)
	for n > 0 {
		c := url[n-1]
		switch {
		case strings.IndexByte(urlTrailingPunct, c) >= 0:
		case c == ')' && strings.Count(url[:n], "(") < strings.Count(url[:n], ")"):
		default:
			return n
		}
		n--
	}
	return n
}

// insideCodeSpan reports whether an odd number of backticks precede pos.
func insideCodeSpan(text string, pos int) bool {
	return strings.Count(text[:pos], "`")%2 == 1
}
