package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/stylefix/pkg/fix"
	"github.com/yaklabco/stylefix/pkg/langdetect"
	"github.com/yaklabco/stylefix/pkg/lint"
)

// DefaultFenceLanguage is inserted on fences that have no info string.
const DefaultFenceLanguage = "text"

// CodeBlockLanguageRule checks that fenced code blocks specify a language.
type CodeBlockLanguageRule struct {
	lint.BaseRule
}

// NewCodeBlockLanguageRule creates a new fenced code language rule.
func NewCodeBlockLanguageRule() *CodeBlockLanguageRule {
	return &CodeBlockLanguageRule{
		BaseRule: lint.NewBaseRule(
			"MD040",
			"fenced-code-language",
			"Fenced code blocks should have a language specified",
			lint.Markdown(),
			true,
		),
	}
}

// Apply flags opening fences with an empty info string.
func (r *CodeBlockLanguageRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	defaultLang := ctx.OptionString("default_language", DefaultFenceLanguage)
	detect := ctx.OptionBool("detect_language", false)
	scan := ctx.Scan()

	var diags []lint.Diagnostic

	for i := range scan.Lines {
		if err := checkCancelled(ctx); err != nil {
			return diags, err
		}

		ls := &scan.Lines[i]
		if ls.Fence != lint.FenceOpen || ls.Info != "" {
			continue
		}

		closer := closingLine(scan, ls.Num)
		msg := "Code fence without language"
		switch {
		case closer > 0:
			msg = fmt.Sprintf("Code fence without language (block ends at line %d)", closer)
		case scan.Unclosed == ls.Num:
			msg = "Code fence without language (block is never closed)"
		}

		lang := defaultLang
		if detect {
			if detected := langdetect.Detect(fenceBody(ctx, ls.Num, closer)); detected != langdetect.Fallback {
				lang = detected
			}
		}

		markerEnd := lineStart(ctx, ls.Num) + ls.Indent + ls.FenceLen
		markerCol := ls.Indent + 1
		diags = append(diags, lint.NewDiagnosticAt(r.ID(), ctx.Path(), ls.Num, markerCol, markerCol+ls.FenceLen-1, msg).
			WithSuggestion("Add a language, for example "+ls.Text[ls.Indent:ls.Indent+ls.FenceLen]+lang).
			WithFix(fix.NewEditBuilder().Insert(markerEnd, lang)).
			Build())
	}

	return diags, nil
}

// closingLine returns the line closing the fence opened at open, or 0.
func closingLine(scan *lint.ScanState, open int) int {
	for n := open + 1; n <= scan.Len(); n++ {
		if ls := scan.At(n); ls.Fence == lint.FenceClose && ls.Opener == open {
			return n
		}
	}
	return 0
}

// fenceBody returns the text between an opening fence and its closer.
// An unclosed fence runs to the end of the document.
func fenceBody(ctx *lint.RuleContext, open, closer int) []byte {
	start := lineStart(ctx, open+1)
	end := len(ctx.Doc.Content)
	if closer > 0 {
		end = lineStart(ctx, closer)
	}
	if start >= end {
		return nil
	}
	return []byte(strings.TrimSpace(string(ctx.Doc.Content[start:end])))
}

// BlanksAroundFencesRule checks that fenced code blocks are surrounded by blank lines.
type BlanksAroundFencesRule struct {
	lint.BaseRule
}

// NewBlanksAroundFencesRule creates a new blanks around fences rule.
func NewBlanksAroundFencesRule() *BlanksAroundFencesRule {
	return &BlanksAroundFencesRule{
		BaseRule: lint.NewBaseRule(
			"MD031",
			"blanks-around-fences",
			"Fenced code blocks should be surrounded by blank lines",
			lint.Markdown(),
			true,
		),
	}
}

// Apply checks the line before each opening fence and after each closing fence.
// An opener may directly follow a heading; the first and last lines of the
// document need no neighbour.
func (r *BlanksAroundFencesRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	scan := ctx.Scan()

	var diags []lint.Diagnostic

	for i := range scan.Lines {
		if err := checkCancelled(ctx); err != nil {
			return diags, err
		}

		prev, cur, next := scan.View(i + 1)

		switch cur.Fence {
		case lint.FenceOpen:
			if prev.Content() && !prev.IsHeading() {
				diags = append(diags, lint.NewLineDiagnostic(r.ID(), ctx.Path(), cur.Num,
					"Missing blank line before code fence").
					WithSuggestion("Add a blank line before the code fence").
					WithFix(blankLineBefore(ctx, cur.Num)).
					Build())
			}
		case lint.FenceClose:
			if next.Content() {
				diags = append(diags, lint.NewLineDiagnostic(r.ID(), ctx.Path(), cur.Num,
					"Missing blank line after code fence").
					WithSuggestion("Add a blank line after the code fence").
					WithFix(blankLineBefore(ctx, next.Num)).
					Build())
			}
		case lint.FenceNone:
		}
	}

	return diags, nil
}
