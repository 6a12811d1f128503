package rules

import (
	"fmt"

	"github.com/yaklabco/stylefix/pkg/fix"
	"github.com/yaklabco/stylefix/pkg/lint"
)

// checkCancelled returns an error once the rule context is cancelled.
func checkCancelled(ctx *lint.RuleContext) error {
	if ctx.Cancelled() {
		return fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
	}
	return nil
}

// lineStart returns the byte offset where 1-based line n begins.
func lineStart(ctx *lint.RuleContext, n int) int {
	line, ok := ctx.Doc.Line(n)
	if !ok {
		return len(ctx.Doc.Content)
	}
	return line.StartOffset
}

// blankLineBefore builds an edit inserting an empty line ahead of line n.
// Rules that want a blank line between n-1 and n all emit this same edit,
// so it deduplicates when several rules agree.
func blankLineBefore(ctx *lint.RuleContext, n int) *fix.EditBuilder {
	return fix.NewEditBuilder().Insert(lineStart(ctx, n), "\n")
}

// trailingWhitespace returns the length of the trailing space/tab run of s.
func trailingWhitespace(s string) int {
	n := 0
	for i := len(s) - 1; i >= 0 && (s[i] == ' ' || s[i] == '\t'); i-- {
		n++
	}
	return n
}

// onlySpaces reports whether s consists of n space characters.
func onlySpaces(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := range len(s) {
		if s[i] != ' ' {
			return false
		}
	}
	return true
}
