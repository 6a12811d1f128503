package rules

import "github.com/yaklabco/stylefix/pkg/lint"

// BlanksAroundListsRule checks that lists are surrounded by blank lines.
type BlanksAroundListsRule struct {
	lint.BaseRule
}

// NewBlanksAroundListsRule creates a new blanks around lists rule.
func NewBlanksAroundListsRule() *BlanksAroundListsRule {
	return &BlanksAroundListsRule{
		BaseRule: lint.NewBaseRule(
			"MD032",
			"blanks-around-lists",
			"Lists should be surrounded by blank lines",
			lint.Markdown(),
			true,
		),
	}
}

// listBlock is a run of list lines, 1-based and inclusive.
type listBlock struct {
	first, last int
}

// Apply checks the line before and after each list block.
func (r *BlanksAroundListsRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	scan := ctx.Scan()

	var diags []lint.Diagnostic

	for _, block := range listBlocks(scan) {
		if err := checkCancelled(ctx); err != nil {
			return diags, err
		}

		if prev := scan.At(block.first - 1); prev.Content() {
			diags = append(diags, lint.NewLineDiagnostic(r.ID(), ctx.Path(), block.first,
				"Missing blank line before list").
				WithSuggestion("Add a blank line before the list").
				WithFix(blankLineBefore(ctx, block.first)).
				Build())
		}

		if next := scan.At(block.last + 1); next.Content() {
			diags = append(diags, lint.NewLineDiagnostic(r.ID(), ctx.Path(), block.last,
				"Missing blank line after list").
				WithSuggestion("Add a blank line after the list").
				WithFix(blankLineBefore(ctx, next.Num)).
				Build())
		}
	}

	return diags, nil
}

// listBlocks groups contiguous list lines. A block starts at a list item and
// extends over further items, indented continuation lines, and fenced blocks
// opened with indentation inside the list. A blank line, a heading, or any
// unindented non-item line ends it.
func listBlocks(scan *lint.ScanState) []listBlock {
	var blocks []listBlock

	n := 1
	for n <= scan.Len() {
		if !scan.At(n).ListItem {
			n++
			continue
		}

		block := listBlock{first: n, last: n}
		nested := false
		for m := n + 1; m <= scan.Len(); m++ {
			next := scan.At(m)
			if !nested && !continuesList(next) {
				break
			}
			switch {
			case nested && next.Fence == lint.FenceClose:
				nested = false
			case !nested && next.Fence == lint.FenceOpen:
				nested = true
			}
			block.last = m
		}

		blocks = append(blocks, block)
		n = block.last + 1
	}

	return blocks
}

func continuesList(ls *lint.LineState) bool {
	switch {
	case ls.ListItem:
		return true
	case ls.Fence == lint.FenceOpen:
		return ls.Indent > 0
	default:
		return !ls.Blank && !ls.InFence && !ls.Heading && ls.Indent > 0
	}
}
