package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrailingWhitespaceRule(t *testing.T) {
	t.Parallel()

	runRuleCases(t, NewTrailingWhitespaceRule(), "test.md", []ruleCase{
		{
			name:      "single trailing space",
			input:     "one \n",
			wantDiags: 1,
			wantFix:   "one\n",
		},
		{
			name:  "two spaces are a hard break",
			input: "two  \nnext\n",
		},
		{
			name:      "three spaces",
			input:     "three   \n",
			wantDiags: 1,
			wantFix:   "three\n",
		},
		{
			name:      "trailing tab",
			input:     "tab\t\n",
			wantDiags: 1,
			wantFix:   "tab\n",
		},
		{
			name:      "space then tab",
			input:     "mixed \t\n",
			wantDiags: 1,
			wantFix:   "mixed\n",
		},
		{
			name:      "hard break disabled",
			input:     "two  \n",
			options:   map[string]any{"br_spaces": 0},
			wantDiags: 1,
			wantFix:   "two\n",
		},
		{
			name:      "crlf line",
			input:     "a \r\nb\r\n",
			wantDiags: 1,
			wantFix:   "a\r\nb\r\n",
		},
		{
			name:      "last line without newline",
			input:     "a\nb ",
			wantDiags: 1,
			wantLines: []int{2},
			wantFix:   "a\nb",
		},
	})
}

func TestTrailingWhitespaceCounts(t *testing.T) {
	t.Parallel()

	rule := NewTrailingWhitespaceRule()
	for spaces := 1; spaces <= 6; spaces++ {
		input := "x" + strings.Repeat(" ", spaces) + "\n"
		diags := applyRule(t, rule, "a.md", input, nil)
		if spaces == DefaultBreakSpaces {
			assert.Empty(t, diags, "exactly %d spaces", spaces)
			continue
		}
		assert.Len(t, diags, 1, "%d spaces", spaces)
	}
}

func TestYAMLTrailingWhitespaceRule(t *testing.T) {
	t.Parallel()

	runRuleCases(t, NewYAMLTrailingWhitespaceRule(), tasksPath, []ruleCase{
		{
			name:      "two spaces flagged",
			input:     "a: 1  \n",
			wantDiags: 1,
			wantFix:   "a: 1\n",
		},
		{
			name:  "clean",
			input: "a: 1\n",
		},
		{
			name:      "template",
			path:      "templates/x.j2",
			input:     "x \t\n",
			wantDiags: 1,
			wantFix:   "x\n",
		},
	})
}

func TestFinalNewlineRule(t *testing.T) {
	t.Parallel()

	runRuleCases(t, NewFinalNewlineRule(), "test.md", []ruleCase{
		{
			name:  "single newline",
			input: "Hello\n",
		},
		{
			name:      "missing newline",
			input:     "Hello",
			wantDiags: 1,
			wantFix:   "Hello\n",
		},
		{
			name:      "two newlines",
			input:     "Hello\n\n",
			wantDiags: 1,
			wantLines: []int{2},
			wantFix:   "Hello\n",
		},
		{
			name:      "many blank lines",
			input:     "Hello\n\n  \n\n",
			wantDiags: 1,
			wantFix:   "Hello\n",
		},
		{
			name:  "empty",
			input: "",
		},
		{
			name:  "single blank line",
			input: "\n",
		},
		{
			name:      "only newlines",
			input:     "\n\n\n",
			wantDiags: 1,
			wantLines: []int{2},
			wantFix:   "\n",
		},
		{
			name:      "whitespace then newlines",
			input:     "   \n\n",
			wantDiags: 1,
			wantFix:   "   \n",
		},
		{
			name:      "whitespace without newline",
			input:     "   ",
			wantDiags: 1,
			wantFix:   "   \n",
		},
	})
}

func TestFinalNewlineMessages(t *testing.T) {
	t.Parallel()

	rule := NewFinalNewlineRule()

	diags := applyRule(t, rule, "a.md", "x", nil)
	if assert.Len(t, diags, 1) {
		assert.Equal(t, "Missing trailing newline", diags[0].Message)
	}

	diags = applyRule(t, rule, "a.md", "x\n\n", nil)
	if assert.Len(t, diags, 1) {
		assert.Equal(t, "Multiple trailing newlines", diags[0].Message)
	}
}
