package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/stylefix/pkg/document"
	"github.com/yaklabco/stylefix/pkg/lint"
)

func scanOf(content string) *lint.ScanState {
	return lint.Scan(document.New("test.md", document.KindMarkdown, []byte(content)))
}

func TestScanFences(t *testing.T) {
	t.Parallel()

	state := scanOf("intro\n```go\nfmt.Println()\n# not a heading\n```\nafter\n")
	require.Equal(t, 6, state.Len())

	open := state.At(2)
	assert.Equal(t, lint.FenceOpen, open.Fence)
	assert.Equal(t, "go", open.Info)
	assert.Equal(t, byte('`'), open.FenceChar)
	assert.Equal(t, 3, open.FenceLen)

	body := state.At(4)
	assert.True(t, body.InFence)
	assert.False(t, body.Heading, "headings inside fences are not headings")

	closing := state.At(5)
	assert.Equal(t, lint.FenceClose, closing.Fence)
	assert.Equal(t, 2, closing.Opener)

	assert.False(t, state.At(6).InFence)
	assert.Zero(t, state.Unclosed)
}

func TestScanFenceVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		wantRoles []lint.FenceRole
		unclosed  int
	}{
		{
			name:      "tilde fence",
			content:   "~~~\nx\n~~~\n",
			wantRoles: []lint.FenceRole{lint.FenceOpen, lint.FenceNone, lint.FenceClose},
		},
		{
			name:      "shorter run does not close",
			content:   "````\n```\n````\n",
			wantRoles: []lint.FenceRole{lint.FenceOpen, lint.FenceNone, lint.FenceClose},
		},
		{
			name:      "other char does not close",
			content:   "```\n~~~\n```\n",
			wantRoles: []lint.FenceRole{lint.FenceOpen, lint.FenceNone, lint.FenceClose},
		},
		{
			name:      "closer with info is content",
			content:   "```\n```text\n```\n",
			wantRoles: []lint.FenceRole{lint.FenceOpen, lint.FenceNone, lint.FenceClose},
		},
		{
			name:      "inline backticks are not a fence",
			content:   "``` a ` b\ntext\n",
			wantRoles: []lint.FenceRole{lint.FenceNone, lint.FenceNone},
		},
		{
			name:      "indented fence",
			content:   "  ```yaml\n  a: 1\n  ```\n",
			wantRoles: []lint.FenceRole{lint.FenceOpen, lint.FenceNone, lint.FenceClose},
		},
		{
			name:      "unclosed",
			content:   "text\n```\ncode\n",
			wantRoles: []lint.FenceRole{lint.FenceNone, lint.FenceOpen, lint.FenceNone},
			unclosed:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			state := scanOf(tt.content)
			require.Equal(t, len(tt.wantRoles), state.Len())
			for i, want := range tt.wantRoles {
				assert.Equal(t, want, state.At(i+1).Fence, "line %d", i+1)
			}
			assert.Equal(t, tt.unclosed, state.Unclosed)
		})
	}
}

func TestScanHeadingsAndLists(t *testing.T) {
	t.Parallel()

	state := scanOf("# Title\n#hashtag\n- item\n  * nested\n1. one\n2) two\n-not a list\n**bold**\n   \n")

	assert.True(t, state.At(1).Heading)
	assert.False(t, state.At(2).Heading)
	assert.True(t, state.At(3).ListItem)
	assert.True(t, state.At(4).ListItem)
	assert.Equal(t, 2, state.At(4).Indent)
	assert.True(t, state.At(5).ListItem)
	assert.True(t, state.At(6).ListItem)
	assert.False(t, state.At(7).ListItem)
	assert.False(t, state.At(8).ListItem)
	assert.True(t, state.At(9).Blank)
}

func TestScanView(t *testing.T) {
	t.Parallel()

	state := scanOf("a\nb\n")

	prev, cur, next := state.View(1)
	assert.Nil(t, prev)
	assert.Equal(t, "a", cur.Text)
	assert.Equal(t, "b", next.Text)

	prev, cur, next = state.View(2)
	assert.Equal(t, "a", prev.Text)
	assert.Equal(t, "b", cur.Text)
	assert.Nil(t, next)

	assert.False(t, next.Content())
	assert.False(t, next.IsHeading())
}

func TestScanEmpty(t *testing.T) {
	t.Parallel()

	assert.Zero(t, scanOf("").Len())
	assert.Zero(t, lint.Scan(nil).Len())
}
