package fix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/stylefix/pkg/fix"
)

func TestValidateEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		edits   []fix.TextEdit
		wantErr string
	}{
		{name: "empty edits"},
		{
			name:  "valid edits",
			edits: []fix.TextEdit{{StartOffset: 0, EndOffset: 5}, {StartOffset: 5, EndOffset: 10}},
		},
		{
			name:    "negative start",
			edits:   []fix.TextEdit{{StartOffset: -1, EndOffset: 5}},
			wantErr: "start offset is negative",
		},
		{
			name:    "end before start",
			edits:   []fix.TextEdit{{StartOffset: 5, EndOffset: 3}},
			wantErr: "end offset is before start offset",
		},
		{
			name:    "end past content",
			edits:   []fix.TextEdit{{StartOffset: 5, EndOffset: 15}},
			wantErr: "exceeds content length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fix.ValidateEdits(tt.edits, 10)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}

			var verr *fix.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Error(), tt.wantErr)
		})
	}
}

func TestPrepare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		edits        []fix.TextEdit
		wantAccepted []fix.TextEdit
		wantSkipped  []fix.TextEdit
	}{
		{
			name: "sorted by offset",
			edits: []fix.TextEdit{
				{StartOffset: 6, EndOffset: 7, NewText: "b"},
				{StartOffset: 1, EndOffset: 2, NewText: "a"},
			},
			wantAccepted: []fix.TextEdit{
				{StartOffset: 1, EndOffset: 2, NewText: "a"},
				{StartOffset: 6, EndOffset: 7, NewText: "b"},
			},
		},
		{
			name: "identical edits collapse",
			edits: []fix.TextEdit{
				{StartOffset: 4, EndOffset: 4, NewText: "\n"},
				{StartOffset: 4, EndOffset: 4, NewText: "\n"},
			},
			wantAccepted: []fix.TextEdit{{StartOffset: 4, EndOffset: 4, NewText: "\n"}},
		},
		{
			name: "overlapping deletions merge",
			edits: []fix.TextEdit{
				{StartOffset: 2, EndOffset: 5},
				{StartOffset: 4, EndOffset: 8},
			},
			wantAccepted: []fix.TextEdit{{StartOffset: 2, EndOffset: 8}},
		},
		{
			name: "conflicting replacement skipped",
			edits: []fix.TextEdit{
				{StartOffset: 2, EndOffset: 6, NewText: "x"},
				{StartOffset: 4, EndOffset: 8, NewText: "y"},
			},
			wantAccepted: []fix.TextEdit{{StartOffset: 2, EndOffset: 6, NewText: "x"}},
			wantSkipped:  []fix.TextEdit{{StartOffset: 4, EndOffset: 8, NewText: "y"}},
		},
		{
			name: "different inserts at one offset keep the first",
			edits: []fix.TextEdit{
				{StartOffset: 3, EndOffset: 3, NewText: "b"},
				{StartOffset: 3, EndOffset: 3, NewText: "a"},
			},
			wantAccepted: []fix.TextEdit{{StartOffset: 3, EndOffset: 3, NewText: "a"}},
			wantSkipped:  []fix.TextEdit{{StartOffset: 3, EndOffset: 3, NewText: "b"}},
		},
		{
			name: "insert before replacement at same offset",
			edits: []fix.TextEdit{
				{StartOffset: 3, EndOffset: 5, NewText: ""},
				{StartOffset: 3, EndOffset: 3, NewText: "\n"},
			},
			wantAccepted: []fix.TextEdit{
				{StartOffset: 3, EndOffset: 3, NewText: "\n"},
				{StartOffset: 3, EndOffset: 5, NewText: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			accepted, skipped, err := fix.Prepare(tt.edits, 10)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAccepted, accepted)
			assert.Equal(t, tt.wantSkipped, skipped)
		})
	}
}

func TestPrepareInvalid(t *testing.T) {
	t.Parallel()

	_, _, err := fix.Prepare([]fix.TextEdit{{StartOffset: 0, EndOffset: 20}}, 10)
	require.Error(t, err)
}
