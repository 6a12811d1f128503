package analysis

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/stylefix/pkg/config"
)

func TestTotals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		totals     Totals
		wantIssues bool
		wantErrors bool
	}{
		{name: "clean run", totals: Totals{Files: 3}},
		{name: "warnings only", totals: Totals{Issues: 2, Warnings: 2}, wantIssues: true},
		{name: "errors", totals: Totals{Issues: 4, Errors: 1, Warnings: 3}, wantIssues: true, wantErrors: true},
		{name: "file errors are not issues", totals: Totals{Files: 1, FilesErrored: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantIssues, tt.totals.HasIssues())
			assert.Equal(t, tt.wantErrors, tt.totals.HasErrors())
		})
	}
}

func TestReportJSONShape(t *testing.T) {
	t.Parallel()

	report := Report{
		RunID:     "6f1c9a52-0000-4000-8000-000000000000",
		Version:   "1",
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Mode:      string(config.ModeFix),
		Files: []FileEntry{
			{Path: "roles/web/tasks/main.yml", Kind: "yaml", Status: "fixed", Fixed: true, BackupPath: "roles/web/tasks/main.yml.bak"},
			{Path: "README.md", Kind: "markdown", Issues: 1, Status: "issues found"},
		},
		Totals: Totals{Files: 2, FilesWithIssues: 1, FilesFixed: 1, Issues: 1, Warnings: 1},
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, report.RunID, decoded["runId"])
	assert.Equal(t, "fix", decoded["mode"])
	assert.NotContains(t, decoded, "diagnostics", "empty views are omitted")
	assert.NotContains(t, decoded, "byRule")

	summary, ok := decoded["summary"].(map[string]any)
	require.True(t, ok, "totals are published as summary")
	assert.InDelta(t, 2, summary["filesChecked"], 0)
	assert.InDelta(t, 1, summary["filesFixed"], 0)

	files, ok := decoded["files"].([]any)
	require.True(t, ok)
	require.Len(t, files, 2)

	fixed := files[0].(map[string]any)
	assert.Equal(t, "roles/web/tasks/main.yml.bak", fixed["backupPath"])
	assert.Equal(t, true, fixed["fixed"])

	pending := files[1].(map[string]any)
	assert.NotContains(t, pending, "fixed")
	assert.NotContains(t, pending, "backupPath")
	assert.NotContains(t, pending, "error")
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()

	assert.True(t, opts.IncludeDiagnostics)
	assert.True(t, opts.IncludeFiles)
	assert.True(t, opts.IncludeByFile)
	assert.True(t, opts.IncludeByRule)
	assert.Equal(t, SortByCount, opts.SortBy)
	assert.True(t, opts.SortDesc)
	assert.Equal(t, config.ModeCheck, opts.Mode)
	assert.Empty(t, opts.WorkingDir)
}

func TestSortField_IsValid(t *testing.T) {
	t.Parallel()

	for _, field := range []SortField{SortByCount, SortByAlpha, SortBySeverity} {
		assert.True(t, field.IsValid(), field)
	}
	assert.False(t, SortField("issues").IsValid())
	assert.False(t, SortField("").IsValid())
}
