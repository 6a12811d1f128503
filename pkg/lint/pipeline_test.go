package lint_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/stylefix/pkg/config"
	"github.com/yaklabco/stylefix/pkg/document"
	"github.com/yaklabco/stylefix/pkg/fix"
	"github.com/yaklabco/stylefix/pkg/fsutil"
	"github.com/yaklabco/stylefix/pkg/lint"
)

// stripRule removes trailing spaces from every line.
type stripRule struct {
	lint.BaseRule
}

func (r *stripRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic
	for i, ls := range ctx.Scan().Lines {
		trimmed := strings.TrimRight(ls.Text, " ")
		if trimmed == ls.Text {
			continue
		}
		line := ctx.Doc.Lines[i]
		start := line.StartOffset + len(trimmed)
		diags = append(diags, lint.NewDiagnosticAt(r.ID(), ctx.Path(), ls.Num, len(trimmed)+1, len(ls.Text), "trailing").
			WithFix(fix.NewEditBuilder().Delete(start, line.NewlineStart)).
			Build())
	}
	return diags, nil
}

// breakRule appends an unbalanced bracket to YAML content.
type breakRule struct {
	lint.BaseRule
}

func (r *breakRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if strings.Contains(string(ctx.Doc.Content), "[") {
		return nil, nil
	}
	end := len(ctx.Doc.Content)
	return []lint.Diagnostic{
		lint.NewLineDiagnostic(r.ID(), ctx.Path(), 1, "break").
			WithEdit(fix.TextEdit{StartOffset: end, EndOffset: end, NewText: "bad: [\n"}).
			Build(),
	}, nil
}

func newStripPipeline() *lint.Pipeline {
	reg := lint.NewRegistry()
	reg.Register(&stripRule{BaseRule: lint.NewBaseRule("T001", "strip", "strip", lint.AnyKind(), true)})
	return lint.NewPipeline(lint.NewEngine(reg))
}

func fixConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Mode = config.ModeFix
	return cfg
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestPipelineCheckModeDoesNotWrite(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "a.md", "one  \ntwo   \n")
	cfg := config.NewConfig()

	result, err := newStripPipeline().ProcessFile(context.Background(), path, cfg, lint.PipelineOptionsFromConfig(cfg))
	require.NoError(t, err)

	assert.Equal(t, 2, result.IssueCount())
	assert.False(t, result.Modified)
	assert.False(t, result.Written)
	assert.Equal(t, "issues found", result.Summary())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one  \ntwo   \n", string(got))
}

func TestPipelineFixWritesFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "a.md", "one  \ntwo   \n")
	cfg := fixConfig()

	result, err := newStripPipeline().ProcessFile(context.Background(), path, cfg, lint.PipelineOptionsFromConfig(cfg))
	require.NoError(t, err)

	assert.True(t, result.Written)
	assert.Equal(t, 2, result.InitialIssues)
	assert.Zero(t, result.IssueCount())
	assert.Equal(t, 1, result.FixPasses)
	assert.Equal(t, "fixed", result.Summary())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestPipelineFixIsIdempotent(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "a.md", "x \n")
	cfg := fixConfig()
	pipeline := newStripPipeline()
	opts := lint.PipelineOptionsFromConfig(cfg)

	_, err := pipeline.ProcessFile(context.Background(), path, cfg, opts)
	require.NoError(t, err)

	second, err := pipeline.ProcessFile(context.Background(), path, cfg, opts)
	require.NoError(t, err)
	assert.False(t, second.Modified)
	assert.False(t, second.Written)
	assert.Equal(t, "ok", second.Summary())
}

func TestPipelineDryRun(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "a.md", "x \n")
	cfg := fixConfig()
	cfg.DryRun = true

	result, err := newStripPipeline().ProcessFile(context.Background(), path, cfg, lint.PipelineOptionsFromConfig(cfg))
	require.NoError(t, err)

	assert.True(t, result.Modified)
	assert.False(t, result.Written)
	require.NotNil(t, result.Diff)
	assert.Contains(t, result.Diff.Unified, "-x \n")
	assert.Contains(t, result.Diff.Unified, "+x\n")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x \n", string(got))
}

func TestPipelineBackup(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "a.md", "x \n")
	cfg := fixConfig()
	cfg.Backups.Enabled = config.BoolPtr(true)

	result, err := newStripPipeline().ProcessFile(context.Background(), path, cfg, lint.PipelineOptionsFromConfig(cfg))
	require.NoError(t, err)

	assert.Equal(t, path+".bak", result.BackupPath)
	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "x \n", string(backup))
}

func TestPipelinePreservesEncoding(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "a.md", "\xEF\xBB\xBFx \n")
	cfg := fixConfig()

	_, err := newStripPipeline().ProcessFile(context.Background(), path, cfg, lint.PipelineOptionsFromConfig(cfg))
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\xEF\xBB\xBFx\n", string(got))
}

func TestPipelineRefusesBrokenYAML(t *testing.T) {
	t.Parallel()

	reg := lint.NewRegistry()
	reg.Register(&breakRule{BaseRule: lint.NewBaseRule("T002", "break", "break", lint.YAML(), true)})
	pipeline := lint.NewPipeline(lint.NewEngine(reg))

	path := writeFile(t, "a.yml", "a: 1\n")
	cfg := fixConfig()

	result, err := pipeline.ProcessFile(context.Background(), path, cfg, lint.PipelineOptionsFromConfig(cfg))
	require.NoError(t, err)

	assert.True(t, result.Skipped)
	assert.Contains(t, result.SkipReason, lint.ErrFixBrokeDocument.Error())
	assert.False(t, result.Written)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(got))
}

func TestPipelineErrors(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	pipeline := newStripPipeline()
	opts := lint.PipelineOptionsFromConfig(cfg)

	_, err := pipeline.ProcessFile(context.Background(), filepath.Join(t.TempDir(), "missing.md"), cfg, opts)
	require.ErrorIs(t, err, lint.ErrFileNotFound)
	assert.True(t, lint.IsPipelineError(err))

	binary := writeFile(t, "bin.md", "a\x00b\n")
	_, err = pipeline.ProcessFile(context.Background(), binary, cfg, opts)
	require.ErrorIs(t, err, lint.ErrDecodeFailure)
	require.ErrorIs(t, err, document.ErrDecode)
}

func TestPipelineProcessContent(t *testing.T) {
	t.Parallel()

	doc := document.New("mem.md", document.KindMarkdown, []byte("a \nb\n"))
	result, err := newStripPipeline().ProcessContent(context.Background(), doc, fixConfig(), lint.PipelineOptions{Fix: true})
	require.NoError(t, err)

	assert.True(t, result.Modified)
	assert.Equal(t, "a\nb\n", string(result.ModifiedContent))
	assert.True(t, result.Diff.HasChanges())
}

func TestPipelineWithSidecarBackupWriter(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "a.md", "x \n")
	cfg := fixConfig()
	opts := lint.PipelineOptionsFromConfig(cfg)
	opts.Backup = fsutil.SidecarBackup{Suffix: ".orig"}

	result, err := newStripPipeline().ProcessFile(context.Background(), path, cfg, opts)
	require.NoError(t, err)
	assert.Equal(t, path+".orig", result.BackupPath)
}
