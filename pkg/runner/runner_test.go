package runner_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/stylefix/internal/logging"
	"github.com/yaklabco/stylefix/pkg/config"
	"github.com/yaklabco/stylefix/pkg/lint"
	_ "github.com/yaklabco/stylefix/pkg/lint/rules"
	"github.com/yaklabco/stylefix/pkg/runner"
)

func newRunner() *runner.Runner {
	return runner.New(lint.NewPipeline(lint.NewEngine(lint.DefaultRegistry)))
}

func TestRunnerCheck(t *testing.T) {
	t.Parallel()

	root := makeTree(t, map[string]string{
		"clean.md": "# Title\n\nText.\n",
		"dirty.md": "# Title\nText.  \n```\ncode\n```\n",
		"play.yml": "- hosts: all\n  tasks:\n    - apt: name=x\n      become: yes\n",
	})

	cfg := config.NewConfig()
	result, err := newRunner().Run(context.Background(), runner.Options{WorkingDir: root, Config: cfg})
	require.NoError(t, err)

	seen := make([]string, 0, len(result.Files))
	for _, outcome := range result.Files {
		seen = append(seen, filepath.Base(outcome.Path))
	}
	assert.Equal(t, []string{"clean.md", "dirty.md", "play.yml"}, seen)
	assert.Equal(t, 3, result.Stats.FilesDiscovered)
	assert.Equal(t, 3, result.Stats.FilesProcessed)
	assert.Equal(t, 2, result.Stats.FilesWithIssues)
	assert.Zero(t, result.Stats.FilesModified)
	assert.True(t, result.HasIssues())
	assert.False(t, result.HasErrors())
	assert.Equal(t, result.Stats.InitialIssues, result.Stats.DiagnosticsTotal)

	content, err := os.ReadFile(filepath.Join(root, "dirty.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Title\nText.  \n```\ncode\n```\n", string(content))
}

func TestRunnerFix(t *testing.T) {
	t.Parallel()

	root := makeTree(t, map[string]string{
		"clean.md": "# Title\n\nText.\n",
		"play.yml": "- hosts: all\n  tasks:\n    - apt: name=x\n      become: yes\n",
	})

	cfg := config.NewConfig()
	cfg.Mode = config.ModeFix

	result, err := newRunner().Run(context.Background(), runner.Options{WorkingDir: root, Config: cfg})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesModified)
	assert.Zero(t, result.Stats.DiagnosticsTotal)
	assert.False(t, result.Files[0].Fixed())
	assert.True(t, result.Files[1].Fixed())

	content, err := os.ReadFile(filepath.Join(root, "play.yml"))
	require.NoError(t, err)
	assert.Equal(t, "- hosts: all\n  tasks:\n    - ansible.builtin.apt: name=x\n      become: true\n", string(content))
}

func TestRunnerDryRunCountsPendingFixes(t *testing.T) {
	t.Parallel()

	root := makeTree(t, map[string]string{"a.md": "text   \n"})

	cfg := config.NewConfig()
	cfg.Mode = config.ModeFix
	cfg.DryRun = true

	result, err := newRunner().Run(context.Background(), runner.Options{WorkingDir: root, Config: cfg})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesModified)
	require.NotNil(t, result.Files[0].Result.Diff)

	content, err := os.ReadFile(filepath.Join(root, "a.md"))
	require.NoError(t, err)
	assert.Equal(t, "text   \n", string(content))
}

func TestRunnerContinuesAfterFileError(t *testing.T) {
	t.Parallel()

	root := makeTree(t, map[string]string{
		"a.md": "text\n",
		"c.md": "text\n",
	})
	missing := filepath.Join(root, "b.md")

	files := []string{filepath.Join(root, "a.md"), missing, filepath.Join(root, "c.md")}
	result, err := newRunner().RunFiles(context.Background(), files, runner.Options{Config: config.NewConfig()})
	require.NoError(t, err)

	require.Len(t, result.Files, 3)
	assert.Equal(t, 2, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesErrored)
	assert.True(t, result.HasErrors())
	require.ErrorIs(t, result.Files[1].Error, lint.ErrFileNotFound)
}

func TestRunnerLogsEachFile(t *testing.T) {
	t.Parallel()

	root := makeTree(t, map[string]string{"a.md": "text\n"})
	missing := filepath.Join(root, "b.md")

	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.NewWithWriter(&buf, "debug"))

	_, err := newRunner().RunFiles(ctx, []string{filepath.Join(root, "a.md"), missing}, runner.Options{Config: config.NewConfig()})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "file processed")
	assert.Contains(t, out, "path="+filepath.Join(root, "a.md"))
	assert.Contains(t, out, "file failed")
	assert.Contains(t, out, "path="+missing)
	assert.NotContains(t, out, "WARN", "missing files are expected failures")
}

func TestRunnerCancelled(t *testing.T) {
	t.Parallel()

	root := makeTree(t, map[string]string{"a.md": "text\n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := newRunner().RunFiles(ctx, []string{filepath.Join(root, "a.md")}, runner.Options{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, result.Files)
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Kinds = []string{"md", "bogus"}
	cfg.Ignore = []string{"vendor/**"}

	opts := runner.OptionsFromConfig(cfg, []string{"docs"})
	assert.Equal(t, []string{"docs"}, opts.Paths)
	assert.Len(t, opts.Kinds, 1)
	assert.Equal(t, cfg.ExcludeDirs, opts.ExcludeDirs)
	assert.Equal(t, []string{"vendor/**"}, opts.Ignore)
	assert.False(t, opts.FollowSymlinks)
	assert.Same(t, cfg, opts.Config)

	cfg.FollowSymlinks = config.BoolPtr(true)
	assert.True(t, runner.OptionsFromConfig(cfg, nil).FollowSymlinks)
}
