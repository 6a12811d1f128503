package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/stylefix/pkg/document"
	"github.com/yaklabco/stylefix/pkg/runner"
)

// makeTree creates files (with parent directories) under a temp dir.
func makeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return root
}

// relPaths converts absolute discovery results back to slash paths under root.
func relPaths(t *testing.T, root string, files []string) []string {
	t.Helper()
	out := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	tree := map[string]string{
		"README.md":                   "# r\n",
		"docs/guide.markdown":         "# g\n",
		"site.yml":                    "- hosts: all\n",
		"roles/web/tasks/main.yaml":   "- apt: name=x\n",
		"roles/web/templates/a.j2":    "{{x}}\n",
		"notes.txt":                   "ignored\n",
		".github/workflows/ci.yml":    "on: push\n",
		".git/config.yml":             "x: 1\n",
		"node_modules/pkg/README.md":  "# n\n",
		".venv/lib/site.yaml":         "x: 1\n",
		"vendor/thing/README.md":      "# v\n",
		"docs/CHANGELOG.md":           "# c\n",
		"build/__pycache__/a.md":      "# p\n",
		"deploy/.terraform/readme.md": "# t\n",
	}

	tests := []struct {
		name    string
		opts    runner.Options
		want    []string
		wantErr bool
	}{
		{
			name: "default kinds and excluded dirs",
			want: []string{
				".github/workflows/ci.yml",
				"README.md",
				"docs/CHANGELOG.md",
				"docs/guide.markdown",
				"roles/web/tasks/main.yaml",
				"roles/web/templates/a.j2",
				"site.yml",
				"vendor/thing/README.md",
			},
		},
		{
			name: "markdown only",
			opts: runner.Options{Kinds: []document.Kind{document.KindMarkdown}},
			want: []string{
				"README.md",
				"docs/CHANGELOG.md",
				"docs/guide.markdown",
				"vendor/thing/README.md",
			},
		},
		{
			name: "ignore patterns",
			opts: runner.Options{
				Kinds:  []document.Kind{document.KindMarkdown},
				Ignore: []string{"vendor/**", "CHANGELOG.md"},
			},
			want: []string{"README.md", "docs/guide.markdown"},
		},
		{
			name: "custom exclude dirs replace defaults",
			opts: runner.Options{
				Kinds:       []document.Kind{document.KindYAML},
				ExcludeDirs: []string{"roles"},
			},
			want: []string{".git/config.yml", ".github/workflows/ci.yml", ".venv/lib/site.yaml", "site.yml"},
		},
		{
			name: "explicit file and directory deduplicated",
			opts: runner.Options{Paths: []string{"docs", "docs/guide.markdown", "README.md"}},
			want: []string{"README.md", "docs/CHANGELOG.md", "docs/guide.markdown"},
		},
		{
			name: "explicit file of unknown kind skipped",
			opts: runner.Options{Paths: []string{"notes.txt"}},
			want: []string{},
		},
		{
			name:    "missing path",
			opts:    runner.Options{Paths: []string{"nope"}},
			wantErr: true,
		},
		{
			name:    "bad ignore pattern",
			opts:    runner.Options{Ignore: []string{"[unclosed"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := makeTree(t, tree)
			opts := tt.opts
			opts.WorkingDir = root

			files, err := runner.Discover(context.Background(), opts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, relPaths(t, root, files))
		})
	}
}

func TestDiscoverCancelled(t *testing.T) {
	t.Parallel()

	root := makeTree(t, map[string]string{"a.md": "# a\n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: root})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDiscoverSymlinks(t *testing.T) {
	t.Parallel()

	root := makeTree(t, map[string]string{"docs/a.md": "# a\n"})
	outside := makeTree(t, map[string]string{"b.md": "# b\n"})
	if err := os.Symlink(outside, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: root})
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/a.md"}, relPaths(t, root, files))

	files, err = runner.Discover(context.Background(), runner.Options{WorkingDir: root, FollowSymlinks: true})
	require.NoError(t, err)
	assert.Len(t, files, 2)
}
