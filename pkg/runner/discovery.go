package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
	"github.com/samber/lo"

	"github.com/yaklabco/stylefix/pkg/document"
)

// matcher decides which discovered paths are linted.
type matcher struct {
	workDir     string
	kinds       []document.Kind
	excludeDirs []string
	ignore      []glob.Glob
}

// Discover finds lintable files for opts under the given working directory.
// It returns a deterministically sorted list of absolute file paths.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	ignore, err := compileIgnore(opts.Ignore)
	if err != nil {
		return nil, err
	}

	m := &matcher{
		workDir:     workDir,
		kinds:       opts.effectiveKinds(),
		excludeDirs: opts.effectiveExcludeDirs(),
		ignore:      ignore,
	}

	var files []string

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			discovered, err := m.walk(ctx, absPath, opts.FollowSymlinks)
			if err != nil {
				return nil, err
			}
			files = append(files, discovered...)
			continue
		}

		if m.matchesFile(absPath) {
			files = append(files, absPath)
		}
	}

	files = lo.Uniq(files)
	slices.Sort(files)

	return files, nil
}

// compileIgnore compiles glob patterns with '/' as the separator, so '*'
// stays within one path segment and '**' crosses segments.
func compileIgnore(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(filepath.ToSlash(pattern))
		if pattern == "" {
			continue
		}
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)

		// "vendor/**" also covers the directory "vendor" itself.
		if prefix, ok := strings.CutSuffix(pattern, "/**"); ok && prefix != "" {
			if g, err := glob.Compile(prefix, '/'); err == nil {
				globs = append(globs, g)
			}
		}
	}
	return globs, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// walk recursively walks root and returns matching files.
func (m *matcher) walk(ctx context.Context, root string, followSymlinks bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if path != root && m.skipDir(path, entry.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				return nil //nolint:nilerr // broken symlinks are skipped
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil //nolint:nilerr // unreadable symlink targets are skipped
			}
			if info.IsDir() {
				if !followSymlinks || m.skipDir(path, entry.Name()) {
					return nil
				}
				// Walk the target so WalkDir does not Lstat the link again.
				subFiles, err := m.walk(ctx, realPath, followSymlinks)
				if err != nil {
					return err
				}
				files = append(files, subFiles...)
				return nil
			}
		}

		if m.matchesFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// skipDir reports whether a directory is excluded by name or ignore pattern.
func (m *matcher) skipDir(path, name string) bool {
	if lo.Contains(m.excludeDirs, name) {
		return true
	}
	return m.ignored(path)
}

// matchesFile reports whether a file has a wanted kind and is not ignored.
func (m *matcher) matchesFile(path string) bool {
	kind := document.Detect(path)
	if kind == document.KindUnknown || !lo.Contains(m.kinds, kind) {
		return false
	}
	return !m.ignored(path)
}

// ignored matches the path relative to the working directory, and its base
// name, against the ignore patterns.
func (m *matcher) ignored(path string) bool {
	if len(m.ignore) == 0 {
		return false
	}
	rel, err := filepath.Rel(m.workDir, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	base := filepath.Base(path)

	return lo.SomeBy(m.ignore, func(g glob.Glob) bool {
		return g.Match(rel) || g.Match(base)
	})
}
