// Package runner provides multi-file linting orchestration.
package runner

import (
	"github.com/yaklabco/stylefix/pkg/config"
	"github.com/yaklabco/stylefix/pkg/document"
)

// Options controls multi-file linting behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Kinds restricts discovery to these document kinds.
	// Empty means every lintable kind.
	Kinds []document.Kind

	// ExcludeDirs are directory names never descended into.
	// Nil means config.DefaultExcludeDirs().
	ExcludeDirs []string

	// Ignore are glob patterns, relative to WorkingDir, for files and
	// directories to skip.
	Ignore []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// OptionsFromConfig builds discovery options from cfg for the given paths.
// Unknown kind names in cfg.Kinds are ignored; configloader rejects them earlier.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	opts := Options{Paths: paths, Config: cfg}
	if cfg == nil {
		return opts
	}
	for _, name := range cfg.Kinds {
		if kind, ok := document.ParseKind(name); ok {
			opts.Kinds = append(opts.Kinds, kind)
		}
	}
	opts.ExcludeDirs = cfg.ExcludeDirs
	opts.Ignore = cfg.Ignore
	opts.FollowSymlinks = cfg.FollowsSymlinks()
	return opts
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// effectiveKinds returns the kinds to include, defaulting to all.
func (o Options) effectiveKinds() []document.Kind {
	if len(o.Kinds) == 0 {
		return document.AllKinds()
	}
	return o.Kinds
}

// effectiveExcludeDirs returns the excluded directory names.
func (o Options) effectiveExcludeDirs() []string {
	if o.ExcludeDirs == nil {
		return config.DefaultExcludeDirs()
	}
	return o.ExcludeDirs
}
