// Package config defines the configuration types shared by stylefix.
// These are plain data structures; loading and merging live in configloader.
package config

// Severity represents the severity level of a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// RunMode selects between reporting and rewriting.
type RunMode string

const (
	// ModeCheck reports issues and never writes files.
	ModeCheck RunMode = "check"
	// ModeFix rewrites files in place.
	ModeFix RunMode = "fix"
)

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatDiff    OutputFormat = "diff"
	FormatSummary OutputFormat = "summary"
)

// ColorMode controls colored output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatID       RuleFormat = "id"       // "MD009"
	RuleFormatName     RuleFormat = "name"     // "no-trailing-spaces"
	RuleFormatCombined RuleFormat = "combined" // "MD009/no-trailing-spaces"
)

// Defaults.
const (
	DefaultLineLength       = 120
	DefaultMaxIssuesPerFile = 5
	DefaultMaxFixPasses     = 10
	DefaultBackupSuffix     = ".bak"
)

// DefaultExcludeDirs returns the directory names never descended into.
func DefaultExcludeDirs() []string {
	return []string{
		".git",
		"node_modules",
		".venv",
		"venv",
		"__pycache__",
		".terraform",
		".tox",
		".mypy_cache",
		".pytest_cache",
	}
}

// RuleConfig holds per-rule configuration.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	Severity *string        `yaml:"severity,omitempty" toml:"severity,omitempty"`
	Options  map[string]any `yaml:"options,omitempty" toml:"options,omitempty"`
}

// FixConfig tunes the fix loop.
type FixConfig struct {
	// MaxPasses bounds how often rules are re-run on fixed content.
	MaxPasses int `yaml:"max_passes,omitempty" toml:"max_passes,omitempty"`

	// Validate refuses fixes that turn parseable YAML into unparseable YAML.
	Validate *bool `yaml:"validate,omitempty" toml:"validate,omitempty"`
}

// BackupsConfig controls backup copies written before a file is fixed.
type BackupsConfig struct {
	Enabled  *bool  `yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	Suffix   string `yaml:"suffix,omitempty" toml:"suffix,omitempty"`
	Compress *bool  `yaml:"compress,omitempty" toml:"compress,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	// Format specifies the output format.
	Format OutputFormat `yaml:"format,omitempty" toml:"format,omitempty"`

	// Color controls ANSI styling: auto, always, never.
	Color ColorMode `yaml:"color,omitempty" toml:"color,omitempty"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `yaml:"rule_format,omitempty" toml:"rule_format,omitempty"`

	// SeverityDefault applies to rules that do not set a severity.
	SeverityDefault string `yaml:"severity_default,omitempty" toml:"severity_default,omitempty"`

	// MaxIssuesPerFile limits detailed issues printed per file in text output.
	MaxIssuesPerFile int `yaml:"max_issues_per_file,omitempty" toml:"max_issues_per_file,omitempty"`

	// LineLength is the default threshold for the line-length rule.
	LineLength int `yaml:"line_length,omitempty" toml:"line_length,omitempty"`

	// Kinds restricts discovery to these document kinds (md, yaml, jinja).
	Kinds []string `yaml:"kinds,omitempty" toml:"kinds,omitempty"`

	// ExcludeDirs are directory names skipped during discovery.
	ExcludeDirs []string `yaml:"exclude_dirs,omitempty" toml:"exclude_dirs,omitempty"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore,omitempty" toml:"ignore,omitempty"`

	// FollowSymlinks descends into symlinked directories during discovery.
	FollowSymlinks *bool `yaml:"follow_symlinks,omitempty" toml:"follow_symlinks,omitempty"`

	// Rules contains per-rule configuration keyed by rule ID or name.
	Rules map[string]RuleConfig `yaml:"rules,omitempty" toml:"rules,omitempty"`

	// Fix tunes the fix loop.
	Fix FixConfig `yaml:"fix,omitempty" toml:"fix,omitempty"`

	// Backups configures backup copies when fixing.
	Backups BackupsConfig `yaml:"backups,omitempty" toml:"backups,omitempty"`

	// CLI-level options (not persisted to config files).

	// Mode selects check or fix.
	Mode RunMode `yaml:"-" toml:"-"`

	// DryRun shows what would be fixed without writing.
	DryRun bool `yaml:"-" toml:"-"`

	// Quiet suppresses per-file output for clean files.
	Quiet bool `yaml:"-" toml:"-"`

	// EnableRules contains rule IDs or names to force on.
	EnableRules []string `yaml:"-" toml:"-"`

	// DisableRules contains rule IDs or names to force off.
	DisableRules []string `yaml:"-" toml:"-"`
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		Format:           FormatText,
		Color:            ColorAuto,
		RuleFormat:       RuleFormatID,
		SeverityDefault:  string(SeverityWarning),
		MaxIssuesPerFile: DefaultMaxIssuesPerFile,
		LineLength:       DefaultLineLength,
		ExcludeDirs:      DefaultExcludeDirs(),
		Rules:            make(map[string]RuleConfig),
		Fix: FixConfig{
			MaxPasses: DefaultMaxFixPasses,
			Validate:  BoolPtr(true),
		},
		Backups: BackupsConfig{
			Enabled:  BoolPtr(false),
			Suffix:   DefaultBackupSuffix,
			Compress: BoolPtr(false),
		},
		Mode: ModeCheck,
	}
}

// BackupsEnabled reports whether backups should be written.
func (c *Config) BackupsEnabled() bool {
	return c != nil && c.Backups.Enabled != nil && *c.Backups.Enabled
}

// CompressBackups reports whether backups are zstd compressed.
func (c *Config) CompressBackups() bool {
	return c != nil && c.Backups.Compress != nil && *c.Backups.Compress
}

// FollowsSymlinks reports whether discovery traverses directory symlinks.
func (c *Config) FollowsSymlinks() bool {
	return c != nil && c.FollowSymlinks != nil && *c.FollowSymlinks
}

// ValidateFixes reports whether fixed YAML must still parse.
func (c *Config) ValidateFixes() bool {
	return c == nil || c.Fix.Validate == nil || *c.Fix.Validate
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
