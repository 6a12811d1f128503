package config

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// RuleInfo contains rule metadata for template generation. The lint
// package supplies it so config does not import lint.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Kinds       []string
	Enabled     bool
	Severity    Severity
	CanFix      bool
}

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Format is the file serialization.
	Format FileFormat

	// Rules are documented in the template, sorted by ID.
	Rules []RuleInfo
}

// GenerateTemplate renders a commented starter configuration.
func GenerateTemplate(opts TemplateOptions) []byte {
	rules := slices.Clone(opts.Rules)
	slices.SortFunc(rules, func(a, b RuleInfo) int { return strings.Compare(a.ID, b.ID) })

	if opts.Format == FileFormatTOML {
		return tomlTemplate(rules)
	}
	return yamlTemplate(rules)
}

func yamlTemplate(rules []RuleInfo) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, `# stylefix configuration
# Precedence: defaults < user config < this file < --config < STYLEFIX_* < flags

# Output format: text, json, diff, or summary
format: text

# Colored output: auto, always, never
color: auto

# Detailed issues printed per file in text output
max_issues_per_file: %d

# Default threshold for MD013
line_length: %d

# Document kinds to scan: md, yaml, jinja (empty means all)
# kinds: [md, yaml]

# Directory names never descended into
exclude_dirs:
`, DefaultMaxIssuesPerFile, DefaultLineLength)
	for _, dir := range DefaultExcludeDirs() {
		fmt.Fprintf(&buf, "  - %s\n", dir)
	}

	fmt.Fprintf(&buf, `
# Glob patterns for files to skip
# ignore:
#   - "vendor/**"
#   - "**/CHANGELOG.md"

# Descend into symlinked directories
follow_symlinks: false

fix:
  max_passes: %d
  validate: true

# Backups written next to each fixed file
backups:
  enabled: false
  suffix: %s
  compress: false

rules:
`, DefaultMaxFixPasses, DefaultBackupSuffix)

	for _, rule := range rules {
		writeRuleComment(&buf, rule, "  # ")
		fmt.Fprintf(&buf, "  %s:\n", rule.ID)
		fmt.Fprintf(&buf, "    enabled: %t\n", rule.Enabled)
		fmt.Fprintf(&buf, "    severity: %s\n", rule.Severity)
		buf.WriteString("    # options:\n")
		buf.WriteString("    #   key: value\n")
	}

	return buf.Bytes()
}

func tomlTemplate(rules []RuleInfo) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, `# stylefix configuration
# Precedence: defaults < user config < this file < --config < STYLEFIX_* < flags

format = "text"
color = "auto"
max_issues_per_file = %d
line_length = %d
# kinds = ["md", "yaml"]
exclude_dirs = [%s]
# ignore = ["vendor/**"]
follow_symlinks = false

[fix]
max_passes = %d
validate = true

[backups]
enabled = false
suffix = "%s"
compress = false
`, DefaultMaxIssuesPerFile, DefaultLineLength, quoteList(DefaultExcludeDirs()),
		DefaultMaxFixPasses, DefaultBackupSuffix)

	for _, rule := range rules {
		buf.WriteByte('\n')
		writeRuleComment(&buf, rule, "# ")
		fmt.Fprintf(&buf, "[rules.%s]\n", rule.ID)
		fmt.Fprintf(&buf, "enabled = %t\n", rule.Enabled)
		fmt.Fprintf(&buf, "severity = %q\n", rule.Severity)
	}

	return buf.Bytes()
}

func writeRuleComment(buf *bytes.Buffer, rule RuleInfo, prefix string) {
	fmt.Fprintf(buf, "\n%s%s: %s\n", prefix, rule.ID, rule.Name)
	fmt.Fprintf(buf, "%s%s\n", prefix, wrapComment(rule.Description, commentWrapWidth, prefix))
	if len(rule.Kinds) > 0 {
		fmt.Fprintf(buf, "%sApplies to: %s\n", prefix, strings.Join(rule.Kinds, ", "))
	}
	if rule.CanFix {
		fmt.Fprintf(buf, "%sAuto-fix: yes\n", prefix)
	}
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return strings.Join(quoted, ", ")
}

// wrapComment wraps text to maxWidth, continuing lines with prefix.
func wrapComment(text string, maxWidth int, prefix string) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= maxWidth:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	return strings.Join(lines, "\n"+prefix)
}
