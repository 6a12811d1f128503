package rules

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"github.com/yaklabco/stylefix/pkg/fix"
	"github.com/yaklabco/stylefix/pkg/lint"
)

// DefaultModules maps short Ansible module names to their fully qualified
// collection names.
func DefaultModules() map[string]string {
	return map[string]string{
		"apt":        "ansible.builtin.apt",
		"copy":       "ansible.builtin.copy",
		"fetch":      "ansible.builtin.fetch",
		"file":       "ansible.builtin.file",
		"get_url":    "ansible.builtin.get_url",
		"lineinfile": "ansible.builtin.lineinfile",
		"replace":    "ansible.builtin.replace",
		"shell":      "ansible.builtin.shell",
		"systemd":    "ansible.builtin.systemd",
		"template":   "ansible.builtin.template",
		"wait_for":   "ansible.builtin.wait_for",
		"modprobe":   "community.general.modprobe",
		"sysctl":     "ansible.posix.sysctl",
		"timezone":   "community.general.timezone",
		"ufw":        "community.general.ufw",
	}
}

// DefaultAnsibleDirs are path segments that mark a YAML file as Ansible content.
func DefaultAnsibleDirs() []string {
	return []string{"ansible", "roles", "playbooks", "plays", "tasks", "handlers"}
}

var (
	moduleKeyPattern = regexp.MustCompile(`^(\s+(?:-\s+)?)([A-Za-z_][A-Za-z0-9_]*):(?:\s|$)`)
	listItemPattern  = regexp.MustCompile(`^(\s*)-\s+`)
	truthyPattern    = regexp.MustCompile(`^(\s*(?:-\s+)?[\w.-]+:\s+)(yes|no|Yes|No|YES|NO)(\s*(?:#.*)?)$`)
	playPattern      = regexp.MustCompile(`(?m)^\s*-?\s*hosts:\s`)
)

// FQCNRule rewrites short Ansible module names to fully qualified names.
type FQCNRule struct {
	lint.BaseRule
}

// NewFQCNRule creates a new FQCN rule.
func NewFQCNRule() *FQCNRule {
	return &FQCNRule{
		BaseRule: lint.NewBaseRule(
			"Y001",
			"fqcn-module",
			"Ansible modules should use fully qualified collection names",
			lint.YAML(),
			true,
		),
	}
}

// Apply rewrites module keys found at task level on indented lines.
// Only files that look like Ansible content are checked unless the
// ansible_only option is false.
func (r *FQCNRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.OptionBool("ansible_only", true) &&
		!looksLikeAnsible(ctx.Path(), ctx.Doc.Content, ctx.OptionStringSlice("ansible_dirs", DefaultAnsibleDirs())) {
		return nil, nil
	}

	modules := lo.Assign(DefaultModules(), ctx.OptionStringMap("modules", nil))

	var (
		diags []lint.Diagnostic
		tasks taskLevels
	)

	for lineNum := 1; lineNum <= ctx.Doc.LineCount(); lineNum++ {
		if err := checkCancelled(ctx); err != nil {
			return diags, err
		}

		text := ctx.Doc.LineText(lineNum)
		if !tasks.observe(text) {
			continue
		}
		m := moduleKeyPattern.FindStringSubmatchIndex(text)
		if m == nil {
			continue
		}
		short := text[m[4]:m[5]]
		fqcn, ok := modules[short]
		if !ok || fqcn == short {
			continue
		}

		base := lineStart(ctx, lineNum)
		diags = append(diags, lint.NewDiagnosticAt(r.ID(), ctx.Path(), lineNum, m[4]+1, m[5],
			fmt.Sprintf("Use FQCN: %s -> %s", short, fqcn)).
			WithSuggestion("Replace "+short+" with "+fqcn).
			WithFix(fix.NewEditBuilder().ReplaceRange(base+m[4], base+m[5], fqcn)).
			Build())
	}

	return diags, nil
}

// taskLevels tracks the key column of each open list item so that only
// keys of a task mapping are treated as module names. Keys nested deeper,
// such as module parameters or block scalar text, are left alone.
type taskLevels struct {
	cols []int
}

// observe updates the open list items for text and reports whether the
// line's key sits at task level.
func (t *taskLevels) observe(text string) bool {
	trimmed := strings.TrimLeft(text, " \t")
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return false
	}
	indent := len(text) - len(trimmed)

	for len(t.cols) > 0 && indent < t.cols[len(t.cols)-1] {
		t.cols = t.cols[:len(t.cols)-1]
	}

	if m := listItemPattern.FindStringIndex(text); m != nil {
		t.cols = append(t.cols, m[1])
		return true
	}

	return len(t.cols) > 0 && indent == t.cols[len(t.cols)-1]
}

// looksLikeAnsible reports whether a YAML file sits under an Ansible
// directory or contains a play.
func looksLikeAnsible(path string, content []byte, dirs []string) bool {
	segments := strings.Split(filepath.ToSlash(filepath.Dir(path)), "/")
	for _, seg := range segments {
		if lo.Contains(dirs, strings.ToLower(seg)) {
			return true
		}
	}
	return playPattern.Match(content)
}

// TruthyRule rewrites yes/no scalars to true/false.
type TruthyRule struct {
	lint.BaseRule
}

// NewTruthyRule creates a new truthy rule.
func NewTruthyRule() *TruthyRule {
	return &TruthyRule{
		BaseRule: lint.NewBaseRule(
			"Y002",
			"truthy",
			"Boolean values should be true or false",
			lint.YAML(),
			true,
		),
	}
}

// Apply rewrites truthy values in "key: value" lines, keeping any comment.
func (r *TruthyRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	for lineNum := 1; lineNum <= ctx.Doc.LineCount(); lineNum++ {
		if err := checkCancelled(ctx); err != nil {
			return diags, err
		}

		text := ctx.Doc.LineText(lineNum)
		m := truthyPattern.FindStringSubmatchIndex(text)
		if m == nil {
			continue
		}
		value := text[m[4]:m[5]]
		canonical := "false"
		if strings.EqualFold(value, "yes") {
			canonical = "true"
		}

		base := lineStart(ctx, lineNum)
		diags = append(diags, lint.NewDiagnosticAt(r.ID(), ctx.Path(), lineNum, m[4]+1, m[5],
			fmt.Sprintf("Truthy value: %s -> %s", value, canonical)).
			WithSuggestion("Use " + canonical).
			WithFix(fix.NewEditBuilder().ReplaceRange(base+m[4], base+m[5], canonical)).
			Build())
	}

	return diags, nil
}
