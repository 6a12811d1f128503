package lint

import (
	"github.com/yaklabco/stylefix/pkg/config"
	"github.com/yaklabco/stylefix/pkg/document"
)

// BaseRule provides the metadata half of the Rule interface.
// Embed it in rule implementations and supply Apply.
type BaseRule struct {
	id      string
	name    string
	desc    string
	kinds   []document.Kind
	fixable bool
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, kinds []document.Kind, fixable bool) BaseRule {
	return BaseRule{
		id:      id,
		name:    name,
		desc:    desc,
		kinds:   kinds,
		fixable: fixable,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// Kinds returns the document kinds the rule applies to.
func (r *BaseRule) Kinds() []document.Kind {
	return r.kinds
}

// DefaultEnabled returns true; override to ship a rule disabled.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}

// DefaultSeverity returns warning; override to change it.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return config.SeverityWarning
}

// CanFix returns whether this rule proposes fix edits.
func (r *BaseRule) CanFix() bool {
	return r.fixable
}

// Markdown is the kind set for Markdown-only rules.
func Markdown() []document.Kind {
	return []document.Kind{document.KindMarkdown}
}

// YAML is the kind set for YAML-only rules.
func YAML() []document.Kind {
	return []document.Kind{document.KindYAML}
}

// Templated is the kind set for rules shared by YAML and Jinja files.
func Templated() []document.Kind {
	return []document.Kind{document.KindYAML, document.KindJinja}
}

// AnyKind is the kind set for rules that apply to every document.
func AnyKind() []document.Kind {
	return document.AllKinds()
}
