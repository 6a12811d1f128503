package lint

import (
	"github.com/yaklabco/stylefix/pkg/config"
	"github.com/yaklabco/stylefix/pkg/document"
)

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Severity is the resolved severity for diagnostics from this rule.
	Severity config.Severity

	// AutoFix indicates whether the rule's edits are collected.
	AutoFix bool

	// Config is the rule-specific configuration (may be nil).
	Config *config.RuleConfig
}

// ResolveRules returns the enabled rules for documents of kind, in ID order.
func ResolveRules(registry *Registry, cfg *config.Config, kind document.Kind) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range registry.Rules() {
		if !AppliesTo(rule, kind) {
			continue
		}
		rr := resolveRule(registry, rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

// resolveRule applies, in order: rule defaults, the global default
// severity, the per-rule config, then CLI enable/disable lists.
func resolveRule(registry *Registry, rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:     rule,
		Enabled:  rule.DefaultEnabled(),
		Severity: rule.DefaultSeverity(),
		AutoFix:  rule.CanFix(),
	}

	if cfg == nil {
		return rr
	}

	if cfg.SeverityDefault != "" {
		rr.Severity = config.Severity(cfg.SeverityDefault)
	}

	if ruleCfg, ok := ruleConfigFor(registry, rule, cfg); ok {
		rr.Config = &ruleCfg
		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
		if ruleCfg.Severity != nil {
			rr.Severity = config.Severity(*ruleCfg.Severity)
		}
	}

	if matchesAny(registry, rule, cfg.EnableRules) {
		rr.Enabled = true
	}
	if matchesAny(registry, rule, cfg.DisableRules) {
		rr.Enabled = false
	}

	if cfg.Mode != config.ModeFix {
		rr.AutoFix = false
	}

	return rr
}

// ruleConfigFor finds the config entry for rule, keyed by ID, name or alias.
func ruleConfigFor(registry *Registry, rule Rule, cfg *config.Config) (config.RuleConfig, bool) {
	if rc, ok := cfg.Rules[rule.ID()]; ok {
		return rc, true
	}
	for name, rc := range cfg.Rules {
		if id, _, ok := registry.Resolve(name); ok && id == rule.ID() {
			return rc, true
		}
	}
	return config.RuleConfig{}, false
}

func matchesAny(registry *Registry, rule Rule, names []string) bool {
	for _, name := range names {
		if key(name) == "all" {
			return true
		}
		if id, _, ok := registry.Resolve(name); ok && id == rule.ID() {
			return true
		}
	}
	return false
}
