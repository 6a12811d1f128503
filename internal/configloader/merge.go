package configloader

import (
	"maps"

	"github.com/yaklabco/stylefix/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointer booleans: override overwrites base if non-nil
//   - Maps: deep merge, with override's values taking precedence
//   - Slices: override replaces base entirely if override is non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.RuleFormat != "" {
		result.RuleFormat = override.RuleFormat
	}
	if override.SeverityDefault != "" {
		result.SeverityDefault = override.SeverityDefault
	}
	if override.MaxIssuesPerFile != 0 {
		result.MaxIssuesPerFile = override.MaxIssuesPerFile
	}
	if override.LineLength != 0 {
		result.LineLength = override.LineLength
	}
	if override.Mode != "" {
		result.Mode = override.Mode
	}

	// CLI-only booleans can only be switched on.
	if override.DryRun {
		result.DryRun = true
	}
	if override.Quiet {
		result.Quiet = true
	}

	if override.Fix.MaxPasses != 0 {
		result.Fix.MaxPasses = override.Fix.MaxPasses
	}
	if override.Fix.Validate != nil {
		result.Fix.Validate = override.Fix.Validate
	}

	if override.Backups.Enabled != nil {
		result.Backups.Enabled = override.Backups.Enabled
	}
	if override.Backups.Suffix != "" {
		result.Backups.Suffix = override.Backups.Suffix
	}
	if override.Backups.Compress != nil {
		result.Backups.Compress = override.Backups.Compress
	}

	result.Rules = mergeRules(base.Rules, override.Rules)

	if override.Kinds != nil {
		result.Kinds = override.Kinds
	}
	if override.ExcludeDirs != nil {
		result.ExcludeDirs = override.ExcludeDirs
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}
	if override.FollowSymlinks != nil {
		result.FollowSymlinks = override.FollowSymlinks
	}
	if override.EnableRules != nil {
		result.EnableRules = override.EnableRules
	}
	if override.DisableRules != nil {
		result.DisableRules = override.DisableRules
	}

	return &result
}

// mergeRules performs deep merge of rule configurations.
func mergeRules(base, override map[string]config.RuleConfig) map[string]config.RuleConfig {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]config.RuleConfig, len(base)+len(override))
	maps.Copy(result, base)

	for key, val := range override {
		if existing, ok := result[key]; ok {
			result[key] = mergeRuleConfig(existing, val)
		} else {
			result[key] = val
		}
	}

	return result
}

// mergeRuleConfig merges individual rule configurations.
func mergeRuleConfig(base, override config.RuleConfig) config.RuleConfig {
	result := base

	if override.Enabled != nil {
		result.Enabled = override.Enabled
	}
	if override.Severity != nil {
		result.Severity = override.Severity
	}

	if override.Options != nil {
		options := make(map[string]any, len(base.Options)+len(override.Options))
		maps.Copy(options, base.Options)
		maps.Copy(options, override.Options)
		result.Options = options
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
