package configloader

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/stylefix/pkg/config"
)

// envVarPrefix is the prefix for all stylefix environment variables.
const envVarPrefix = "STYLEFIX_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FORMAT":           {field: "format", typ: envTypeString, description: "Output format: text, json, diff, or summary"},
	"COLOR":            {field: "color", typ: envTypeString, description: "Color mode: auto, always, or never"},
	"RULE_FORMAT":      {field: "rule_format", typ: envTypeString, description: "Rule display: id, name, or combined"},
	"SEVERITY_DEFAULT": {field: "severity_default", typ: envTypeString, description: "Default severity: error, warning, or info"},
	"MAX_ISSUES":       {field: "max_issues_per_file", typ: envTypeInt, description: "Issues shown per file in text output"},
	"LINE_LENGTH":      {field: "line_length", typ: envTypeInt, description: "Maximum line length for MD013"},
	"KINDS":            {field: "kinds", typ: envTypeSlice, description: "Comma-separated document kinds: md, yaml, jinja"},
	"EXCLUDE_DIRS":     {field: "exclude_dirs", typ: envTypeSlice, description: "Comma-separated directory names to skip"},
	"IGNORE":           {field: "ignore", typ: envTypeSlice, description: "Comma-separated list of ignore patterns"},
	"FOLLOW_SYMLINKS":  {field: "follow_symlinks", typ: envTypeBool, description: "Descend into symlinked directories: true or false"},
	"FIX_MAX_PASSES":   {field: "fix.max_passes", typ: envTypeInt, description: "Maximum fix passes per file"},
	"BACKUPS_ENABLED":  {field: "backups.enabled", typ: envTypeBool, description: "Write backups when fixing: true or false"},
	"BACKUPS_SUFFIX":   {field: "backups.suffix", typ: envTypeString, description: "Suffix appended to backup files"},
	"BACKUPS_COMPRESS": {field: "backups.compress", typ: envTypeBool, description: "Compress backups with zstd: true or false"},
	"DRY_RUN":          {field: "dry_run", typ: envTypeBool, description: "Dry-run mode: true or false"},
	"QUIET":            {field: "quiet", typ: envTypeBool, description: "Suppress output for clean files: true or false"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with STYLEFIX_ (e.g., STYLEFIX_FORMAT).
func LoadFromEnv(cfg *config.Config) error {
	return loadFromEnv(cfg, os.Getenv)
}

func loadFromEnv(cfg *config.Config, getenv func(string) string) error {
	if cfg == nil {
		return nil
	}

	for _, envSuffix := range slices.Sorted(maps.Keys(envMappings)) {
		envVar := envVarPrefix + envSuffix
		value := getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, envMappings[envSuffix], value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "color":
		cfg.Color = config.ColorMode(value)
	case "rule_format":
		cfg.RuleFormat = config.RuleFormat(value)
	case "severity_default":
		cfg.SeverityDefault = value
	case "backups.suffix":
		cfg.Backups.Suffix = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "backups.enabled":
		cfg.Backups.Enabled = config.BoolPtr(value)
	case "backups.compress":
		cfg.Backups.Compress = config.BoolPtr(value)
	case "follow_symlinks":
		cfg.FollowSymlinks = config.BoolPtr(value)
	case "dry_run":
		cfg.DryRun = value
	case "quiet":
		cfg.Quiet = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "max_issues_per_file":
		cfg.MaxIssuesPerFile = value
	case "line_length":
		cfg.LineLength = value
	case "fix.max_passes":
		cfg.Fix.MaxPasses = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "kinds":
		cfg.Kinds = value
	case "exclude_dirs":
		cfg.ExcludeDirs = value
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.description
	}
	return vars
}
