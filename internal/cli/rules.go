package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/stylefix/internal/ui/pretty"
	"github.com/yaklabco/stylefix/pkg/config"
	"github.com/yaklabco/stylefix/pkg/document"
	"github.com/yaklabco/stylefix/pkg/lint"
)

type rulesFlags struct {
	format string
	kind   string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Kinds       []string `json:"kinds"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Enabled     bool     `json:"enabled"`
	Fixable     bool     `json:"fixable"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available rules",
		Long: `List all available rules with their IDs, names, the document kinds they
apply to, whether they support auto-fixing, and a short description.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := ruleInfos(lint.DefaultRegistry)
			if flags.kind != "" {
				kind, ok := document.ParseKind(flags.kind)
				if !ok {
					return usageErrorf(fmt.Errorf("unknown kind %q: must be md, yaml or jinja", flags.kind))
				}
				infos = filterByKind(infos, kind)
			}

			if flags.format == formatJSON {
				return writeRulesJSON(cmd.OutOrStdout(), infos)
			}

			colorFlag := cmd.Root().PersistentFlags().Lookup("color")
			colorMode := config.ColorAuto
			if colorFlag != nil {
				colorMode = config.ColorMode(colorFlag.Value.String())
			}
			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
			return writeRulesText(cmd.OutOrStdout(), infos, styles)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().StringVar(&flags.kind, "kind", "", "only list rules for this kind: md, yaml, jinja")

	return cmd
}

// ruleInfos describes every registered rule, sorted by ID.
func ruleInfos(registry *lint.Registry) []ruleInfo {
	rules := registry.Rules()
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		kinds := make([]string, 0, len(rule.Kinds()))
		for _, kind := range rule.Kinds() {
			kinds = append(kinds, string(kind))
		}
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Kinds:       kinds,
			Description: rule.Description(),
			Severity:    string(rule.DefaultSeverity()),
			Enabled:     rule.DefaultEnabled(),
			Fixable:     rule.CanFix(),
		})
	}
	return infos
}

func filterByKind(infos []ruleInfo, kind document.Kind) []ruleInfo {
	var filtered []ruleInfo
	for _, info := range infos {
		if slices.Contains(info.Kinds, string(kind)) {
			filtered = append(filtered, info)
		}
	}
	return filtered
}

func writeRulesText(w io.Writer, infos []ruleInfo, styles *pretty.Styles) error {
	nameWidth := len("NAME")
	kindWidth := len("KINDS")
	for _, info := range infos {
		nameWidth = max(nameWidth, len(info.Name))
		kindWidth = max(kindWidth, len(strings.Join(info.Kinds, ",")))
	}

	row := func(id, name, kinds, fixable, desc string) string {
		return fmt.Sprintf("%-6s  %-*s  %-*s  %-7s  %s", id, nameWidth, name, kindWidth, kinds, fixable, desc)
	}

	if _, err := fmt.Fprintln(w, styles.TableHeader.Render(row("ID", "NAME", "KINDS", "FIXABLE", "DESCRIPTION"))); err != nil {
		return fmt.Errorf("write rules: %w", err)
	}

	for _, info := range infos {
		fixable := "-"
		if info.Fixable {
			fixable = "yes"
		}
		line := row(info.ID, info.Name, strings.Join(info.Kinds, ","), fixable, info.Description)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write rules: %w", err)
		}
	}
	return nil
}

func writeRulesJSON(w io.Writer, infos []ruleInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}

// templateRules converts rule descriptions for the init template.
func templateRules(infos []ruleInfo) []config.RuleInfo {
	rules := make([]config.RuleInfo, 0, len(infos))
	for _, info := range infos {
		rules = append(rules, config.RuleInfo{
			ID:          info.ID,
			Name:        info.Name,
			Description: info.Description,
			Kinds:       info.Kinds,
			Enabled:     info.Enabled,
			Severity:    config.Severity(info.Severity),
			CanFix:      info.Fixable,
		})
	}
	return rules
}
