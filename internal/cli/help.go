package cli

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/yaklabco/stylefix/internal/ui/pretty"
	"github.com/yaklabco/stylefix/pkg/config"
)

const usageTemplate = `{{ heading "Usage:" }}
{{- if .Runnable}}
  {{ command .UseLine }}
{{- end}}
{{- if .HasAvailableSubCommands}}
  {{ command .CommandPath }} [command]
{{- end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Commands:" }}
{{- range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ .Short }}
{{- end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{ trim . }}

{{end}}` + usageTemplate

// HelpFormatter renders Cobra help and usage text with pretty styles.
type HelpFormatter struct {
	colorMode config.ColorMode
}

// NewHelpFormatter creates a help formatter. The color mode can be
// overridden at render time by the --color flag.
func NewHelpFormatter(colorMode config.ColorMode) *HelpFormatter {
	return &HelpFormatter{colorMode: colorMode}
}

func (h *HelpFormatter) styles(cmd *cobra.Command) *pretty.Styles {
	mode := h.colorMode
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil && flag.Changed {
		mode = config.ColorMode(flag.Value.String())
	}
	return pretty.NewStyles(pretty.IsColorEnabled(mode, cmd.OutOrStdout()))
}

func (h *HelpFormatter) funcs(styles *pretty.Styles) template.FuncMap {
	return template.FuncMap{
		"heading":    styles.Bold.Render,
		"command":    styles.RuleID.Render,
		"subcommand": styles.Success.Render,
		"dim":        styles.Dim.Render,
		"rpad":       rpad,
		"trim":       trimTrailingWhitespaces,
		"flags": func(set interface{ FlagUsages() string }) string {
			return styleFlagUsages(set.FlagUsages(), styles)
		},
	}
}

func (h *HelpFormatter) render(cmd *cobra.Command, name, text string) error {
	tmpl, err := template.New(name).Funcs(h.funcs(h.styles(cmd))).Parse(text)
	if err != nil {
		return fmt.Errorf("parse %s template: %w", name, err)
	}
	if err := tmpl.Execute(cmd.OutOrStdout(), cmd); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

// ApplyToCommand installs the styled help and usage functions on cmd.
// Subcommands inherit them.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return h.render(c, "usage", usageTemplate)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := h.render(c, "help", helpTemplate); err != nil {
			c.PrintErrln(err)
		}
	})
}

// styleFlagUsages colors the flag names in pflag's usage block and dims the
// value type. Descriptions are left untouched.
func styleFlagUsages(usages string, styles *pretty.Styles) string {
	lines := strings.Split(strings.TrimRight(usages, "\n"), "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		flagPart, desc, ok := strings.Cut(trimmed, "   ")
		if !ok || !strings.HasPrefix(flagPart, "-") {
			continue
		}

		tokens := strings.Fields(flagPart)
		for j, token := range tokens {
			if strings.HasPrefix(token, "-") {
				name, comma := strings.CutSuffix(token, ",")
				tokens[j] = styles.RuleID.Render(name)
				if comma {
					tokens[j] += ","
				}
				continue
			}
			tokens[j] = styles.Dim.Render(token)
		}

		indent := line[:len(line)-len(trimmed)]
		lines[i] = indent + strings.Join(tokens, " ") + "   " + strings.TrimLeft(desc, " ")
	}
	return strings.Join(lines, "\n")
}

func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
