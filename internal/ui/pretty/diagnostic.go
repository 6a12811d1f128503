package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/stylefix/pkg/config"
	"github.com/yaklabco/stylefix/pkg/lint"
)

// DividerWidth is the width of the rule line closing a report.
const DividerWidth = 60

// FormatDiagnostic formats a single diagnostic as "  Line N: RULE - message".
func (s *Styles) FormatDiagnostic(diag *lint.Diagnostic, ruleFormat config.RuleFormat) string {
	rule := config.FormatRuleID(ruleFormat, diag.RuleID, diag.RuleName)
	return fmt.Sprintf("  %s %s - %s\n",
		s.Location.Render(fmt.Sprintf("Line %d:", diag.StartLine)),
		s.severityStyle(diag.Severity).Render(rule),
		s.Message.Render(diag.Message),
	)
}

// severityStyle picks the rule identifier style for a severity.
func (s *Styles) severityStyle(sev config.Severity) lipgloss.Style {
	switch sev {
	case config.SeverityError:
		return s.Error
	case config.SeverityInfo:
		return s.Info
	default:
		return s.RuleID
	}
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatFileHeader formats the header preceding a file's issues.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	return s.FilePath.Render(path) + s.Dim.Render(fmt.Sprintf(" (%s):", Plural(issueCount, "issue", "issues")))
}

// FormatMore formats the line standing in for issues past the per-file limit.
func (s *Styles) FormatMore(hidden int) string {
	return s.Dim.Render(fmt.Sprintf("  ... and %d more", hidden)) + "\n"
}

// Divider returns the rule line separating details from totals.
func (s *Styles) Divider() string {
	return s.Dim.Render(strings.Repeat("=", DividerWidth))
}

// Plural formats n with the singular or plural noun.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
