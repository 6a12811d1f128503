package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/stylefix/pkg/runner"
)

// Status markers for per-file and final lines.
const (
	markOK      = "✓"
	markFail    = "✗"
	markNone    = "-"
	markPending = "~"
	markSkip    = "!"
)

// FormatCheckTotals formats the closing block of a check run:
// a divider, the issue total and a pass or fail verdict.
func (s *Styles) FormatCheckTotals(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n" + s.Divider() + "\n")
	fmt.Fprintf(&builder, "Total: %s across %s\n",
		Plural(stats.DiagnosticsTotal, "issue", "issues"),
		Plural(stats.FilesDiscovered, "file", "files"),
	)

	switch {
	case stats.FilesErrored > 0 && stats.DiagnosticsTotal == 0:
		builder.WriteString(s.Failure.Render(fmt.Sprintf("%s %s could not be checked",
			markFail, Plural(stats.FilesErrored, "file", "files"))))
	case stats.DiagnosticsTotal == 0:
		builder.WriteString(s.Success.Render(markOK + " No issues found!"))
	default:
		builder.WriteString(s.Failure.Render(fmt.Sprintf("%s Found %s",
			markFail, Plural(stats.DiagnosticsTotal, "issue", "issues"))))
	}
	builder.WriteString("\n")

	return builder.String()
}

// FormatFixStatus formats the one-line outcome of fixing a file.
func (s *Styles) FormatFixStatus(path string, outcome runner.FileOutcome) string {
	res := outcome.Result
	switch {
	case outcome.Error != nil:
		return s.Failure.Render(markFail) + " " + s.FilePath.Render(path) + ": " + s.Error.Render(outcome.Error.Error()) + "\n"
	case res == nil:
		return ""
	case res.Skipped:
		return s.Skipped.Render(markSkip+" Skipped") + " " + s.FilePath.Render(path) + ": " + res.SkipReason + "\n"
	case res.Written && res.BackupPath != "":
		return s.Success.Render(markOK+" Fixed") + " " + s.FilePath.Render(path) +
			s.Dim.Render(" (backup: "+res.BackupPath+")") + "\n"
	case res.Written:
		return s.Success.Render(markOK+" Fixed") + " " + s.FilePath.Render(path) + "\n"
	case outcome.Fixed():
		return s.Warning.Render(markPending+" Would fix") + " " + s.FilePath.Render(path) + "\n"
	default:
		return s.Dim.Render(markNone+" No changes needed") + " " + path + "\n"
	}
}

// FormatFixTotals formats the closing block of a fix run. dryRun switches
// the wording to describe pending rather than written changes.
func (s *Styles) FormatFixTotals(stats runner.Stats, dryRun bool) string {
	var builder strings.Builder

	verb := "Fixed"
	if dryRun {
		verb = "Would fix"
	}

	divider := s.Divider()
	builder.WriteString("\n" + divider + "\n")
	fmt.Fprintf(&builder, "%s %d of %s\n", verb, stats.FilesModified, Plural(stats.FilesDiscovered, "file", "files"))
	builder.WriteString(divider + "\n")

	if stats.DiagnosticsTotal > 0 {
		builder.WriteString(s.Warning.Render(fmt.Sprintf("%s left for manual review",
			Plural(stats.DiagnosticsTotal, "issue", "issues"))) + "\n")
	}
	if stats.FilesErrored > 0 {
		builder.WriteString(s.Failure.Render(fmt.Sprintf("%s %s failed",
			markFail, Plural(stats.FilesErrored, "file", "files"))) + "\n")
	}

	return builder.String()
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 issues (8 errors, 4 warnings) in 3 files, 6 fixable".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.DiagnosticsTotal == 0 {
		msg := s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%s checked)", Plural(stats.FilesProcessed, "file", "files")))
		if stats.FilesModified > 0 {
			msg += ", " + s.Success.Render(fmt.Sprintf("%d fixed", stats.FilesModified))
		}
		return msg + "\n"
	}

	var severityParts []string
	if errors := stats.DiagnosticsBySeverity["error"]; errors > 0 {
		severityParts = append(severityParts, s.Error.Render(Plural(errors, "error", "errors")))
	}
	if warnings := stats.DiagnosticsBySeverity["warning"]; warnings > 0 {
		severityParts = append(severityParts, s.Warning.Render(Plural(warnings, "warning", "warnings")))
	}
	if infos := stats.DiagnosticsBySeverity["info"]; infos > 0 {
		severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", infos)))
	}

	head := Plural(stats.DiagnosticsTotal, "issue", "issues")
	if len(severityParts) > 0 {
		head += " (" + strings.Join(severityParts, ", ") + ")"
	}
	parts := []string{head + " in " + Plural(stats.FilesWithIssues, "file", "files")}

	if stats.DiagnosticsFixable > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d fixable", stats.DiagnosticsFixable)))
	}
	if stats.FilesModified > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d fixed", stats.FilesModified)))
	}

	return strings.Join(parts, ", ") + "\n"
}
