package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/stylefix/internal/ui/pretty"
	"github.com/yaklabco/stylefix/pkg/analysis"
	"github.com/yaklabco/stylefix/pkg/config"
	"github.com/yaklabco/stylefix/pkg/runner"
)

// TextReporter formats results as styled terminal output. Check runs list
// the first issues of each file followed by totals; fix runs print one
// status line per file followed by the fixed tally.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		fmt.Fprintln(r.bw, r.styles.Dim.Render("No files to check."))
		return 0, nil
	}

	if r.opts.Mode == config.ModeFix {
		r.reportFix(result)
	} else {
		r.reportCheck(result)
	}

	return result.Stats.DiagnosticsTotal, nil
}

// reportCheck writes issues grouped by file, capped per file.
func (r *TextReporter) reportCheck(result *runner.Result) {
	limit := r.opts.maxIssues()
	first := true

	for _, file := range result.Files {
		path := r.displayPath(file.Path)

		if file.Error != nil {
			r.separate(&first)
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Result == nil || file.Result.FileResult == nil {
			continue
		}
		diagnostics := file.Result.Diagnostics
		if len(diagnostics) == 0 {
			continue
		}

		r.separate(&first)
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(diagnostics)))
		for i := range diagnostics {
			if i == limit {
				fmt.Fprint(r.bw, r.styles.FormatMore(len(diagnostics)-limit))
				break
			}
			fmt.Fprint(r.bw, r.styles.FormatDiagnostic(&diagnostics[i], r.opts.RuleFormat))
		}
	}

	if r.opts.Quiet {
		if result.HasIssues() || result.HasErrors() {
			fmt.Fprint(r.bw, "\n"+r.styles.FormatSummaryOneLine(result.Stats))
		}
		return
	}
	fmt.Fprint(r.bw, r.styles.FormatCheckTotals(result.Stats))
}

// reportFix writes one status line per file and the fixed tally.
func (r *TextReporter) reportFix(result *runner.Result) {
	for _, file := range result.Files {
		if r.opts.Quiet && file.Error == nil && !file.Fixed() && (file.Result == nil || !file.Result.Skipped) {
			continue
		}
		fmt.Fprint(r.bw, r.styles.FormatFixStatus(r.displayPath(file.Path), file))
	}
	fmt.Fprint(r.bw, r.styles.FormatFixTotals(result.Stats, r.opts.DryRun))
}

// separate writes a blank line before every block but the first.
func (r *TextReporter) separate(first *bool) {
	if !*first {
		fmt.Fprintln(r.bw)
	}
	*first = false
}

func (r *TextReporter) displayPath(path string) string {
	return analysis.DisplayPath(path, r.opts.WorkingDir)
}
