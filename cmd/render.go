package cmd

import (
	"fmt"
	"io"

	"textcat/pkg/concat"
	"textcat/pkg/listfile"

	"github.com/fatih/color"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
)

// renderResult prints a run summary. Per-file failures are warnings,
// not errors: the run still completed.
func renderResult(w io.Writer, result *concat.ConcatenationResult, output string) {
	okColor.Fprintf(w, "Wrote %d file(s) to %s\n", len(result.Succeeded), output)
	if result.OK() {
		return
	}
	warnColor.Fprintf(w, "Skipped %d unreadable file(s):\n", len(result.Failed))
	for _, f := range result.Failed {
		warnColor.Fprintf(w, "  - %s: %s\n", f.Entry.Name, f.Reason)
	}
}

// renderReport prints the list-file import summary in the shape the
// original tool used for its import dialog.
func renderReport(w io.Writer, report *listfile.ImportReport) {
	fmt.Fprintf(w, "Added: %d\n", len(report.Added))
	if report.Skipped() == 0 {
		return
	}
	warnColor.Fprintf(w, "Already present: %d\n", len(report.Duplicate))
	warnColor.Fprintf(w, "Not found: %d\n", len(report.Missing))
	warnColor.Fprintf(w, "Skipped (not allowed type): %d\n", len(report.NotAllowed))
	for _, p := range report.Missing {
		warnColor.Fprintf(w, "  not found: %s\n", p)
	}
	for _, p := range report.NotAllowed {
		warnColor.Fprintf(w, "  not allowed: %s\n", p)
	}
	for _, m := range report.Malformed {
		warnColor.Fprintf(w, "  line %d malformed: %s (%s)\n", m.LineNo, m.Text, m.Reason)
	}
}
