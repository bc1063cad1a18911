// Package report writes check results for humans.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/andyballingall/cstylecheck/internal/check"
)

var _ check.Reporter = (*TextReporter)(nil)

// TextReporter implements check.Reporter for plain text output: one
// "<path>: <message>" line per violation.
type TextReporter struct {
	// Verbose also reports files that passed and ends the run with a summary.
	Verbose bool
}

func (tr *TextReporter) WriteFile(w io.Writer, r *check.FileResult) error {
	if r.Err != nil {
		_, err := fmt.Fprintf(w, "%s: %v\n", r.Path, r.Err)
		return err
	}

	for _, v := range r.Violations {
		if _, err := fmt.Fprintln(w, v.String()); err != nil {
			return err
		}
	}

	if tr.Verbose && r.Passed() {
		_, err := fmt.Fprintf(w, "%s: ok\n", r.Path)
		return err
	}
	return nil
}

func (tr *TextReporter) WriteSummary(w io.Writer, s *check.Summary) error {
	if !tr.Verbose {
		return nil
	}

	divider := strings.Repeat("-", 40)
	passed := s.Files - len(s.Failed)

	_, err := fmt.Fprintf(w, "%s\nChecked %d %s: %d passed, %d failed (%d %s)\n",
		divider,
		s.Files, plural(s.Files, "file", "files"),
		passed, len(s.Failed),
		s.Violations, plural(s.Violations, "violation", "violations"))
	return err
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
