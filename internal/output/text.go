package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/dshills/commitguard/internal/rules"
)

// TextWriter outputs a human-readable text report.
type TextWriter struct {
	Color bool
}

func (t *TextWriter) Write(w io.Writer, report *Report) error {
	ew := &errWriter{w: w}

	bad := color.New(color.FgRed, color.Bold)
	good := color.New(color.FgGreen)
	faint := color.New(color.Faint)
	if t.Color {
		bad.EnableColor()
		good.EnableColor()
		faint.EnableColor()
	} else {
		bad.DisableColor()
		good.DisableColor()
		faint.DisableColor()
	}

	ew.printf("Commitguard — staged changes\n")
	if report.Root != "" {
		ew.printf("Repository: %s\n", report.Root)
	}
	ew.println(strings.Repeat("─", 60))
	ew.printf("Files: %d staged", len(report.Files))
	if len(report.Skipped) > 0 {
		ew.printf(" (%d skipped)", len(report.Skipped))
	}
	ew.printf(" | Issues: %d\n", len(report.Issues))
	ew.println(strings.Repeat("─", 60))

	if len(report.Issues) == 0 {
		ew.printf("\n%s\n", good.Sprint("No sensitive files or patterns found."))
		return ew.err
	}

	for _, path := range issuePaths(report.Issues) {
		ew.printf("\n  %s\n", path)
		for _, is := range report.Issues {
			if is.Path != path {
				continue
			}
			ew.printf("    %s %s\n", bad.Sprint("[!!]"), describe(is))
		}
	}

	for _, path := range report.Skipped {
		ew.printf("\n  %s\n", faint.Sprintf("%s (skipped)", path))
	}

	ew.printf("\n%s\n", strings.Repeat("─", 60))
	ew.printf("%s\n", bad.Sprint("Commit blocked: fix the issues above before committing."))

	return ew.err
}

// issuePaths returns the distinct issue paths in detection order.
func issuePaths(issues []rules.Issue) []string {
	var paths []string
	seen := make(map[string]bool)
	for _, is := range issues {
		if !seen[is.Path] {
			seen[is.Path] = true
			paths = append(paths, is.Path)
		}
	}
	return paths
}

func describe(is rules.Issue) string {
	if is.Kind == rules.KindFile {
		return fmt.Sprintf("sensitive file name (matches %q)", is.Rule)
	}
	return fmt.Sprintf("sensitive pattern %s", is.Rule)
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
