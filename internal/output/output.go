package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/commitguard/internal/guard"
	"github.com/dshills/commitguard/internal/rules"
)

// Report is a staged-scan result with tool metadata.
type Report struct {
	Tool    string        `json:"tool"`
	Version string        `json:"version"`
	Root    string        `json:"root,omitempty"`
	Files   []string      `json:"files"`
	Skipped []string      `json:"skipped,omitempty"`
	Issues  []rules.Issue `json:"issues"`
}

// NewReport wraps a scan result.
func NewReport(version, root string, res guard.Result) *Report {
	files := res.Files
	if files == nil {
		files = []string{}
	}
	issues := res.Issues
	if issues == nil {
		issues = []rules.Issue{}
	}
	return &Report{
		Tool:    "commitguard",
		Version: version,
		Root:    root,
		Files:   files,
		Skipped: res.Skipped,
		Issues:  issues,
	}
}

// Writer writes a report in a specific format.
type Writer interface {
	Write(w io.Writer, report *Report) error
}

// GetWriter returns a writer for the specified format. color only affects
// the text format.
func GetWriter(format string, color bool) (Writer, error) {
	switch format {
	case "text", "":
		return &TextWriter{Color: color}, nil
	case "json":
		return &JSONWriter{}, nil
	case "sarif":
		return &SARIFWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteReport writes the report to the specified output (file path or stdout).
// Color is never used when writing to a file.
func WriteReport(report *Report, format, outPath string, color bool) error {
	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
		color = false
	} else {
		w = os.Stdout
	}

	writer, err := GetWriter(format, color)
	if err != nil {
		return err
	}
	return writer.Write(w, report)
}
