package output

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/dshills/commitguard/internal/rules"
)

const informationURI = "https://github.com/dshills/commitguard"

// SARIF rule IDs, one per issue kind.
const (
	ruleSensitiveFile    = "CG001"
	ruleSensitivePattern = "CG002"
)

// SARIFWriter outputs issues in SARIF v2.1.0 format.
type SARIFWriter struct{}

func (s *SARIFWriter) Write(w io.Writer, report *Report) error {
	doc, err := buildSARIF(report)
	if err != nil {
		return err
	}
	if err := doc.PrettyWrite(w); err != nil {
		return fmt.Errorf("writing SARIF: %w", err)
	}
	return nil
}

func buildSARIF(report *Report) (*sarif.Report, error) {
	doc, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("creating sarif report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(report.Tool, informationURI)
	if report.Version != "" {
		v := report.Version
		run.Tool.Driver.Version = &v
	}

	added := make(map[string]bool)
	for _, is := range report.Issues {
		id := ruleID(is.Kind)
		if !added[id] {
			addRule(run, is.Kind)
			added[id] = true
		}

		loc := sarif.NewPhysicalLocation().
			WithArtifactLocation(sarif.NewSimpleArtifactLocation(is.Path))

		result := sarif.NewRuleResult(id).
			WithLevel("error").
			WithMessage(sarif.NewTextMessage(is.String())).
			WithLocations([]*sarif.Location{
				sarif.NewLocationWithPhysicalLocation(loc),
			})
		run.AddResult(result)
	}

	doc.AddRun(run)
	return doc, nil
}

func ruleID(k rules.Kind) string {
	if k == rules.KindFile {
		return ruleSensitiveFile
	}
	return ruleSensitivePattern
}

func addRule(run *sarif.Run, k rules.Kind) {
	name, desc := "SensitivePattern", "Staged diff content matches a secret pattern."
	if k == rules.KindFile {
		name, desc = "SensitiveFile", "Staged file name suggests it holds secrets."
	}
	run.AddRule(ruleID(k)).
		WithName(name).
		WithDescription(desc).
		WithDefaultConfiguration(&sarif.ReportingConfiguration{
			Level: "error",
		}).
		WithHelp(&sarif.MultiformatMessageString{
			Text: &desc,
		})
}
