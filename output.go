package figvars

import (
	"io"

	"github.com/yacobolo/figvars/internal/report"
)

// OutputFormat selects how results are printed
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat maps the --output-format flag to a format.
// Unknown values fall back to text.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	default:
		return OutputText
	}
}

// WriteOutput prints an export result
func WriteOutput(w io.Writer, result *GenerateResult, format OutputFormat, opts report.Options) error {
	if format == OutputJSON {
		return WriteJSON(w, result)
	}

	summary := report.Summary{
		InputFiles: result.FilesScanned,
		Variables:  result.VariablesExported,
		Warnings:   result.Warnings,
		Issues:     result.Issues,
	}
	for _, o := range result.Outputs {
		summary.Files = append(summary.Files, report.OutputFile{Format: string(o.Format), Path: o.Path, Bytes: o.Bytes})
	}
	report.NewReporter(w, opts).PrintSummary(summary)
	return nil
}
