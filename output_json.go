package figvars

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the machine-readable summary of an export
type JSONOutput struct {
	Version   string         `json:"version"`
	Timestamp string         `json:"timestamp"`
	Summary   JSONSummary    `json:"summary"`
	Artifacts []JSONArtifact `json:"artifacts"`
	Warnings  []string       `json:"warnings"`
	Issues    []JSONIssue    `json:"issues"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	FilesScanned      int `json:"files_scanned"`
	FilesSkipped      int `json:"files_skipped"`
	VariablesExported int `json:"variables_exported"`
	TotalIssues       int `json:"total_issues"`
}

// JSONArtifact is one written file
type JSONArtifact struct {
	Format string `json:"format"`
	Path   string `json:"path"`
	Bytes  int    `json:"bytes"`
}

// JSONIssue is one check issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// WriteJSON writes the result as indented JSON
func WriteJSON(w io.Writer, result *GenerateResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result))
}

func buildJSONOutput(result *GenerateResult) JSONOutput {
	artifacts := make([]JSONArtifact, len(result.Outputs))
	for i, o := range result.Outputs {
		artifacts[i] = JSONArtifact{Format: string(o.Format), Path: o.Path, Bytes: o.Bytes}
	}

	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	warnings := result.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			FilesScanned:      result.FilesScanned,
			FilesSkipped:      result.FilesSkipped,
			VariablesExported: result.VariablesExported,
			TotalIssues:       len(result.Issues),
		},
		Artifacts: artifacts,
		Warnings:  warnings,
		Issues:    issues,
	}
}
