package csscheck

import (
	"fmt"
	"strings"
)

// LinterName identifies issues produced by this package
const LinterName = "csscheck"

// IssueUndeclared is the message of an unresolved var() reference
const IssueUndeclared = "custom property %s is referenced but never declared"

// Severity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue is a single finding in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`
	Text        string   `json:"Text"`
	Severity    string   `json:"Severity"`
	SourceLines []string `json:"SourceLines"`
	Pos         IssuePos `json:"Pos"`
}

// IssuePos is the location of an issue
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based, start of the custom property name
}

// Issues converts the undeclared references of r into issues for filename.
// content must be the stylesheet r was computed from.
func (r Report) Issues(filename, content string) []Issue {
	if r.OK() {
		return nil
	}

	lines := strings.Split(content, "\n")
	issues := make([]Issue, 0, len(r.Undeclared))
	for _, name := range r.Undeclared {
		pos, _ := r.FirstReference(name)
		issue := Issue{
			FromLinter: LinterName,
			Text:       fmt.Sprintf(IssueUndeclared, name),
			Severity:   SeverityError,
			Pos:        IssuePos{Filename: filename, Line: pos.Line, Column: pos.Column},
		}
		if pos.Line > 0 && pos.Line <= len(lines) {
			issue.SourceLines = []string{lines[pos.Line-1]}
		}
		issues = append(issues, issue)
	}
	return issues
}
