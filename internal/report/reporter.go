// Package report prints CLI results: check issues in golangci-lint style and
// a summary of generated files.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/yacobolo/figvars/internal/csscheck"
)

// Options configures a Reporter
type Options struct {
	UseColors       bool // Force colors on
	PrintLines      bool // Print the offending source line with a caret
	PrintLinterName bool
}

// Reporter formats results for a terminal
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// OutputFile describes one written artifact
type OutputFile struct {
	Format string
	Path   string
	Bytes  int
}

// Summary describes a finished export
type Summary struct {
	InputFiles int
	Variables  int
	Files      []OutputFile
	Warnings   []string
	Issues     []csscheck.Issue
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(opts.UseColors),
		printLines:      opts.PrintLines,
		printLinterName: opts.PrintLinterName,
	}
}

func shouldUseColors(forced bool) bool {
	if forced {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintIssues prints issues sorted by file, line and column
func (r *Reporter) PrintIssues(issues []csscheck.Issue) {
	sorted := make([]csscheck.Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Pos.Filename != sorted[j].Pos.Filename {
			return sorted[i].Pos.Filename < sorted[j].Pos.Filename
		}
		if sorted[i].Pos.Line != sorted[j].Pos.Line {
			return sorted[i].Pos.Line < sorted[j].Pos.Line
		}
		return sorted[i].Pos.Column < sorted[j].Pos.Column
	})

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue formats one issue as file:line:col: message (linter)
func (r *Reporter) printIssue(issue csscheck.Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator aligns "^" under column, keeping the tabs of the prefix
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintIssueSummary prints the issue count and the per-linter breakdown
func (r *Reporter) PrintIssueSummary(issues []csscheck.Issue) {
	if len(issues) == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "0 issues.", r.useColors))
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "%s:\n", pluralizeCount(len(issues), "issue", "issues"))

	linterCounts := make(map[string]int)
	for _, issue := range issues {
		linterCounts[issue.FromLinter]++
	}
	linters := make([]string, 0, len(linterCounts))
	for linter := range linterCounts {
		linters = append(linters, linter)
	}
	sort.Strings(linters)
	for _, linter := range linters {
		fmt.Fprintf(r.w, "* %s: %d\n", linter, linterCounts[linter])
	}
}

// PrintSummary prints the result of an export
func (r *Reporter) PrintSummary(s Summary) {
	for _, f := range s.Files {
		size := fmt.Sprintf("(%d bytes)", f.Bytes)
		fmt.Fprintf(r.w, "%s %s %s\n",
			RenderStyle(StyleGreen, "wrote", r.useColors),
			f.Path,
			RenderStyle(StyleGray, size, r.useColors))
	}

	for _, w := range s.Warnings {
		fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleYellow, "warning:", r.useColors), w)
	}

	if len(s.Issues) > 0 {
		r.PrintIssues(s.Issues)
		r.PrintIssueSummary(s.Issues)
		return
	}

	fmt.Fprintf(r.w, "%s from %s into %s\n",
		pluralizeCount(s.Variables, "variable", "variables"),
		pluralizeCount(s.InputFiles, "file", "files"),
		pluralizeCount(len(s.Files), "artifact", "artifacts"))
}

func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
