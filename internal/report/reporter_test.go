package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/figvars/internal/csscheck"
)

func TestBuildCaretIndicator(t *testing.T) {
	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  --x: var(--gone);",
			column:     12,
			want:       "           ^",
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t--x: var(--gone);",
			column:     11,
			want:       "\t         ^",
		},
		{
			name:       "start of line",
			sourceLine: "var(--a)",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, buildCaretIndicator(tt.sourceLine, tt.column))
		})
	}
}

func issue(file string, line, col int, text string) csscheck.Issue {
	return csscheck.Issue{
		FromLinter:  csscheck.LinterName,
		Text:        text,
		Severity:    csscheck.SeverityError,
		SourceLines: []string{"  --x: var(--gone);"},
		Pos:         csscheck.IssuePos{Filename: file, Line: line, Column: col},
	}
}

func TestPrintIssues_SortedPlain(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf, printLinterName: true}

	r.PrintIssues([]csscheck.Issue{
		issue("b.css", 1, 1, "second file"),
		issue("a.css", 9, 3, "later line"),
		issue("a.css", 2, 12, "first"),
	})

	assert.Equal(t,
		"a.css:2:12: first (csscheck)\n"+
			"a.css:9:3: later line (csscheck)\n"+
			"b.css:1:1: second file (csscheck)\n",
		buf.String())
}

func TestPrintIssues_WithSourceLines(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf, printLines: true}

	r.PrintIssues([]csscheck.Issue{issue("a.css", 2, 12, "gone")})

	assert.Equal(t, "a.css:2:12: gone\n\t  --x: var(--gone);\n\t           ^\n", buf.String())
}

func TestPrintIssueSummary(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf}

	r.PrintIssueSummary(nil)
	assert.Equal(t, "0 issues.\n", buf.String())

	buf.Reset()
	r.PrintIssueSummary([]csscheck.Issue{issue("a.css", 1, 1, "x"), issue("a.css", 2, 1, "y")})
	assert.Equal(t, "\n2 issues:\n* csscheck: 2\n", buf.String())
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf}

	r.PrintSummary(Summary{
		InputFiles: 1,
		Variables:  12,
		Files: []OutputFile{
			{Format: "json", Path: "dist/variables.json", Bytes: 120},
			{Format: "css", Path: "dist/variables.css", Bytes: 64},
		},
		Warnings: []string{"1 input files skipped by .gitignore"},
	})

	assert.Equal(t,
		"wrote dist/variables.json (120 bytes)\n"+
			"wrote dist/variables.css (64 bytes)\n"+
			"warning: 1 input files skipped by .gitignore\n"+
			"12 variables from 1 file into 2 artifacts\n",
		buf.String())
}

func TestRenderStyle_NoColors(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleRed, "plain", false))
}

func TestNewReporter_ForcedColors(t *testing.T) {
	r := NewReporter(&bytes.Buffer{}, Options{UseColors: true})
	assert.True(t, r.UseColors())
}
