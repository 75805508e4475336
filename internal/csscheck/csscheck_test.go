package csscheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name           string
		css            string
		wantDeclared   []string
		wantReferenced []string
		wantUndeclared []string
	}{
		{
			name:           "all declared",
			css:            ":root, .color-light {\n  --a: #fff;\n  --b: var(--a);\n}\n",
			wantDeclared:   []string{"--a", "--b"},
			wantReferenced: []string{"--a"},
		},
		{
			name:           "undeclared reference",
			css:            ".x {\n  --b: var(--missing, 4px);\n}\n",
			wantDeclared:   []string{"--b"},
			wantReferenced: []string{"--missing"},
			wantUndeclared: []string{"--missing"},
		},
		{
			name:           "declaration after use",
			css:            ".a { --x: var(--y); }\n.b { --y: 1px; }\n",
			wantDeclared:   []string{"--x", "--y"},
			wantReferenced: []string{"--y"},
		},
		{
			name:           "nested fallback",
			css:            ".a { --x: var(--y, var(--z)); }",
			wantDeclared:   []string{"--x"},
			wantReferenced: []string{"--y", "--z"},
			wantUndeclared: []string{"--y", "--z"},
		},
		{
			name:           "comments and case",
			css:            "/* --ghost: 1px */ .a { --x: VAR(--x); }",
			wantDeclared:   []string{"--x"},
			wantReferenced: []string{"--x"},
		},
		{
			name: "empty",
			css:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Check(tt.css)
			assert.Equal(t, tt.wantDeclared, report.Declared)
			assert.Equal(t, tt.wantReferenced, report.Referenced)
			assert.Equal(t, tt.wantUndeclared, report.Undeclared)
			assert.Equal(t, len(tt.wantUndeclared) == 0, report.OK())
		})
	}
}

func TestReport_Issues(t *testing.T) {
	css := ".a {\n  --x: var(--gone);\n}\n"
	report := Check(css)
	require.False(t, report.OK())

	pos, ok := report.FirstReference("--gone")
	require.True(t, ok)
	assert.Equal(t, Position{Line: 2, Column: 12}, pos)

	issues := report.Issues("dist/variables.css", css)
	require.Len(t, issues, 1)
	assert.Equal(t, Issue{
		FromLinter:  LinterName,
		Text:        "custom property --gone is referenced but never declared",
		Severity:    SeverityError,
		SourceLines: []string{"  --x: var(--gone);"},
		Pos:         IssuePos{Filename: "dist/variables.css", Line: 2, Column: 12},
	}, issues[0])

	assert.Nil(t, Check(".a { --x: 1; }").Issues("ok.css", ".a { --x: 1; }"))
}
