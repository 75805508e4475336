// Package csscheck verifies that a generated stylesheet only references
// custom properties it declares.
package csscheck

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Report is the result of checking one stylesheet
type Report struct {
	Declared   []string // Custom properties declared, first-seen order
	Referenced []string // Custom properties referenced through var()
	Undeclared []string // Referenced but never declared, first-seen order

	first map[string]Position // First var() reference of each name
}

// Position is a 1-based location in a stylesheet
type Position struct {
	Line   int
	Column int
}

// FirstReference returns where name is first referenced through var()
func (r Report) FirstReference(name string) (Position, bool) {
	pos, ok := r.first[name]
	return pos, ok
}

// OK reports whether every reference resolves
func (r Report) OK() bool {
	return len(r.Undeclared) == 0
}

// Check lexes css and cross-checks declarations against var() references.
// Custom property names arrive as identifiers starting with "--".
func Check(content string) Report {
	lexer := css.NewLexer(parse.NewInputString(content))

	var (
		report   = Report{first: make(map[string]Position)}
		pos      = Position{Line: 1, Column: 1}
		declared = make(map[string]bool)
		refSeen  = make(map[string]bool)
		prev     css.TokenType
		prevText string
		pending  string // Custom property ident waiting for a colon
	)

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		at := pos
		pos = advance(pos, text)
		if tt == css.WhitespaceToken || tt == css.CommentToken {
			continue
		}

		if pending != "" && tt == css.ColonToken && !declared[pending] {
			declared[pending] = true
			report.Declared = append(report.Declared, pending)
		}
		pending = ""

		if (tt == css.CustomPropertyNameToken || tt == css.IdentToken) && strings.HasPrefix(string(text), "--") {
			name := string(text)
			if prev == css.FunctionToken && strings.EqualFold(prevText, "var(") {
				if !refSeen[name] {
					refSeen[name] = true
					report.Referenced = append(report.Referenced, name)
					report.first[name] = at
				}
			} else {
				pending = name
			}
		}

		prev = tt
		prevText = string(text)
	}

	for _, name := range report.Referenced {
		if !declared[name] {
			report.Undeclared = append(report.Undeclared, name)
		}
	}

	return report
}

func advance(pos Position, text []byte) Position {
	for _, r := range string(text) {
		if r == '\n' {
			pos.Line++
			pos.Column = 1
			continue
		}
		pos.Column++
	}
	return pos
}
