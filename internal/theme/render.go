package theme

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// sourceWriter writes indented source lines
type sourceWriter struct {
	sb     strings.Builder
	indent string
	depth  int
}

func (w *sourceWriter) line(text string) {
	if text != "" {
		w.sb.WriteString(strings.Repeat(w.indent, w.depth))
	}
	w.sb.WriteString(text)
	w.sb.WriteByte('\n')
}

func (w *sourceWriter) open(text string) {
	w.line(text)
	w.depth++
}

func (w *sourceWriter) close(text string) {
	w.depth--
	w.line(text)
}

// Source renders the theme as a Tailwind config module
func (t *Theme) Source(tabWidth int) (string, error) {
	indent := strings.Repeat(" ", tabWidth)

	scopes, err := json.MarshalIndent(t.Scopes, "", indent)
	if err != nil {
		return "", fmt.Errorf("encode scopes: %w", err)
	}
	rules, err := json.MarshalIndent(t.Rules, "", indent)
	if err != nil {
		return "", fmt.Errorf("encode rules: %w", err)
	}

	w := &sourceWriter{indent: indent}
	w.line(`const plugin = require("tailwindcss/plugin");`)
	w.line("")
	w.line("const scopes = " + string(scopes) + ";")
	w.line("")
	w.line("const rules = " + string(rules) + ";")
	w.line("")
	w.open("function withAlpha(values) {")
	w.open("return Object.fromEntries(")
	w.line("Object.entries(values).map(([key, value]) => [key, `rgb(${value} / <alpha-value>)`]),")
	w.close(");")
	w.close("}")
	w.line("")
	w.line(`/** @type {import("tailwindcss").Config} */`)
	w.open("module.exports = {")

	if len(t.Keys) == 0 && len(t.Extend) == 0 {
		w.line("theme: {},")
	} else {
		w.open("theme: {")
		for _, e := range t.Keys {
			w.line(e.Name + ": " + e.expression() + ",")
		}
		if len(t.Extend) > 0 {
			w.open("extend: {")
			for _, e := range t.Extend {
				w.line(e.Name + ": " + e.expression() + ",")
			}
			w.close("},")
		}
		w.close("},")
	}

	w.open("plugins: [")
	w.open("plugin(({ addBase }) => {")
	w.line("addBase(rules);")
	w.close("}),")
	w.close("],")
	w.close("};")

	return w.sb.String(), nil
}

// expression renders the value of a theme key. A single part without
// defaults is referenced directly, anything else is spread in order.
func (e Entry) expression() string {
	if len(e.Parts) == 1 && len(e.Defaults) == 0 {
		return e.Parts[0].expression()
	}

	items := make([]string, 0, len(e.Defaults)+len(e.Parts))
	for _, d := range e.Defaults {
		items = append(items, d.Key+": "+strconv.Quote(d.Value))
	}
	for _, p := range e.Parts {
		items = append(items, "..."+p.expression())
	}
	return "{ " + strings.Join(items, ", ") + " }"
}

func (p Part) expression() string {
	ref := "scopes[" + strconv.Quote(string(p.Scope)) + "]"
	if p.Alpha {
		return "withAlpha(" + ref + ")"
	}
	return ref
}
