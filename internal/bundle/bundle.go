// Package bundle groups resolved variable values into CSS rules keyed by
// mode selector.
package bundle

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/yacobolo/figvars/internal/format"
	"github.com/yacobolo/figvars/internal/model"
)

// Declarations maps custom property names to values in insertion order
type Declarations = orderedmap.OrderedMap[string, string]

// Bundle maps selectors to their declarations in insertion order
type Bundle struct {
	rules *orderedmap.OrderedMap[string, *Declarations]
}

// Exportable reports whether a variable type has a CSS representation
func Exportable(t model.VariableType) bool {
	switch t {
	case model.TypeColor, model.TypeNumber, model.TypeString:
		return true
	}
	return false
}

// Build computes one declaration per exportable variable and collection
// mode. Selectors come from the formatter set, so root-selector claims
// follow the set's lifetime.
func Build(variables []model.Variable, set *format.Set) *Bundle {
	b := &Bundle{rules: orderedmap.New[string, *Declarations]()}

	for i := range variables {
		v := &variables[i]
		if !Exportable(v.Type) {
			continue
		}

		property := format.CustomProperty(v.Key)
		for _, mode := range v.Collection.Modes {
			value, ok := v.ValueForMode(mode)
			if !ok {
				continue
			}
			selector := set.ModeSelector(v.Collection, mode)
			b.add(selector, property, set.Value(value, v))
		}
	}

	return b
}

// add stores a declaration unless the selector already declares property
func (b *Bundle) add(selector, property, value string) {
	decls, ok := b.rules.Get(selector)
	if !ok {
		decls = orderedmap.New[string, string]()
		b.rules.Set(selector, decls)
	}
	if _, exists := decls.Get(property); !exists {
		decls.Set(property, value)
	}
}

// Len returns the number of selectors
func (b *Bundle) Len() int {
	return b.rules.Len()
}

// Selectors returns the selectors in insertion order
func (b *Bundle) Selectors() []string {
	out := make([]string, 0, b.rules.Len())
	for pair := b.rules.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Declarations returns the declarations of selector
func (b *Bundle) Declarations(selector string) (*Declarations, bool) {
	return b.rules.Get(selector)
}

// Value returns the value declared for property under selector
func (b *Bundle) Value(selector, property string) (string, bool) {
	decls, ok := b.rules.Get(selector)
	if !ok {
		return "", false
	}
	return decls.Get(property)
}

// MarshalJSON encodes the bundle as nested objects, preserving order
func (b *Bundle) MarshalJSON() ([]byte, error) {
	return b.rules.MarshalJSON()
}

// CSS renders the bundle as a stylesheet indented by tabWidth spaces
func (b *Bundle) CSS(tabWidth int) string {
	indent := strings.Repeat(" ", tabWidth)
	var sb strings.Builder

	for pair := b.rules.Oldest(); pair != nil; pair = pair.Next() {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(pair.Key)
		sb.WriteString(" {\n")
		for decl := pair.Value.Oldest(); decl != nil; decl = decl.Next() {
			sb.WriteString(indent)
			sb.WriteString(decl.Key)
			sb.WriteString(": ")
			sb.WriteString(decl.Value)
			sb.WriteString(";\n")
		}
		sb.WriteString("}\n")
	}

	return sb.String()
}
