// Package theme generates a Tailwind CSS config from the variable model.
//
// Variables are classified into scopes, each populated scope is fanned out
// onto its theme keys (see FanOutTable) and the result is rendered as
// JavaScript source. Scopes without variables produce no key at all.
package theme

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/yacobolo/figvars/internal/bundle"
	"github.com/yacobolo/figvars/internal/format"
	"github.com/yacobolo/figvars/internal/model"
)

// Values maps theme property names to values: a reference string,
// a [size, lineHeight] pair or a [size, FontOptions] pair
type Values = orderedmap.OrderedMap[string, any]

// Part is one scope contributing to a theme key
type Part struct {
	Scope model.Scope
	Alpha bool
}

// Entry is one emitted theme key
type Entry struct {
	Name     string
	Parts    []Part // In table order; later parts win on conflicts
	Defaults []Default
}

// Theme is the generated config before rendering
type Theme struct {
	Scopes *orderedmap.OrderedMap[string, *Values] // Scope -> values, table order
	Rules  *bundle.Bundle
	Keys   []Entry // Keys under theme
	Extend []Entry // Keys under theme.extend
}

// scopeData accumulates values per scope
type scopeData struct {
	byScope map[model.Scope]*Values
}

func (d *scopeData) set(s model.Scope, property string, value any) {
	values, ok := d.byScope[s]
	if !ok {
		values = orderedmap.New[string, any]()
		d.byScope[s] = values
	}
	values.Set(property, value)
}

// Build classifies every exportable variable and resolves the fan-out.
// set must use the Tailwind dialect and belong to this call only.
func Build(variables []model.Variable, set *format.Set) *Theme {
	data := &scopeData{byScope: make(map[model.Scope]*Values)}
	groups := newTypographyGroups()

	for i := range variables {
		v := &variables[i]
		if !bundle.Exportable(v.Type) {
			continue
		}

		property := set.PropertyName(v.Name)
		ref := set.VariableRef(model.Reference{TargetKey: v.Key})

		for _, scope := range v.Scopes {
			if !fannedOut(scope) {
				continue
			}
			if v.Type == model.TypeNumber && isTypography(scope) {
				groups.add(v.Collection.Name, property, scope, ref)
				continue
			}
			data.set(scope, property, ref)
		}
	}
	groups.emit(data)

	t := &Theme{
		Scopes: orderedmap.New[string, *Values](),
		Rules:  bundle.Build(variables, set),
	}
	for _, f := range FanOutTable {
		if values, ok := data.byScope[f.Scope]; ok {
			t.Scopes.Set(string(f.Scope), values)
		}
	}
	t.Keys, t.Extend = fanOut(data)

	return t
}

// fanOut maps populated scopes onto theme keys. Keys reached through more
// than one scope keep their first position and compose every part.
func fanOut(data *scopeData) (themeKeys, extendKeys []Entry) {
	type slot struct {
		extend bool
		pos    int
	}
	positions := make(map[string]slot)

	for _, f := range FanOutTable {
		if _, ok := data.byScope[f.Scope]; !ok {
			continue
		}
		for _, key := range f.Keys {
			part := Part{Scope: f.Scope, Alpha: f.Alpha}
			id := key.Name
			if key.Extend {
				id = "extend." + key.Name
			}

			if s, ok := positions[id]; ok {
				target := &themeKeys
				if s.extend {
					target = &extendKeys
				}
				entry := &(*target)[s.pos]
				entry.Parts = append(entry.Parts, part)
				entry.Defaults = append(entry.Defaults, key.Defaults...)
				continue
			}

			entry := Entry{Name: key.Name, Parts: []Part{part}, Defaults: key.Defaults}
			if key.Extend {
				positions[id] = slot{extend: true, pos: len(extendKeys)}
				extendKeys = append(extendKeys, entry)
			} else {
				positions[id] = slot{pos: len(themeKeys)}
				themeKeys = append(themeKeys, entry)
			}
		}
	}

	return themeKeys, extendKeys
}
