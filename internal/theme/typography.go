package theme

import "github.com/yacobolo/figvars/internal/model"

// typographyRoles are the number scopes merged into composite font sizes,
// in the order their fallbacks are emitted
var typographyRoles = []model.Scope{
	model.ScopeFontSize,
	model.ScopeLineHeight,
	model.ScopeLetterSpacing,
	model.ScopeFontWeight,
}

func isTypography(s model.Scope) bool {
	for _, r := range typographyRoles {
		if r == s {
			return true
		}
	}
	return false
}

// FontOptions is the second element of a composite font size.
// Field order is the emitted key order.
type FontOptions struct {
	LineHeight    string `json:"lineHeight,omitempty"`
	LetterSpacing string `json:"letterSpacing,omitempty"`
	FontWeight    string `json:"fontWeight,omitempty"`
}

// typographyGroup collects the typography members sharing a property name
type typographyGroup struct {
	collection string
	property   string
	members    map[model.Scope]string // role -> formatted reference
}

type groupKey struct {
	collection string
	property   string
}

// typographyGroups groups members in first-seen order
type typographyGroups struct {
	order  []*typographyGroup
	byName map[groupKey]*typographyGroup
}

func newTypographyGroups() *typographyGroups {
	return &typographyGroups{byName: make(map[groupKey]*typographyGroup)}
}

func (g *typographyGroups) add(collection, property string, role model.Scope, ref string) {
	k := groupKey{collection: collection, property: property}
	group, ok := g.byName[k]
	if !ok {
		group = &typographyGroup{
			collection: collection,
			property:   property,
			members:    make(map[model.Scope]string),
		}
		g.byName[k] = group
		g.order = append(g.order, group)
	}
	group.members[role] = ref
}

// composite returns the fontSize value of a group holding a font-size member:
// the bare reference, a [size, lineHeight] pair, or [size, FontOptions]
func (tg *typographyGroup) composite() any {
	size := tg.members[model.ScopeFontSize]
	lineHeight, hasLineHeight := tg.members[model.ScopeLineHeight]
	letterSpacing, hasLetterSpacing := tg.members[model.ScopeLetterSpacing]
	fontWeight, hasFontWeight := tg.members[model.ScopeFontWeight]

	switch {
	case hasLetterSpacing || hasFontWeight:
		return []any{size, FontOptions{
			LineHeight:    lineHeight,
			LetterSpacing: letterSpacing,
			FontWeight:    fontWeight,
		}}
	case hasLineHeight:
		return []any{size, lineHeight}
	default:
		return size
	}
}

// emit writes the grouped entries into data. Groups with a font-size member
// become composite fontSize entries first; members of other groups fall
// back to their own scope unless a composite already took the name.
func (g *typographyGroups) emit(data *scopeData) {
	composed := make(map[string]bool)

	for _, group := range g.order {
		if _, ok := group.members[model.ScopeFontSize]; !ok {
			continue
		}
		data.set(model.ScopeFontSize, group.property, group.composite())
		composed[group.property] = true
	}

	for _, group := range g.order {
		if _, ok := group.members[model.ScopeFontSize]; ok {
			continue
		}
		if composed[group.property] {
			continue
		}
		for _, role := range typographyRoles[1:] {
			if ref, ok := group.members[role]; ok {
				data.set(role, group.property, ref)
			}
		}
	}
}
