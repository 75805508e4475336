package theme

import "github.com/yacobolo/figvars/internal/model"

// Default is a fixed entry emitted ahead of a key's variable values
type Default struct {
	Key   string
	Value string
}

// TargetKey is a theme-framework key fed by a scope
type TargetKey struct {
	Name     string
	Extend   bool // Emitted under theme.extend instead of theme
	Defaults []Default
}

// FanOut maps one scope onto its theme keys
type FanOut struct {
	Scope model.Scope
	Alpha bool // Color values get the framework alpha-value slot
	Keys  []TargetKey
}

func keys(names ...string) []TargetKey {
	out := make([]TargetKey, len(names))
	for i, n := range names {
		out[i] = TargetKey{Name: n}
	}
	return out
}

func extend(names ...string) []TargetKey {
	out := keys(names...)
	for i := range out {
		out[i].Extend = true
	}
	return out
}

func concat(groups ...[]TargetKey) []TargetKey {
	var out []TargetKey
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// FanOutTable lists every scope with its theme keys. Output key order
// follows this table.
var FanOutTable = []FanOut{
	{Scope: model.ScopeAllColors, Alpha: true, Keys: keys("colors")},
	{Scope: model.ScopeFillColor, Alpha: true, Keys: concat(
		keys("backgroundColor", "gradientColorStops"),
		extend("fill", "accentColor"),
	)},
	{Scope: model.ScopeStrokeColor, Alpha: true, Keys: concat(
		keys("borderColor", "ringColor", "ringOffsetColor", "outlineColor"),
		extend("stroke"),
	)},
	{Scope: model.ScopeTextColor, Alpha: true, Keys: keys("textColor", "textDecorationColor", "caretColor", "placeholderColor")},
	{Scope: model.ScopeEffectColor, Alpha: true, Keys: keys("boxShadowColor")},
	{Scope: model.ScopeRadius, Keys: keys("borderRadius")},
	{Scope: model.ScopeSize, Keys: extend("size", "width", "minWidth", "maxWidth", "height", "minHeight", "maxHeight")},
	{Scope: model.ScopeGap, Keys: concat(
		keys("padding", "gap", "space", "scrollMargin", "scrollPadding", "borderSpacing"),
		extend("margin", "inset"),
	)},
	{Scope: model.ScopeStrokeWidth, Keys: []TargetKey{
		{Name: "strokeWidth"},
		{Name: "outlineWidth"},
		{Name: "borderWidth", Defaults: []Default{{Key: "DEFAULT", Value: "1px"}}},
		{Name: "ringWidth", Defaults: []Default{{Key: "DEFAULT", Value: "3px"}}},
	}},
	{Scope: model.ScopeAllNumbers, Keys: extend("spacing")},
	{Scope: model.ScopeFontFamily, Keys: keys("fontFamily")},
	{Scope: model.ScopeFontSize, Keys: keys("fontSize")},
	{Scope: model.ScopeLineHeight, Keys: keys("lineHeight")},
	{Scope: model.ScopeLetterSpacing, Keys: keys("letterSpacing")},
	{Scope: model.ScopeFontWeight, Keys: keys("fontWeight")},
}

// fannedOut reports whether any table entry consumes scope s
func fannedOut(s model.Scope) bool {
	for _, f := range FanOutTable {
		if f.Scope == s {
			return true
		}
	}
	return false
}
