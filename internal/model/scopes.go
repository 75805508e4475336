package model

// Scope is a normalized usage tag derived from provider-native scopes
type Scope string

// Color scopes
const (
	ScopeAllColors   Scope = "all-colors"
	ScopeFillColor   Scope = "fill-color"
	ScopeStrokeColor Scope = "stroke-color"
	ScopeTextColor   Scope = "text-color"
	ScopeEffectColor Scope = "effect-color"
)

// Number scopes
const (
	ScopeAllNumbers    Scope = "all-numbers"
	ScopeRadius        Scope = "radius"
	ScopeSize          Scope = "size"
	ScopeGap           Scope = "gap"
	ScopeStrokeWidth   Scope = "stroke-width"
	ScopeFontSize      Scope = "font-size"
	ScopeLineHeight    Scope = "line-height"
	ScopeLetterSpacing Scope = "letter-spacing"
	ScopeFontWeight    Scope = "font-weight"
)

// String scopes
const (
	ScopeAllStrings Scope = "all-strings"
	ScopeFontFamily Scope = "font-family"
)

// Boolean scopes
const (
	ScopeAllBooleans Scope = "all-booleans"
)

// NumberScopes lists every number scope in declaration order
var NumberScopes = []Scope{
	ScopeAllNumbers,
	ScopeRadius,
	ScopeSize,
	ScopeGap,
	ScopeStrokeWidth,
	ScopeFontSize,
	ScopeLineHeight,
	ScopeLetterSpacing,
	ScopeFontWeight,
}

// nativeAllScopes is the provider tag meaning "usable everywhere"
const nativeAllScopes = "ALL_SCOPES"

// scopeTables maps provider-native scope tags to semantic scopes per type
var scopeTables = map[VariableType]map[string][]Scope{
	TypeColor: {
		nativeAllScopes: {ScopeAllColors},
		"ALL_FILLS":     {ScopeFillColor, ScopeTextColor},
		"FRAME_FILL":    {ScopeFillColor},
		"SHAPE_FILL":    {ScopeFillColor},
		"TEXT_FILL":     {ScopeTextColor},
		"STROKE_COLOR":  {ScopeStrokeColor},
		"EFFECT_COLOR":  {ScopeEffectColor},
	},
	TypeNumber: {
		nativeAllScopes:  {ScopeAllNumbers},
		"CORNER_RADIUS":  {ScopeRadius},
		"WIDTH_HEIGHT":   {ScopeSize},
		"GAP":            {ScopeGap},
		"STROKE_FLOAT":   {ScopeStrokeWidth},
		"FONT_SIZE":      {ScopeFontSize},
		"LINE_HEIGHT":    {ScopeLineHeight},
		"LETTER_SPACING": {ScopeLetterSpacing},
		"FONT_WEIGHT":    {ScopeFontWeight},
	},
	TypeString: {
		nativeAllScopes: {ScopeAllStrings},
		"FONT_FAMILY":   {ScopeFontFamily},
	},
	TypeBoolean: {
		nativeAllScopes: {ScopeAllBooleans},
	},
}

// ClassifyScopes returns the deduplicated union of semantic scopes for the
// given native tags. Unknown tags contribute nothing.
func ClassifyScopes(t VariableType, native []string) []Scope {
	table := scopeTables[t]
	scopes := []Scope{}
	seen := make(map[Scope]bool)

	for _, tag := range native {
		for _, s := range table[tag] {
			if !seen[s] {
				seen[s] = true
				scopes = append(scopes, s)
			}
		}
	}

	return scopes
}
