package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyScopes(t *testing.T) {
	tests := []struct {
		name   string
		typ    VariableType
		native []string
		want   []Scope
	}{
		{"color all", TypeColor, []string{"ALL_SCOPES"}, []Scope{ScopeAllColors}},
		{"fills expand", TypeColor, []string{"ALL_FILLS"}, []Scope{ScopeFillColor, ScopeTextColor}},
		{"deduplicated", TypeColor, []string{"FRAME_FILL", "SHAPE_FILL", "TEXT_FILL", "ALL_FILLS"}, []Scope{ScopeFillColor, ScopeTextColor}},
		{"stroke and effect", TypeColor, []string{"STROKE_COLOR", "EFFECT_COLOR"}, []Scope{ScopeStrokeColor, ScopeEffectColor}},
		{"number tags", TypeNumber, []string{"CORNER_RADIUS", "GAP", "WIDTH_HEIGHT"}, []Scope{ScopeRadius, ScopeGap, ScopeSize}},
		{"typography", TypeNumber, []string{"FONT_SIZE", "LINE_HEIGHT", "LETTER_SPACING", "FONT_WEIGHT"}, []Scope{ScopeFontSize, ScopeLineHeight, ScopeLetterSpacing, ScopeFontWeight}},
		{"stroke width", TypeNumber, []string{"STROKE_FLOAT"}, []Scope{ScopeStrokeWidth}},
		{"number all", TypeNumber, []string{"ALL_SCOPES"}, []Scope{ScopeAllNumbers}},
		{"font family", TypeString, []string{"FONT_FAMILY"}, []Scope{ScopeFontFamily}},
		{"string all", TypeString, []string{"ALL_SCOPES"}, []Scope{ScopeAllStrings}},
		{"boolean all", TypeBoolean, []string{"ALL_SCOPES"}, []Scope{ScopeAllBooleans}},
		{"tag of another type", TypeString, []string{"CORNER_RADIUS"}, []Scope{}},
		{"unknown tag", TypeNumber, []string{"OPACITY"}, []Scope{}},
		{"no tags", TypeColor, nil, []Scope{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyScopes(tt.typ, tt.native))
		})
	}
}

func TestVariableHelpers(t *testing.T) {
	v := Variable{
		Scopes: []Scope{ScopeRadius},
		ValuesByMode: []ModeEntry{
			{Mode: "light", Value: NumberValue{Number: 1}},
			{Mode: "dark", Value: Reference{TargetKey: "x"}},
		},
	}

	got, ok := v.ValueForMode("dark")
	assert.True(t, ok)
	assert.Equal(t, Reference{TargetKey: "x"}, got)

	_, ok = v.ValueForMode("dim")
	assert.False(t, ok)

	assert.True(t, v.HasScope(ScopeRadius))
	assert.False(t, v.HasScope(ScopeGap))
}
