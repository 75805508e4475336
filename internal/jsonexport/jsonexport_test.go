package jsonexport

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/figvars/internal/model"
)

func fixture() []model.Variable {
	primitives := model.Collection{Name: "Primitives", Modes: []string{"default"}, DefaultMode: "default"}
	theme := model.Collection{Name: "Theme", Modes: []string{"light", "dark"}, DefaultMode: "light"}
	blue := model.ColorValue{Hex: "#0000ff", RGBA: [4]float64{0, 0, 255, 1}}

	return []model.Variable{
		{
			Key: "Primitives/blue", Name: "blue", Type: model.TypeColor, Collection: primitives,
			Scopes:       []model.Scope{model.ScopeAllColors},
			ValuesByMode: []model.ModeEntry{{Mode: "default", Value: blue}},
			DefaultValue: blue,
		},
		{
			Key: "Theme/accent", Name: "accent", Type: model.TypeColor, Collection: theme,
			Description: "Links and focus rings",
			ValuesByMode: []model.ModeEntry{
				{Mode: "light", Value: model.Reference{TargetKey: "Primitives/blue"}},
				{Mode: "dark", Value: model.ColorValue{Hex: "#ffffff", RGBA: [4]float64{255, 255, 255, 1}}},
			},
			DefaultValue: blue,
		},
		{
			Key: "Primitives/enabled", Name: "enabled", Type: model.TypeBoolean, Collection: primitives,
			ValuesByMode: []model.ModeEntry{{Mode: "default", Value: model.BooleanValue{Bool: true}}},
			DefaultValue: model.BooleanValue{Bool: true},
		},
		{
			Key: "Primitives/gap", Name: "gap", Type: model.TypeNumber, Collection: primitives,
			Scopes:       []model.Scope{model.ScopeGap},
			ValuesByMode: []model.ModeEntry{{Mode: "default", Value: model.NumberValue{Number: 8}}},
			DefaultValue: model.NumberValue{Number: 8},
		},
	}
}

func TestExport_Document(t *testing.T) {
	out, err := Export(fixture(), 2)
	require.NoError(t, err)

	var doc map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc, 4)

	accent := doc["Theme/accent"]
	assert.Equal(t, "Theme/accent", accent["key"])
	assert.Equal(t, "accent", accent["name"])
	assert.Equal(t, "color", accent["type"])
	assert.Equal(t, "Theme", accent["collection"])
	assert.Equal(t, []any{}, accent["scopes"])

	modes := accent["valuesByMode"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "alias", "value": map[string]any{"key": "Primitives/blue"}}, modes["light"])
	assert.Equal(t, map[string]any{
		"type":  "color",
		"value": map[string]any{"hex": "#ffffff", "rgba": []any{255.0, 255.0, 255.0, 1.0}},
	}, modes["dark"])

	// The default is resolved even though the mode value is not
	assert.Equal(t, "#0000ff", accent["defaultValue"].(map[string]any)["value"].(map[string]any)["hex"])

	assert.Equal(t, map[string]any{"type": "boolean", "value": true}, doc["Primitives/enabled"]["defaultValue"])
	assert.Equal(t, map[string]any{"type": "number", "value": 8.0}, doc["Primitives/gap"]["defaultValue"])
}

func TestExport_RoundTrip(t *testing.T) {
	out, err := Export(fixture(), 2)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	again, err := json.Marshal(parsed)
	require.NoError(t, err)

	assert.JSONEq(t, out, string(again))
}

func TestExport_Formatting(t *testing.T) {
	out, err := Export(fixture(), 4)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "{\n    \"Primitives/blue\": {\n        \"key\": \"Primitives/blue\","), out)
	assert.Contains(t, out, `"description": "Links and focus rings"`)
	assert.True(t, strings.HasSuffix(out, "}\n"))

	// Keys keep model order
	blue := strings.Index(out, `"Primitives/blue": {`)
	accent := strings.Index(out, `"Theme/accent": {`)
	gap := strings.Index(out, `"Primitives/gap": {`)
	assert.Less(t, blue, accent)
	assert.Less(t, accent, gap)

	// Descriptions are omitted when empty
	assert.Equal(t, 1, strings.Count(out, `"description"`))
}

func TestBuild_Empty(t *testing.T) {
	out, err := Export(nil, 2)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", out)
}
