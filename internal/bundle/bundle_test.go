package bundle

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/figvars/internal/format"
	"github.com/yacobolo/figvars/internal/model"
)

var colorCollection = model.Collection{Name: "Color", Modes: []string{"light", "dark"}, DefaultMode: "light"}

func colorVar(name, light, dark string) model.Variable {
	return model.Variable{
		Key:        "Color/" + name,
		Name:       name,
		Type:       model.TypeColor,
		Collection: colorCollection,
		ValuesByMode: []model.ModeEntry{
			{Mode: "light", Value: model.ColorValue{Hex: light}},
			{Mode: "dark", Value: model.ColorValue{Hex: dark}},
		},
		DefaultValue: model.ColorValue{Hex: light},
	}
}

func build(variables []model.Variable, cfg format.Config) *Bundle {
	set := format.New(cfg, model.NewIndex(variables), format.DialectCSS)
	return Build(variables, set)
}

func TestBuild_TwoModes(t *testing.T) {
	variables := []model.Variable{
		colorVar("background", "#ffffff", "#101010"),
		colorVar("foreground", "#101010", "#FFFFFF"),
	}

	b := build(variables, format.DefaultConfig())

	assert.Equal(t, []string{":root, .color-light", ".color-dark"}, b.Selectors())

	got, ok := b.Value(":root, .color-light", "--color-background")
	require.True(t, ok)
	assert.Equal(t, "#ffffff", got)

	got, ok = b.Value(".color-dark", "--color-foreground")
	require.True(t, ok)
	assert.Equal(t, "#FFFFFF", got, "hex is passed through unchanged")
}

func TestBuild_SkipsBooleans(t *testing.T) {
	c := model.Collection{Name: "Flags", Modes: []string{"on"}, DefaultMode: "on"}
	variables := []model.Variable{{
		Key: "Flags/enabled", Type: model.TypeBoolean, Collection: c,
		ValuesByMode: []model.ModeEntry{{Mode: "on", Value: model.BooleanValue{Bool: true}}},
	}}

	b := build(variables, format.DefaultConfig())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "", b.CSS(2))
}

func TestBuild_References(t *testing.T) {
	primitives := model.Collection{Name: "Primitives", Modes: []string{"default"}, DefaultMode: "default"}
	variables := []model.Variable{
		{
			Key: "Primitives/gray/900", Type: model.TypeColor, Collection: primitives,
			ValuesByMode: []model.ModeEntry{{Mode: "default", Value: model.ColorValue{Hex: "#111111"}}},
			DefaultValue: model.ColorValue{Hex: "#111111"},
		},
		{
			Key: "Color/text", Type: model.TypeColor, Collection: colorCollection,
			ValuesByMode: []model.ModeEntry{
				{Mode: "light", Value: model.Reference{TargetKey: "Primitives/gray/900"}},
				{Mode: "dark", Value: model.ColorValue{Hex: "#eeeeee"}},
			},
			DefaultValue: model.ColorValue{Hex: "#111111"},
		},
	}

	cfg := format.DefaultConfig()
	cfg.HasDefaultValues = true
	b := build(variables, cfg)

	got, ok := b.Value(":root, .color-light", "--color-text")
	require.True(t, ok)
	assert.Equal(t, "var(--primitives-gray-900, #111111)", got)
}

func TestBuild_NoRootSelector(t *testing.T) {
	cfg := format.DefaultConfig()
	cfg.RootSelector = ""

	b := build([]model.Variable{colorVar("bg", "#fff", "#000")}, cfg)
	assert.Equal(t, []string{".color-light", ".color-dark"}, b.Selectors())
}

func TestCSS(t *testing.T) {
	variables := []model.Variable{
		colorVar("background", "#ffffff", "#000000"),
		{
			Key: "Color/radius", Type: model.TypeNumber, Collection: colorCollection,
			Scopes: []model.Scope{model.ScopeRadius},
			ValuesByMode: []model.ModeEntry{
				{Mode: "light", Value: model.NumberValue{Number: 4}},
				{Mode: "dark", Value: model.NumberValue{Number: 6}},
			},
			DefaultValue: model.NumberValue{Number: 4},
		},
	}

	want := `:root, .color-light {
    --color-background: #ffffff;
    --color-radius: 4px;
}

.color-dark {
    --color-background: #000000;
    --color-radius: 6px;
}
`
	assert.Equal(t, want, build(variables, format.DefaultConfig()).CSS(4))
}

func TestMarshalJSON_KeepsOrder(t *testing.T) {
	b := build([]model.Variable{
		colorVar("z-last", "#000000", "#111111"),
		colorVar("a-first", "#222222", "#333333"),
	}, format.DefaultConfig())

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		":root, .color-light": {"--color-z-last": "#000000", "--color-a-first": "#222222"},
		".color-dark": {"--color-z-last": "#111111", "--color-a-first": "#333333"}
	}`, string(data))
	assert.Equal(t,
		`{":root, .color-light":{"--color-z-last":"#000000","--color-a-first":"#222222"},".color-dark":{"--color-z-last":"#111111","--color-a-first":"#333333"}}`,
		string(data))
}
