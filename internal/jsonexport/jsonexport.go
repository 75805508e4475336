// Package jsonexport flattens the variable model into a JSON document keyed
// by variable key. Unlike the CSS exporters, references stay unresolved.
package jsonexport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/yacobolo/figvars/internal/model"
)

// AliasType is the type tag of an unresolved reference
const AliasType = "alias"

// JSONValue is a tagged mode value
type JSONValue struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// JSONColor is the payload of a color value
type JSONColor struct {
	Hex  string     `json:"hex"`
	RGBA [4]float64 `json:"rgba"`
}

// JSONAlias is the payload of a reference
type JSONAlias struct {
	Key string `json:"key"`
}

// JSONVariable is one exported variable
type JSONVariable struct {
	Key          string                                    `json:"key"`
	Name         string                                    `json:"name"`
	Type         model.VariableType                        `json:"type"`
	Collection   string                                    `json:"collection"`
	Description  string                                    `json:"description,omitempty"`
	Scopes       []model.Scope                             `json:"scopes"`
	DefaultValue JSONValue                                 `json:"defaultValue"`
	ValuesByMode *orderedmap.OrderedMap[string, JSONValue] `json:"valuesByMode"`
}

// Build converts every variable, including booleans and unclassified ones
func Build(variables []model.Variable) *orderedmap.OrderedMap[string, JSONVariable] {
	out := orderedmap.New[string, JSONVariable]()

	for i := range variables {
		v := &variables[i]
		modes := orderedmap.New[string, JSONValue]()
		for _, e := range v.ValuesByMode {
			modes.Set(e.Mode, encodeValue(e.Value))
		}

		scopes := v.Scopes
		if scopes == nil {
			scopes = []model.Scope{}
		}

		out.Set(v.Key, JSONVariable{
			Key:          v.Key,
			Name:         v.Name,
			Type:         v.Type,
			Collection:   v.Collection.Name,
			Description:  v.Description,
			Scopes:       scopes,
			DefaultValue: encodeValue(v.DefaultValue),
			ValuesByMode: modes,
		})
	}

	return out
}

// Export renders the variables as JSON indented by tabWidth spaces
func Export(variables []model.Variable, tabWidth int) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", tabWidth))

	if err := enc.Encode(Build(variables)); err != nil {
		return "", fmt.Errorf("encode variables: %w", err)
	}
	return buf.String(), nil
}

func encodeValue(v model.ModeValue) JSONValue {
	switch val := v.(type) {
	case model.Reference:
		return JSONValue{Type: AliasType, Value: JSONAlias{Key: val.TargetKey}}
	case model.ColorValue:
		return JSONValue{Type: string(model.TypeColor), Value: JSONColor{Hex: val.Hex, RGBA: val.RGBA}}
	case model.NumberValue:
		return JSONValue{Type: string(model.TypeNumber), Value: val.Number}
	case model.StringValue:
		return JSONValue{Type: string(model.TypeString), Value: val.String}
	case model.BooleanValue:
		return JSONValue{Type: string(model.TypeBoolean), Value: val.Bool}
	}
	return JSONValue{Type: "unknown"}
}
