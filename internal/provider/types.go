package provider

import "encoding/json"

// Native resolved types reported by the design tool.
const (
	TypeBoolean = "BOOLEAN"
	TypeFloat   = "FLOAT"
	TypeString  = "STRING"
	TypeColor   = "COLOR"
)

// AliasType marks a mode value that points at another variable.
const AliasType = "VARIABLE_ALIAS"

// RawMode is one mode of a collection as reported by the provider
type RawMode struct {
	ModeID string `json:"modeId"`
	Name   string `json:"name"`
}

// RawCollection is a variable collection in provider-native form
type RawCollection struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Modes                []RawMode `json:"modes"`
	DefaultModeID        string    `json:"defaultModeId"`
	VariableIDs          []string  `json:"variableIds,omitempty"`
	Remote               bool      `json:"remote,omitempty"`
	HiddenFromPublishing bool      `json:"hiddenFromPublishing,omitempty"`
}

// RawVariable is a variable in provider-native form.
// ValuesByMode is keyed by mode id; each value is decoded by the model
// builder according to ResolvedType.
type RawVariable struct {
	ID                   string                     `json:"id"`
	Name                 string                     `json:"name"`
	Key                  string                     `json:"key,omitempty"`
	VariableCollectionID string                     `json:"variableCollectionId"`
	ResolvedType         string                     `json:"resolvedType"`
	ValuesByMode         map[string]json.RawMessage `json:"valuesByMode"`
	Scopes               []string                   `json:"scopes"`
	Description          string                     `json:"description,omitempty"`
	HiddenFromPublishing bool                       `json:"hiddenFromPublishing,omitempty"`
	Remote               bool                       `json:"remote,omitempty"`
}

// RawColor is an RGBA color with channels in the 0..1 range
type RawColor struct {
	R float64  `json:"r"`
	G float64  `json:"g"`
	B float64  `json:"b"`
	A *float64 `json:"a,omitempty"`
}

// RawAlias is a mode value referencing another variable by id
type RawAlias struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}
