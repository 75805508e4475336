// Package model holds the normalized, reference-safe variable graph.
//
// Raw provider data is mapped into Collections and Variables. Mode values
// are either concrete Values or References to another variable by key.
// Default values are always concrete: references are followed through the
// owning collection's default mode until a non-reference is reached.
package model

// VariableType is the value type of a variable
type VariableType string

// Variable types
const (
	TypeColor   VariableType = "color"
	TypeNumber  VariableType = "number"
	TypeString  VariableType = "string"
	TypeBoolean VariableType = "boolean"
)

// Collection is a named set of modes shared by a group of variables
type Collection struct {
	Name        string
	Modes       []string // Ordered, unique
	DefaultMode string
}

// ModeEntry is one mode's value of a variable
type ModeEntry struct {
	Mode  string
	Value ModeValue
}

// Variable is a typed, keyed value with one entry per collection mode
type Variable struct {
	Key          string // "<collection>/<name-path>", globally unique
	Name         string // "color/primary"
	Type         VariableType
	Collection   Collection
	ValuesByMode []ModeEntry // In collection mode order
	DefaultValue Value       // Never a Reference
	Scopes       []Scope     // Deduplicated, first-seen order
	Description  string
}

// ValueForMode returns the value stored for mode
func (v *Variable) ValueForMode(mode string) (ModeValue, bool) {
	for _, e := range v.ValuesByMode {
		if e.Mode == mode {
			return e.Value, true
		}
	}
	return nil, false
}

// HasScope reports whether the variable carries scope s
func (v *Variable) HasScope(s Scope) bool {
	for _, scope := range v.Scopes {
		if scope == s {
			return true
		}
	}
	return false
}

// ModeValue is either a concrete Value or a Reference.
// The interface is sealed, switch on the concrete types to dispatch.
type ModeValue interface {
	isModeValue()
}

// Value is a concrete (non-reference) value
type Value interface {
	ModeValue
	Type() VariableType
}

// ColorValue is a color in hex form plus its channels.
// RGBA holds 0..255 channels and a 0..1 alpha.
type ColorValue struct {
	Hex  string
	RGBA [4]float64
}

// NumberValue is a plain number
type NumberValue struct {
	Number float64
}

// StringValue is a plain string
type StringValue struct {
	String string
}

// BooleanValue is a plain boolean
type BooleanValue struct {
	Bool bool
}

// Reference points at another variable by key
type Reference struct {
	TargetKey string
}

func (ColorValue) isModeValue()   {}
func (NumberValue) isModeValue()  {}
func (StringValue) isModeValue()  {}
func (BooleanValue) isModeValue() {}
func (Reference) isModeValue()    {}

// Type implements Value
func (ColorValue) Type() VariableType { return TypeColor }

// Type implements Value
func (NumberValue) Type() VariableType { return TypeNumber }

// Type implements Value
func (StringValue) Type() VariableType { return TypeString }

// Type implements Value
func (BooleanValue) Type() VariableType { return TypeBoolean }

// Index maps variable keys to variables
type Index map[string]*Variable

// NewIndex builds a key index over variables
func NewIndex(variables []Variable) Index {
	idx := make(Index, len(variables))
	for i := range variables {
		idx[variables[i].Key] = &variables[i]
	}
	return idx
}
