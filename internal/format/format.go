// Package format turns model values into CSS text.
//
// A Set is built fresh for every export call. It owns the root-selector
// claims of that call, so sets must never be shared between exports.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/yacobolo/figvars/internal/model"
)

// Dialect selects how colors are rendered
type Dialect int

const (
	// DialectCSS renders colors as hex strings
	DialectCSS Dialect = iota
	// DialectTailwind renders colors as "r g b" channel triples so the
	// consumer can add alpha through the framework's alpha-value slot
	DialectTailwind
)

// Set is the formatter set of one export call
type Set struct {
	config  Config
	index   model.Index
	dialect Dialect
	claims  map[string]string // collection name -> class holding the root selector
	trim    []string          // Trim keywords in kebab case
}

// New creates a formatter set over the given variables
func New(config Config, index model.Index, dialect Dialect) *Set {
	return &Set{
		config:  config,
		index:   index,
		dialect: dialect,
		claims:  make(map[string]string),
		trim:    kebabKeywords(config.TrimKeywords),
	}
}

func kebabKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = KebabCase(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// Value formats v as owner's type in the set's dialect
func (s *Set) Value(v model.ModeValue, owner *model.Variable) string {
	switch owner.Type {
	case model.TypeColor:
		if s.dialect == DialectTailwind {
			return s.CSSColorTwRgb(v, owner)
		}
		return s.CSSColorHex(v, owner)
	case model.TypeNumber:
		return s.CSSNumber(v, owner)
	case model.TypeString:
		return s.CSSString(v, owner)
	case model.TypeBoolean:
		return s.boolean(v)
	}
	return ""
}

// CSSNumber renders a number with the unit configured for owner's scopes
func (s *Set) CSSNumber(v model.ModeValue, owner *model.Variable) string {
	switch val := v.(type) {
	case model.Reference:
		return s.VariableRef(val)
	case model.NumberValue:
		n := val.Number
		switch s.unitFor(owner) {
		case UnitRem:
			return formatNumber(n/s.config.BaseFontSize) + "rem"
		case UnitEm:
			return formatNumber(n/s.config.BaseFontSize) + "em"
		case UnitNone:
			return formatNumber(n)
		default:
			return formatNumber(n) + "px"
		}
	}
	return ""
}

// CSSString passes strings through, quoting those containing whitespace
func (s *Set) CSSString(v model.ModeValue, _ *model.Variable) string {
	switch val := v.(type) {
	case model.Reference:
		return s.VariableRef(val)
	case model.StringValue:
		if strings.IndexFunc(val.String, isSpace) >= 0 {
			return `"` + val.String + `"`
		}
		return val.String
	}
	return ""
}

// CSSColorHex renders a color as its hex string
func (s *Set) CSSColorHex(v model.ModeValue, _ *model.Variable) string {
	switch val := v.(type) {
	case model.Reference:
		return s.VariableRef(val)
	case model.ColorValue:
		return val.Hex
	}
	return ""
}

// CSSColorTwRgb renders a color as a space-joined "r g b" triple
func (s *Set) CSSColorTwRgb(v model.ModeValue, _ *model.Variable) string {
	switch val := v.(type) {
	case model.Reference:
		return s.VariableRef(val)
	case model.ColorValue:
		return formatNumber(math.Round(val.RGBA[0])) + " " +
			formatNumber(math.Round(val.RGBA[1])) + " " +
			formatNumber(math.Round(val.RGBA[2]))
	}
	return ""
}

// VariableRef renders var(--<key>), with the target's default value as
// fallback when default values are enabled
func (s *Set) VariableRef(ref model.Reference) string {
	name := CustomProperty(ref.TargetKey)
	if !s.config.HasDefaultValues {
		return "var(" + name + ")"
	}

	target, ok := s.index[ref.TargetKey]
	if !ok || target.DefaultValue == nil {
		return "var(" + name + ")"
	}
	return "var(" + name + ", " + s.Value(target.DefaultValue, target) + ")"
}

// ModeSelector returns the class selector of a collection mode. The first
// class seen for a collection claims the configured root selector; every
// other class of that collection gets the bare class for the rest of the call.
// Exporters visit modes in collection order, so the first mode claims.
func (s *Set) ModeSelector(c model.Collection, mode string) string {
	class := "." + KebabCase(c.Name) + "-" + KebabCase(mode)

	root := strings.TrimSpace(s.config.RootSelector)
	if root == "" {
		return class
	}

	claimed, ok := s.claims[c.Name]
	if !ok {
		s.claims[c.Name] = class
		claimed = class
	}
	if claimed != class {
		return class
	}
	return root + ", " + class
}

// PropertyName derives a theme property name from a variable name.
// Keywords are kebab-cased like the name before they are trimmed.
func (s *Set) PropertyName(name string) string {
	return TrimKeywords(KebabCase(name), s.trim)
}

// CustomProperty returns the CSS custom property name of a variable key
func CustomProperty(key string) string {
	return "--" + KebabCase(key)
}

// unitFor picks the unit of the first scope with a configured unit
func (s *Set) unitFor(v *model.Variable) Unit {
	for _, scope := range v.Scopes {
		if u, ok := s.config.Units[scope]; ok && u != "" {
			return u
		}
	}
	return UnitPx
}

func (s *Set) boolean(v model.ModeValue) string {
	switch val := v.(type) {
	case model.Reference:
		return s.VariableRef(val)
	case model.BooleanValue:
		return strconv.FormatBool(val.Bool)
	}
	return ""
}

// formatNumber prints the shortest decimal that round-trips
func formatNumber(n float64) string {
	if n == 0 {
		return "0"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
