package model

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/sync/errgroup"

	"github.com/yacobolo/figvars/internal/logger"
	"github.com/yacobolo/figvars/internal/provider"
)

// nativeTypes maps supported provider types to variable types
var nativeTypes = map[string]VariableType{
	provider.TypeColor:   TypeColor,
	provider.TypeFloat:   TypeNumber,
	provider.TypeString:  TypeString,
	provider.TypeBoolean: TypeBoolean,
}

// rawCollection is a resolved provider collection with its mode id lookup
type rawCollection struct {
	collection Collection
	modeNames  map[string]string // mode id -> mode name
	modeIDs    []string          // mode ids in collection order
}

// builder holds the lookups of one LoadVariables call
type builder struct {
	collections map[string]*rawCollection // collection id -> collection
	keysByID    map[string]string         // variable id -> key
	log         *logger.Logger
}

// LoadVariables queries the provider and builds the full variable model.
// Variables of unsupported native types are discarded. All lookups are
// allocated per call.
func LoadVariables(ctx context.Context, p provider.Provider, log *logger.Logger) ([]Variable, error) {
	var (
		rawCollections []provider.RawCollection
		rawVariables   []provider.RawVariable
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rawCollections, err = p.Collections(gCtx)
		if err != nil {
			return fmt.Errorf("query collections: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		rawVariables, err = p.Variables(gCtx)
		if err != nil {
			return fmt.Errorf("query variables: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Build(rawCollections, rawVariables, log)
}

// Build maps raw provider data into the domain model and resolves every
// default value.
func Build(rawCollections []provider.RawCollection, rawVariables []provider.RawVariable, log *logger.Logger) ([]Variable, error) {
	b := &builder{
		collections: make(map[string]*rawCollection, len(rawCollections)),
		keysByID:    make(map[string]string, len(rawVariables)),
		log:         log,
	}

	for _, rc := range rawCollections {
		c, err := newRawCollection(rc)
		if err != nil {
			return nil, err
		}
		b.collections[rc.ID] = c
	}

	// First pass: filter supported variables and assign keys so aliases
	// can be mapped to keys regardless of declaration order
	supported := make([]provider.RawVariable, 0, len(rawVariables))
	seenKeys := make(map[string]string, len(rawVariables))
	for _, rv := range rawVariables {
		if _, ok := nativeTypes[rv.ResolvedType]; !ok {
			b.log.Debug("discarding variable with unsupported type", "variable", rv.Name, "type", rv.ResolvedType)
			continue
		}

		c, ok := b.collections[rv.VariableCollectionID]
		if !ok {
			return nil, &LookupError{Kind: ErrMissingCollection, ID: rv.VariableCollectionID, Context: rv.Name}
		}

		key := c.collection.Name + "/" + rv.Name
		if prev, dup := seenKeys[key]; dup {
			return nil, fmt.Errorf("%w: %q (variables %s and %s)", ErrDuplicateKey, key, prev, rv.ID)
		}
		seenKeys[key] = rv.ID
		b.keysByID[rv.ID] = key
		supported = append(supported, rv)
	}

	variables := make([]Variable, 0, len(supported))
	for _, rv := range supported {
		v, err := b.mapVariable(rv)
		if err != nil {
			return nil, err
		}
		variables = append(variables, v)
	}

	index := NewIndex(variables)
	for i := range variables {
		value, err := ResolveDefaultValue(index, &variables[i])
		if err != nil {
			return nil, err
		}
		variables[i].DefaultValue = value
	}

	b.log.Debug("built variable model", "collections", len(b.collections), "variables", len(variables),
		"discarded", len(rawVariables)-len(variables))

	return variables, nil
}

func newRawCollection(rc provider.RawCollection) (*rawCollection, error) {
	c := &rawCollection{
		collection: Collection{Name: rc.Name, Modes: make([]string, 0, len(rc.Modes))},
		modeNames:  make(map[string]string, len(rc.Modes)),
		modeIDs:    make([]string, 0, len(rc.Modes)),
	}

	for _, m := range rc.Modes {
		if _, dup := c.modeNames[m.ModeID]; dup {
			continue
		}
		c.modeNames[m.ModeID] = m.Name
		c.modeIDs = append(c.modeIDs, m.ModeID)
		c.collection.Modes = append(c.collection.Modes, m.Name)
	}

	defaultMode, ok := c.modeNames[rc.DefaultModeID]
	if !ok {
		return nil, &LookupError{Kind: ErrMissingMode, ID: rc.DefaultModeID, Context: "default mode of collection " + rc.Name}
	}
	c.collection.DefaultMode = defaultMode

	return c, nil
}

// mapVariable converts one supported raw variable into the domain model.
// DefaultValue is filled in later, once every variable is indexed.
func (b *builder) mapVariable(rv provider.RawVariable) (Variable, error) {
	t := nativeTypes[rv.ResolvedType]
	c := b.collections[rv.VariableCollectionID]
	key := b.keysByID[rv.ID]

	for modeID := range rv.ValuesByMode {
		if _, ok := c.modeNames[modeID]; !ok {
			return Variable{}, &LookupError{Kind: ErrMissingMode, ID: modeID, Context: key}
		}
	}

	v := Variable{
		Key:          key,
		Name:         rv.Name,
		Type:         t,
		Collection:   c.collection,
		ValuesByMode: make([]ModeEntry, 0, len(c.modeIDs)),
		Scopes:       ClassifyScopes(t, rv.Scopes),
		Description:  rv.Description,
	}

	for _, modeID := range c.modeIDs {
		mode := c.modeNames[modeID]
		raw, ok := rv.ValuesByMode[modeID]
		if !ok {
			return Variable{}, &LookupError{Kind: ErrMissingMode, ID: modeID, Context: key}
		}

		value, err := b.decodeValue(t, raw)
		if err != nil {
			var lookupErr *LookupError
			if errors.As(err, &lookupErr) {
				lookupErr.Context = key
				return Variable{}, lookupErr
			}
			return Variable{}, &ValueError{Variable: key, Mode: mode, Reason: err.Error()}
		}

		v.ValuesByMode = append(v.ValuesByMode, ModeEntry{Mode: mode, Value: value})
	}

	return v, nil
}

// decodeValue turns a raw mode value into a Value or Reference
func (b *builder) decodeValue(t VariableType, raw json.RawMessage) (ModeValue, error) {
	raw = bytes.TrimSpace(raw)

	if len(raw) > 0 && raw[0] == '{' {
		var alias provider.RawAlias
		if err := json.Unmarshal(raw, &alias); err == nil && alias.Type == provider.AliasType {
			key, ok := b.keysByID[alias.ID]
			if !ok {
				return nil, &LookupError{Kind: ErrMissingVariable, ID: alias.ID}
			}
			return Reference{TargetKey: key}, nil
		}
	}

	switch t {
	case TypeBoolean:
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("expected boolean, got %s", raw)
		}
		return BooleanValue{Bool: v}, nil

	case TypeNumber:
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("expected number, got %s", raw)
		}
		return NumberValue{Number: v}, nil

	case TypeString:
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("expected string, got %s", raw)
		}
		return StringValue{String: v}, nil

	case TypeColor:
		return decodeColor(raw)
	}

	return nil, fmt.Errorf("unknown type %q", t)
}

// decodeColor accepts an {r,g,b,a} object with 0..1 channels or any CSS
// color string
func decodeColor(raw json.RawMessage) (ColorValue, error) {
	var c csscolorparser.Color

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		parsed, err := csscolorparser.Parse(text)
		if err != nil {
			return ColorValue{}, fmt.Errorf("invalid color %q: %w", text, err)
		}
		c = parsed
	} else {
		var rc provider.RawColor
		if err := json.Unmarshal(raw, &rc); err != nil {
			return ColorValue{}, fmt.Errorf("expected color, got %s", raw)
		}
		c = csscolorparser.Color{R: rc.R, G: rc.G, B: rc.B, A: 1}
		if rc.A != nil {
			c.A = *rc.A
		}
	}

	return NewColorValue(c), nil
}

// NewColorValue builds a ColorValue from a parsed color
func NewColorValue(c csscolorparser.Color) ColorValue {
	r, g, b, _ := c.RGBA255()
	return ColorValue{
		Hex:  c.HexString(),
		RGBA: [4]float64{float64(r), float64(g), float64(b), c.A},
	}
}
