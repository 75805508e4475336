// Package provider supplies raw design-tool variables and collections.
//
// A Provider answers two independent queries. The model builder issues them
// concurrently, so implementations must be safe for concurrent use.
package provider

import "context"

// Provider is the source of raw variable data
type Provider interface {
	Collections(ctx context.Context) ([]RawCollection, error)
	Variables(ctx context.Context) ([]RawVariable, error)
}

// Memory is a Provider backed by fixed slices
type Memory struct {
	RawCollections []RawCollection
	RawVariables   []RawVariable
}

// NewMemory creates an in-memory provider
func NewMemory(collections []RawCollection, variables []RawVariable) *Memory {
	return &Memory{RawCollections: collections, RawVariables: variables}
}

// Collections returns a copy of the stored collections
func (m *Memory) Collections(ctx context.Context) ([]RawCollection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]RawCollection, len(m.RawCollections))
	copy(out, m.RawCollections)
	return out, nil
}

// Variables returns a copy of the stored variables
func (m *Memory) Variables(ctx context.Context) ([]RawVariable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]RawVariable, len(m.RawVariables))
	copy(out, m.RawVariables)
	return out, nil
}
