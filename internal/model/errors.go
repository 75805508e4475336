package model

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for error type checking.
// Every one of them aborts the export call.
var (
	// ErrMissingCollection indicates a variable names an unknown collection id
	ErrMissingCollection = errors.New("missing collection")

	// ErrMissingMode indicates a mode id is not part of its collection
	ErrMissingMode = errors.New("missing mode")

	// ErrMissingVariable indicates a reference to an unknown variable
	ErrMissingVariable = errors.New("missing variable")

	// ErrReferenceCycle indicates a reference chain that never terminates
	ErrReferenceCycle = errors.New("cycle detected")

	// ErrUnsupportedValue indicates a mode value that does not match its type
	ErrUnsupportedValue = errors.New("unsupported value")

	// ErrDuplicateKey indicates two variables share the same key
	ErrDuplicateKey = errors.New("duplicate variable key")
)

// CycleError names the full reference chain of a detected cycle
type CycleError struct {
	Chain []string // Keys in visiting order, ending with the revisited key
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected: %s", strings.Join(e.Chain, " -> "))
}

func (e *CycleError) Unwrap() error {
	return ErrReferenceCycle
}

// LookupError reports an unresolvable collection, mode or variable id
type LookupError struct {
	Kind    error  // One of the missing-* sentinels
	ID      string // The id that failed to resolve
	Context string // Where the id was found
}

func (e *LookupError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("%s: %q", e.Kind, e.ID)
	}
	return fmt.Sprintf("%s: %q (referenced by %s)", e.Kind, e.ID, e.Context)
}

func (e *LookupError) Unwrap() error {
	return e.Kind
}

// ValueError reports a mode value whose shape is not supported
type ValueError struct {
	Variable string
	Mode     string
	Reason   string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("unsupported value for %s in mode %s: %s", e.Variable, e.Mode, e.Reason)
}

func (e *ValueError) Unwrap() error {
	return ErrUnsupportedValue
}
