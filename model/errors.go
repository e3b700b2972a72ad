package model

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel matched by every registry lookup failure.
var ErrNotFound = errors.New("morph: not found")

// Lookup kinds reported by NotFoundError.Kind.
const (
	lookupModel        = "model"
	lookupAttribute    = "attribute"
	lookupRelationship = "relationship"
)

// NotFoundError is returned by registry lookups for a missing model,
// attribute, or relationship.
type NotFoundError struct {
	kind  string // what was looked up
	model string // owning model name
	name  string // the missing name
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	if e.kind == lookupModel {
		return fmt.Sprintf("morph: model %q not found", e.name)
	}
	return fmt.Sprintf("morph: %s %q not found on model %q", e.kind, e.name, e.model)
}

// Is reports whether the target error matches NotFoundError.
// This allows errors.Is(notFoundErr, ErrNotFound) to return true.
func (e *NotFoundError) Is(err error) bool {
	return err == ErrNotFound
}

// Kind returns what was looked up: "model", "attribute" or "relationship".
func (e *NotFoundError) Kind() string {
	return e.kind
}

// Name returns the missing name.
func (e *NotFoundError) Name() string {
	return e.name
}

// Model returns the owning model name. For model lookups it equals Name.
func (e *NotFoundError) Model() string {
	return e.model
}

// NewModelNotFoundError returns a new NotFoundError for a missing model.
func NewModelNotFoundError(name string) *NotFoundError {
	return &NotFoundError{kind: lookupModel, model: name, name: name}
}

// NewAttributeNotFoundError returns a new NotFoundError for a missing
// attribute on the given model.
func NewAttributeNotFoundError(model, name string) *NotFoundError {
	return &NotFoundError{kind: lookupAttribute, model: model, name: name}
}

// NewRelationshipNotFoundError returns a new NotFoundError for a missing
// relationship on the given model.
func NewRelationshipNotFoundError(model, name string) *NotFoundError {
	return &NotFoundError{kind: lookupRelationship, model: model, name: name}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *NotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrNotFound)
}
