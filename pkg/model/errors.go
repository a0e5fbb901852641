package model

import (
	"errors"
	"fmt"
)

// ErrNotFound matches every LookupError through errors.Is.
var ErrNotFound = errors.New("model: not found")

// LookupKind names what a failed lookup was searching for.
type LookupKind string

const (
	LookupModel LookupKind = "model"
	LookupField LookupKind = "field"
	LookupEnum  LookupKind = "enum"
	LookupEntry LookupKind = "enum entry"
	LookupView  LookupKind = "view"
	LookupForm  LookupKind = "form"
	LookupPage  LookupKind = "page"
)

// LookupError reports a missing model, field, enum, entry or view.
type LookupError struct {
	Kind  LookupKind
	Name  string
	Scope string
}

func (e *LookupError) Error() string {
	if e.Scope != "" {
		return fmt.Sprintf("model: %s %q not found in %q", e.Kind, e.Name, e.Scope)
	}
	return fmt.Sprintf("model: %s %q not found", e.Kind, e.Name)
}

func (e *LookupError) Is(target error) bool { return target == ErrNotFound }

// NewLookupError is shared with the container and view packages so every
// lookup failure has the same shape.
func NewLookupError(kind LookupKind, name, scope string) *LookupError {
	return &LookupError{Kind: kind, Name: name, Scope: scope}
}

// ImmutabilityError is returned when a caller tries to change a field type.
type ImmutabilityError struct {
	Field string
}

func (e *ImmutabilityError) Error() string {
	if e.Field == "" {
		return "model: cannot modify field type"
	}
	return fmt.Sprintf("model: cannot modify field type of %q", e.Field)
}
