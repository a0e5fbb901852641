package types

import (
	"errors"
	"fmt"
)

// Validation issue codes.
const (
	CodeInvalidType = "invalid_type"
	CodeTooSmall    = "too_small"
	CodeTooBig      = "too_big"
	CodeInvalidEnum = "invalid_enum"
)

// ErrTypeNotFound is returned by Registry.Lookup for unknown names.
var ErrTypeNotFound = errors.New("types: type not found")

// ValidationError reports a value rejected by a ValueType.
type ValidationError struct {
	Type    string
	Value   any
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("types: %s rejected %#v: %s", e.Type, e.Value, e.Message)
}

func invalidType(name string, raw any, want string) *ValidationError {
	return &ValidationError{
		Type:    name,
		Value:   raw,
		Code:    CodeInvalidType,
		Message: fmt.Sprintf("expected %s, got %T", want, raw),
	}
}

func renamed(err error, name string) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		clone := *verr
		clone.Type = name
		return &clone
	}
	return err
}
