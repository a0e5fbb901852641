package model

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formschema/pkg/types"
)

// FieldDefinition binds one immutable ValueType to a current value.
type FieldDefinition struct {
	name     string
	typeName string
	typ      types.ValueType
	value    any

	label      string
	toolTip    string
	units      string
	def        any
	hasDefault bool
	min        any
	max        any
}

// FieldOption configures descriptive metadata on a FieldDefinition. Metadata
// is informational and never validated.
type FieldOption func(*FieldDefinition)

// WithName records the field name used in errors and references.
func WithName(name string) FieldOption {
	return func(f *FieldDefinition) { f.name = name }
}

// WithTypeName records the schema type name the field was declared with.
func WithTypeName(name string) FieldOption {
	return func(f *FieldDefinition) { f.typeName = name }
}

// WithLabel sets the display label.
func WithLabel(label string) FieldOption {
	return func(f *FieldDefinition) { f.label = label }
}

// WithToolTip sets the help text.
func WithToolTip(tip string) FieldOption {
	return func(f *FieldDefinition) { f.toolTip = tip }
}

// WithUnits sets the measurement units shown next to the value.
func WithUnits(units string) FieldOption {
	return func(f *FieldDefinition) { f.units = units }
}

// WithDefault records the declared default.
func WithDefault(v any) FieldOption {
	return func(f *FieldDefinition) {
		f.def = v
		f.hasDefault = true
	}
}

// WithMin records an informational lower limit.
func WithMin(v any) FieldOption {
	return func(f *FieldDefinition) { f.min = v }
}

// WithMax records an informational upper limit.
func WithMax(v any) FieldOption {
	return func(f *FieldDefinition) { f.max = v }
}

// NewFieldDefinition validates initial against typ and returns the field.
func NewFieldDefinition(typ types.ValueType, initial any, opts ...FieldOption) (*FieldDefinition, error) {
	if typ == nil {
		return nil, errors.New("model: field type is required")
	}
	f := &FieldDefinition{typ: typ}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	value, err := typ.Validate(initial)
	if err != nil {
		return nil, f.wrap(err)
	}
	f.value = value
	return f, nil
}

// Name returns the field name, if one was set.
func (f *FieldDefinition) Name() string { return f.name }

// Type returns the field's value type.
func (f *FieldDefinition) Type() types.ValueType { return f.typ }

// TypeName returns the declared schema type name.
func (f *FieldDefinition) TypeName() string { return f.typeName }

// Value returns the current value.
func (f *FieldDefinition) Value() any { return f.value }

// SetValue validates v and stores the validated result. On failure the
// previous value is kept.
func (f *FieldDefinition) SetValue(v any) error {
	value, err := f.typ.Validate(v)
	if err != nil {
		return f.wrap(err)
	}
	f.value = value
	return nil
}

// Validate checks v against the field type without storing it.
func (f *FieldDefinition) Validate(v any) (any, error) {
	value, err := f.typ.Validate(v)
	if err != nil {
		return nil, f.wrap(err)
	}
	return value, nil
}

// SetType always fails: field types cannot change after construction.
func (f *FieldDefinition) SetType(types.ValueType) error {
	return &ImmutabilityError{Field: f.name}
}

func (f *FieldDefinition) Label() string   { return f.label }
func (f *FieldDefinition) ToolTip() string { return f.toolTip }
func (f *FieldDefinition) Units() string   { return f.units }
func (f *FieldDefinition) Min() any        { return f.min }
func (f *FieldDefinition) Max() any        { return f.max }

// Default returns the declared default and whether one was declared.
func (f *FieldDefinition) Default() (any, bool) { return f.def, f.hasDefault }

func (f *FieldDefinition) wrap(err error) error {
	if f.name == "" {
		return err
	}
	return fmt.Errorf("model: field %q: %w", f.name, err)
}
