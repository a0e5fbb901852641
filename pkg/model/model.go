package model

import (
	"errors"
	"fmt"
	"strings"
)

// Model is a named, ordered set of field definitions. The set of fields is
// fixed once the model is built; only field values change.
type Model struct {
	name   string
	order  []string
	fields map[string]*FieldDefinition
}

// NewModel builds a model from named fields. Field names must be unique and
// non-empty; declaration order is kept.
func NewModel(name string, fields ...*FieldDefinition) (*Model, error) {
	if name == "" {
		return nil, errors.New("model: model name is required")
	}
	m := &Model{
		name:   name,
		order:  make([]string, 0, len(fields)),
		fields: make(map[string]*FieldDefinition, len(fields)),
	}
	for i, field := range fields {
		if field == nil {
			return nil, fmt.Errorf("model: %s: field %d is nil", name, i)
		}
		if field.name == "" {
			return nil, fmt.Errorf("model: %s: field %d has no name", name, i)
		}
		if strings.Contains(field.name, RefSeparator) {
			return nil, fmt.Errorf("model: %s: field name %q must not contain %q", name, field.name, RefSeparator)
		}
		if _, exists := m.fields[field.name]; exists {
			return nil, fmt.Errorf("model: %s: duplicate field %q", name, field.name)
		}
		m.fields[field.name] = field
		m.order = append(m.order, field.name)
	}
	return m, nil
}

// Name returns the model name.
func (m *Model) Name() string { return m.name }

// Field returns the definition registered under name.
func (m *Model) Field(name string) (*FieldDefinition, error) {
	field, ok := m.fields[name]
	if !ok {
		return nil, NewLookupError(LookupField, name, m.name)
	}
	return field, nil
}

// SetFieldValue validates and assigns v to the named field.
func (m *Model) SetFieldValue(name string, v any) error {
	field, err := m.Field(name)
	if err != nil {
		return err
	}
	return field.SetValue(v)
}

// FieldNames returns field names in declaration order.
func (m *Model) FieldNames() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Fields returns the definitions in declaration order.
func (m *Model) Fields() []*FieldDefinition {
	out := make([]*FieldDefinition, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.fields[name])
	}
	return out
}

// Values snapshots the current field values.
func (m *Model) Values() map[string]any {
	out := make(map[string]any, len(m.order))
	for _, name := range m.order {
		out[name] = m.fields[name].value
	}
	return out
}

// FieldRef returns the qualified reference "model.field".
func (m *Model) FieldRef(field string) string {
	return JoinFieldRef(m.name, field)
}
