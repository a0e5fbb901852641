package types

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Built-in type names registered by NewRegistry.
const (
	NameBoolean        = "Boolean"
	NameFloat          = "Float"
	NameInteger        = "Integer"
	NameString         = "String"
	NameOptionalString = "OptionalString"
)

// BuiltinNames lists the names NewRegistry pre-registers.
func BuiltinNames() []string {
	return []string{NameBoolean, NameFloat, NameInteger, NameOptionalString, NameString}
}

// Registry maps type names to ValueTypes. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]ValueType
}

// NewRegistry returns a registry seeded with the built-in types.
func NewRegistry() *Registry {
	r := &Registry{types: make(map[string]ValueType)}
	r.types[NameBoolean] = Boolean{}
	r.types[NameFloat] = Float{}
	r.types[NameInteger] = Int{}
	r.types[NameString] = String{}
	r.types[NameOptionalString] = OptionalString{}
	return r
}

// Register adds a type under name. Names are unique.
func (r *Registry) Register(name string, t ValueType) error {
	if name == "" {
		return errors.New("types: type name is required")
	}
	if t == nil {
		return fmt.Errorf("types: type %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[name]; exists {
		return fmt.Errorf("types: type %q already registered", name)
	}
	r.types[name] = t
	return nil
}

// MustRegister panics when registration fails.
func (r *Registry) MustRegister(name string, t ValueType) {
	if err := r.Register(name, t); err != nil {
		panic(err)
	}
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (ValueType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTypeNotFound, name)
	}
	return t, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.types[name]
	return ok
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
