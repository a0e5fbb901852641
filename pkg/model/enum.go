package model

import (
	"errors"
	"fmt"
)

// EnumEntry is an immutable (value, label) pair.
type EnumEntry struct {
	value any
	label string
}

// NewEnumEntry builds an entry from a two element [value, label] pair.
func NewEnumEntry(pair []any) (EnumEntry, error) {
	if len(pair) != 2 {
		return EnumEntry{}, fmt.Errorf("model: enum entry must be a [value, label] pair, got %d elements", len(pair))
	}
	label, ok := pair[1].(string)
	if !ok {
		return EnumEntry{}, fmt.Errorf("model: enum entry label must be a string, got %T", pair[1])
	}
	return EnumEntry{value: pair[0], label: label}, nil
}

func (e EnumEntry) Value() any    { return e.value }
func (e EnumEntry) Label() string { return e.label }

// Enum is a named set of entries keyed by label.
type Enum struct {
	name    string
	order   []string
	entries map[string]EnumEntry
}

// NewEnum builds an enum from raw [value, label] pairs.
func NewEnum(name string, pairs []any) (*Enum, error) {
	if name == "" {
		return nil, errors.New("model: enum name is required")
	}
	entries, err := EntriesFromSchema(pairs)
	if err != nil {
		return nil, fmt.Errorf("model: enum %s: %w", name, err)
	}
	e := &Enum{name: name}
	e.SetEntries(entries)
	return e, nil
}

// EntriesFromSchema converts raw pairs into entries. Each pair must itself be
// a [value, label] sequence.
func EntriesFromSchema(pairs []any) ([]EnumEntry, error) {
	out := make([]EnumEntry, 0, len(pairs))
	for i, raw := range pairs {
		pair, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("entry %d: expected [value, label], got %T", i, raw)
		}
		entry, err := NewEnumEntry(pair)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, entry)
	}
	return out, nil
}

// Name returns the enum name.
func (e *Enum) Name() string { return e.name }

// Entry returns the entry with the given label.
func (e *Enum) Entry(label string) (EnumEntry, error) {
	entry, ok := e.entries[label]
	if !ok {
		return EnumEntry{}, NewLookupError(LookupEntry, label, e.name)
	}
	return entry, nil
}

// AddEntry stores entry under its label. A repeated label replaces the
// earlier entry and keeps its position.
func (e *Enum) AddEntry(entry EnumEntry) {
	if e.entries == nil {
		e.entries = make(map[string]EnumEntry)
	}
	if _, exists := e.entries[entry.label]; !exists {
		e.order = append(e.order, entry.label)
	}
	e.entries[entry.label] = entry
}

// AddEntries adds each entry in order.
func (e *Enum) AddEntries(entries []EnumEntry) {
	for _, entry := range entries {
		e.AddEntry(entry)
	}
}

// ClearEntries removes every entry.
func (e *Enum) ClearEntries() {
	e.order = nil
	e.entries = make(map[string]EnumEntry)
}

// SetEntries replaces the enum content with entries.
func (e *Enum) SetEntries(entries []EnumEntry) {
	e.ClearEntries()
	e.AddEntries(entries)
}

// Entries returns the entries in insertion order.
func (e *Enum) Entries() []EnumEntry {
	out := make([]EnumEntry, 0, len(e.order))
	for _, label := range e.order {
		out = append(out, e.entries[label])
	}
	return out
}

// Values returns the entry values in insertion order.
func (e *Enum) Values() []any {
	out := make([]any, 0, len(e.order))
	for _, label := range e.order {
		out = append(out, e.entries[label].value)
	}
	return out
}

// Len reports the number of entries.
func (e *Enum) Len() int { return len(e.order) }
