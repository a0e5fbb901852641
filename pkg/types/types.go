// Package types defines the value types a schema field can declare and the
// validation each one applies before a value is stored.
package types

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Kind groups value types by the shape of the values they accept. Renderers
// and exporters switch on it instead of on concrete types.
type Kind string

const (
	KindBoolean Kind = "boolean"
	KindFloat   Kind = "float"
	KindInt     Kind = "int"
	KindString  Kind = "string"
	KindChoices Kind = "choices"
	KindStruct  Kind = "struct"
)

// ValueType validates (and possibly converts) a raw value. Implementations
// are stateless apart from their configured bounds or choices.
type ValueType interface {
	Kind() Kind
	Validate(raw any) (any, error)
}

// ZeroValuer is implemented by types that can supply an initial value when
// a field declares no default.
type ZeroValuer interface {
	Zero() any
}

// Bounded is implemented by types carrying numeric limits.
type Bounded interface {
	Bounds() (min, max *float64)
}

// Enumerated is implemented by types restricted to a fixed set of values.
type Enumerated interface {
	Values() []any
}

// Zero returns the zero value of t, or nil when t does not provide one.
func Zero(t ValueType) any {
	if z, ok := t.(ZeroValuer); ok {
		return z.Zero()
	}
	return nil
}

// Boolean accepts only bool values.
type Boolean struct{}

func (Boolean) Kind() Kind { return KindBoolean }
func (Boolean) Zero() any  { return false }

func (Boolean) Validate(raw any) (any, error) {
	if _, ok := raw.(bool); !ok {
		return nil, invalidType("Boolean", raw, "a boolean")
	}
	return raw, nil
}

// Float converts numeric values and numeric strings to float64.
type Float struct{}

func (Float) Kind() Kind { return KindFloat }
func (Float) Zero() any  { return float64(0) }

func (Float) Validate(raw any) (any, error) {
	return toFloat("Float", raw)
}

// Int accepts Go integer values and returns them unchanged. Floats, numeric
// strings and booleans are rejected.
type Int struct{}

func (Int) Kind() Kind { return KindInt }
func (Int) Zero() any  { return int64(0) }

func (Int) Validate(raw any) (any, error) {
	if !isInteger(raw) {
		return nil, invalidType("Int", raw, "an integer")
	}
	return raw, nil
}

// String accepts only string values.
type String struct{}

func (String) Kind() Kind { return KindString }
func (String) Zero() any  { return "" }

func (String) Validate(raw any) (any, error) {
	if _, ok := raw.(string); !ok {
		return nil, invalidType("String", raw, "a string")
	}
	return raw, nil
}

// OptionalString accepts a string or nil. An unset field stays nil.
type OptionalString struct{}

func (OptionalString) Kind() Kind { return KindString }
func (OptionalString) Zero() any  { return nil }

func (OptionalString) Validate(raw any) (any, error) {
	switch raw.(type) {
	case nil, string:
		return raw, nil
	}
	return nil, invalidType("OptionalString", raw, "a string or null")
}

func toFloat(name string, raw any) (float64, error) {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, invalidType(name, raw, "a number")
		}
		f = parsed
	default:
		return 0, invalidType(name, raw, "a number")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, invalidType(name, raw, "a finite number")
	}
	return f, nil
}

func isInteger(raw any) bool {
	if raw == nil {
		return false
	}
	switch reflect.TypeOf(raw).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// compareInt orders an integer value against bound without leaving the
// integer domain. Unsigned values above math.MaxInt64 are always greater.
func compareInt(raw any, bound int64) int {
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		switch {
		case bound < 0 || u > uint64(bound):
			return 1
		case u == uint64(bound):
			return 0
		}
		return -1
	default:
		v := rv.Int()
		switch {
		case v < bound:
			return -1
		case v > bound:
			return 1
		}
		return 0
	}
}
