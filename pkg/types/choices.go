package types

import (
	"fmt"
	"math"
	"reflect"
)

// Choices accepts only members of a fixed set. The set is deduplicated and
// keeps first-seen order. Integers match across widths, so int(2) is a
// member of a set built from int64(2).
type Choices struct {
	values []any
	index  map[any]struct{}
}

// NewChoices builds a Choices type. Non-comparable values are skipped since
// they could never be matched.
func NewChoices(values ...any) Choices {
	c := Choices{index: make(map[any]struct{}, len(values))}
	for _, v := range values {
		if !isComparable(v) {
			continue
		}
		key := choiceKey(v)
		if _, ok := c.index[key]; ok {
			continue
		}
		c.index[key] = struct{}{}
		c.values = append(c.values, v)
	}
	return c
}

func (Choices) Kind() Kind { return KindChoices }

// Zero returns the first allowed value, or nil for an empty set.
func (c Choices) Zero() any {
	if len(c.values) == 0 {
		return nil
	}
	return c.values[0]
}

// Values returns a copy of the allowed values.
func (c Choices) Values() []any {
	out := make([]any, len(c.values))
	copy(out, c.values)
	return out
}

// Contains reports whether v is a member of the set.
func (c Choices) Contains(v any) bool {
	if !isComparable(v) {
		return false
	}
	_, ok := c.index[choiceKey(v)]
	return ok
}

func (c Choices) Validate(raw any) (any, error) {
	if !c.Contains(raw) {
		return nil, &ValidationError{
			Type: "Choices", Value: raw, Code: CodeInvalidEnum,
			Message: fmt.Sprintf("must be one of %v", c.values),
		}
	}
	return raw, nil
}

// choiceKey folds integer kinds onto int64, or uint64 above math.MaxInt64.
// Other values are their own key.
func choiceKey(v any) any {
	if !isInteger(v) {
		return v
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return u
		}
		return int64(u)
	}
	return rv.Int()
}

func isComparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}

// Struct carries a named bag of values. It performs no validation.
type Struct struct {
	Fields map[string]any
}

// NewStruct copies fields into a Struct.
func NewStruct(fields map[string]any) Struct {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return Struct{Fields: out}
}

func (Struct) Kind() Kind { return KindStruct }

func (Struct) Validate(raw any) (any, error) { return raw, nil }
