package types

import (
	"fmt"
	"math"
)

// FloatLowest and FloatHighest are the default RangedFloat bounds: the full
// finite float64 range.
const (
	FloatLowest  = -math.MaxFloat64
	FloatHighest = math.MaxFloat64
)

// RangedInt is an Int with optional inclusive bounds.
type RangedInt struct {
	min *int64
	max *int64
}

// RangedIntOption configures a RangedInt.
type RangedIntOption func(*RangedInt)

// WithIntMin sets the inclusive lower bound.
func WithIntMin(v int64) RangedIntOption {
	return func(r *RangedInt) { r.min = &v }
}

// WithIntMax sets the inclusive upper bound.
func WithIntMax(v int64) RangedIntOption {
	return func(r *RangedInt) { r.max = &v }
}

// NewRangedInt builds a RangedInt. With no options it behaves like Int.
func NewRangedInt(opts ...RangedIntOption) RangedInt {
	var r RangedInt
	for _, opt := range opts {
		if opt != nil {
			opt(&r)
		}
	}
	return r
}

func (RangedInt) Kind() Kind { return KindInt }

func (r RangedInt) Zero() any {
	if r.min != nil && *r.min > 0 {
		return *r.min
	}
	if r.max != nil && *r.max < 0 {
		return *r.max
	}
	return int64(0)
}

func (r RangedInt) Bounds() (min, max *float64) {
	if r.min != nil {
		v := float64(*r.min)
		min = &v
	}
	if r.max != nil {
		v := float64(*r.max)
		max = &v
	}
	return min, max
}

func (r RangedInt) Validate(raw any) (any, error) {
	if _, err := (Int{}).Validate(raw); err != nil {
		return nil, renamed(err, "RangedInt")
	}
	if r.min != nil && compareInt(raw, *r.min) < 0 {
		return nil, &ValidationError{
			Type: "RangedInt", Value: raw, Code: CodeTooSmall,
			Message: fmt.Sprintf("must be >= %d", *r.min),
		}
	}
	if r.max != nil && compareInt(raw, *r.max) > 0 {
		return nil, &ValidationError{
			Type: "RangedInt", Value: raw, Code: CodeTooBig,
			Message: fmt.Sprintf("must be <= %d", *r.max),
		}
	}
	return raw, nil
}

// RangedFloat is a Float constrained to [Min, Max].
type RangedFloat struct {
	Min float64
	Max float64
}

// RangedFloatOption configures a RangedFloat.
type RangedFloatOption func(*RangedFloat)

// WithMin sets the inclusive lower bound.
func WithMin(v float64) RangedFloatOption {
	return func(r *RangedFloat) { r.Min = v }
}

// WithMax sets the inclusive upper bound.
func WithMax(v float64) RangedFloatOption {
	return func(r *RangedFloat) { r.Max = v }
}

// NewRangedFloat builds a RangedFloat spanning FloatLowest..FloatHighest
// unless narrowed by options.
func NewRangedFloat(opts ...RangedFloatOption) RangedFloat {
	r := RangedFloat{Min: FloatLowest, Max: FloatHighest}
	for _, opt := range opts {
		if opt != nil {
			opt(&r)
		}
	}
	return r
}

func (RangedFloat) Kind() Kind { return KindFloat }

func (r RangedFloat) Zero() any {
	switch {
	case r.Min > 0:
		return r.Min
	case r.Max < 0:
		return r.Max
	}
	return float64(0)
}

func (r RangedFloat) Bounds() (min, max *float64) {
	if r.Min != FloatLowest {
		v := r.Min
		min = &v
	}
	if r.Max != FloatHighest {
		v := r.Max
		max = &v
	}
	return min, max
}

func (r RangedFloat) Validate(raw any) (any, error) {
	v, err := toFloat("RangedFloat", raw)
	if err != nil {
		return nil, err
	}
	if v < r.Min {
		return nil, &ValidationError{
			Type: "RangedFloat", Value: raw, Code: CodeTooSmall,
			Message: fmt.Sprintf("must be >= %g", r.Min),
		}
	}
	if v > r.Max {
		return nil, &ValidationError{
			Type: "RangedFloat", Value: raw, Code: CodeTooBig,
			Message: fmt.Sprintf("must be <= %g", r.Max),
		}
	}
	return v, nil
}
