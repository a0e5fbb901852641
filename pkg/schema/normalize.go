package schema

import (
	"fmt"
	"sort"
)

// Top level document keys.
const (
	KeyEnum  = "enum"
	KeyModel = "model"
	KeyView  = "view"
)

// Converted property names, indexed by array position.
var (
	enumProperties  = []string{"value", "label"}
	fieldProperties = []string{"label", "type", "default", "toolTip", "min", "max"}
)

// Field property names produced by NormalizeModels.
const (
	PropLabel   = "label"
	PropType    = "type"
	PropDefault = "default"
	PropToolTip = "toolTip"
	PropMin     = "min"
	PropMax     = "max"
)

// EnumPolicy decides how the value arrays of one enum are converted.
type EnumPolicy string

const (
	// EnumLastWins keeps only the last [value, label] array of each enum.
	EnumLastWins EnumPolicy = "last"
	// EnumMergeAll converts every array into a list of {value, label}.
	EnumMergeAll EnumPolicy = "merge"
)

// ParseEnumPolicy accepts "last", "merge" or "" (last).
func ParseEnumPolicy(raw string) (EnumPolicy, error) {
	switch EnumPolicy(raw) {
	case "", EnumLastWins:
		return EnumLastWins, nil
	case EnumMergeAll:
		return EnumMergeAll, nil
	}
	return "", fmt.Errorf("schema: unknown enum policy %q", raw)
}

// Normalizer converts the positional array form of a schema document into
// named properties.
type Normalizer struct {
	policy EnumPolicy
	known  []string
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithEnumPolicy selects the enum conversion policy.
func WithEnumPolicy(policy EnumPolicy) NormalizerOption {
	return func(n *Normalizer) {
		if policy != "" {
			n.policy = policy
		}
	}
}

// WithKnownTypes lets model fields reference the given type names in
// addition to the document enums.
func WithKnownTypes(names ...string) NormalizerOption {
	return func(n *Normalizer) {
		n.known = append(n.known, names...)
	}
}

// NewNormalizer returns a Normalizer using EnumLastWins by default.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{policy: EnumLastWins}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	return n
}

// Policy reports the configured enum policy.
func (n *Normalizer) Policy() EnumPolicy { return n.policy }

// Normalize validates the raw document and returns a converted copy. The
// input is never modified. Keys other than enum and model are copied as is.
func (n *Normalizer) Normalize(doc *Map) (*Map, error) {
	if err := n.ValidateModels(doc); err != nil {
		return nil, err
	}
	enums, models, err := sections(doc)
	if err != nil {
		return nil, err
	}
	convertedEnums, err := n.NormalizeEnums(enums)
	if err != nil {
		return nil, err
	}
	convertedModels, err := n.NormalizeModels(models)
	if err != nil {
		return nil, err
	}

	out := doc.Clone()
	out.Set(KeyEnum, convertedEnums)
	out.Set(KeyModel, convertedModels)
	return out, nil
}

// ValidateModels checks, on the raw arrays, that every field type names an
// enum of the document or a known type.
func (n *Normalizer) ValidateModels(doc *Map) error {
	enums, models, err := sections(doc)
	if err != nil {
		return err
	}
	accepted := make(map[string]struct{}, enums.Len()+len(n.known))
	for _, name := range enums.Keys() {
		accepted[name] = struct{}{}
	}
	for _, name := range n.known {
		accepted[name] = struct{}{}
	}

	for _, modelName := range models.Keys() {
		fields, err := models.Map(modelName)
		if err != nil {
			return fmt.Errorf("schema: model: %w", err)
		}
		for _, fieldName := range fields.Keys() {
			raw, _ := fields.Get(fieldName)
			arr, ok := raw.([]any)
			if !ok {
				return fmt.Errorf("schema: model %q field %q: expected an array, got %T", modelName, fieldName, raw)
			}
			var typeName any
			if len(arr) > 1 {
				typeName = arr[1]
			}
			name, isString := typeName.(string)
			if _, ok := accepted[name]; !isString || !ok {
				return &SchemaIntegrityError{
					Model: modelName,
					Field: fieldName,
					Type:  typeName,
					Known: acceptedNames(enums, n.known),
				}
			}
		}
	}
	return nil
}

// NormalizeEnums converts the enum section according to the policy. Enums
// with no arrays are omitted under EnumLastWins.
func (n *Normalizer) NormalizeEnums(enums *Map) (*Map, error) {
	out := NewMap()
	for _, name := range enums.Keys() {
		raw, _ := enums.Get(name)
		arrays, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("schema: enum %q: expected an array of [value, label] arrays, got %T", name, raw)
		}
		var merged []any
		for i, item := range arrays {
			arr, ok := item.([]any)
			if !ok {
				return nil, fmt.Errorf("schema: enum %q entry %d: expected an array, got %T", name, i, item)
			}
			converted := arrayToMap(arr, enumProperties)
			switch n.policy {
			case EnumMergeAll:
				merged = append(merged, converted)
			default:
				out.Set(name, converted)
			}
		}
		if n.policy == EnumMergeAll {
			if merged == nil {
				merged = []any{}
			}
			out.Set(name, merged)
		}
	}
	return out, nil
}

// NormalizeModels converts every field array into a property map. Arrays
// shorter than six elements simply omit the trailing properties.
func (n *Normalizer) NormalizeModels(models *Map) (*Map, error) {
	out := NewMap()
	for _, modelName := range models.Keys() {
		fields, err := models.Map(modelName)
		if err != nil {
			return nil, fmt.Errorf("schema: model: %w", err)
		}
		converted := NewMap()
		for _, fieldName := range fields.Keys() {
			raw, _ := fields.Get(fieldName)
			arr, ok := raw.([]any)
			if !ok {
				return nil, fmt.Errorf("schema: model %q field %q: expected an array, got %T", modelName, fieldName, raw)
			}
			converted.Set(fieldName, arrayToMap(arr, fieldProperties))
		}
		out.Set(modelName, converted)
	}
	return out, nil
}

func arrayToMap(arr []any, props []string) *Map {
	m := NewMap()
	for i, v := range arr {
		if i >= len(props) {
			break
		}
		m.Set(props[i], cloneValue(v))
	}
	return m
}

func sections(doc *Map) (enums, models *Map, err error) {
	if doc == nil {
		return nil, nil, fmt.Errorf("schema: document is nil")
	}
	if enums, err = doc.Map(KeyEnum); err != nil {
		return nil, nil, fmt.Errorf("schema: %w", err)
	}
	if models, err = doc.Map(KeyModel); err != nil {
		return nil, nil, fmt.Errorf("schema: %w", err)
	}
	return enums, models, nil
}

func acceptedNames(enums *Map, known []string) []string {
	names := enums.Keys()
	extra := append([]string(nil), known...)
	sort.Strings(extra)
	return append(names, extra...)
}
