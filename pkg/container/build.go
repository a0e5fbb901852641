package container

import (
	"fmt"

	"github.com/goliatone/go-formschema/pkg/model"
	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/types"
)

func buildModel(reg *types.Registry, name string, fields *schema.Map, cfg config) (*model.Model, error) {
	defs := make([]*model.FieldDefinition, 0, fields.Len())
	for _, fieldName := range fields.Keys() {
		props, err := fields.Map(fieldName)
		if err != nil {
			return nil, fmt.Errorf("container: model %q: %w", name, err)
		}
		def, err := buildField(reg, name, fieldName, props, cfg)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	m, err := model.NewModel(name, defs...)
	if err != nil {
		return nil, fmt.Errorf("container: %w", err)
	}
	return m, nil
}

func buildField(reg *types.Registry, modelName, fieldName string, props *schema.Map, cfg config) (*model.FieldDefinition, error) {
	rawType, _ := props.Get(schema.PropType)
	typeName, _ := rawType.(string)
	typ, err := reg.Lookup(typeName)
	if err != nil {
		return nil, &schema.SchemaIntegrityError{
			Model: modelName,
			Field: fieldName,
			Type:  rawType,
			Known: reg.Names(),
		}
	}

	min, hasMin := props.Get(schema.PropMin)
	max, hasMax := props.Get(schema.PropMax)
	if cfg.rangeEnforcement && (hasMin || hasMax) {
		typ, err = ranged(typ, min, max)
		if err != nil {
			return nil, fmt.Errorf("container: %s.%s: %w", modelName, fieldName, err)
		}
	}

	opts := []model.FieldOption{
		model.WithName(fieldName),
		model.WithTypeName(typeName),
	}
	label := stringProp(props, schema.PropLabel)
	if label == "" && cfg.labeler != nil {
		label = cfg.labeler(fieldName)
	}
	opts = append(opts, model.WithLabel(label))
	if tip := stringProp(props, schema.PropToolTip); tip != "" {
		opts = append(opts, model.WithToolTip(tip))
	}
	if hasMin {
		opts = append(opts, model.WithMin(min))
	}
	if hasMax {
		opts = append(opts, model.WithMax(max))
	}

	initial, hasDefault := props.Get(schema.PropDefault)
	if hasDefault {
		opts = append(opts, model.WithDefault(initial))
	} else {
		initial = types.Zero(typ)
	}

	def, err := model.NewFieldDefinition(typ, initial, opts...)
	if err != nil {
		return nil, fmt.Errorf("container: %s: %w", modelName, err)
	}
	return def, nil
}

func stringProp(props *schema.Map, key string) string {
	v, _ := props.Get(key)
	s, _ := v.(string)
	return s
}

// ranged wraps numeric types with the declared bounds. Non numeric types
// keep their min/max as metadata only.
func ranged(typ types.ValueType, min, max any) (types.ValueType, error) {
	switch typ.Kind() {
	case types.KindFloat:
		var opts []types.RangedFloatOption
		if min != nil {
			v, err := (types.Float{}).Validate(min)
			if err != nil {
				return nil, fmt.Errorf("min: %w", err)
			}
			opts = append(opts, types.WithMin(v.(float64)))
		}
		if max != nil {
			v, err := (types.Float{}).Validate(max)
			if err != nil {
				return nil, fmt.Errorf("max: %w", err)
			}
			opts = append(opts, types.WithMax(v.(float64)))
		}
		return types.NewRangedFloat(opts...), nil
	case types.KindInt:
		var opts []types.RangedIntOption
		if min != nil {
			v, ok := min.(int64)
			if !ok {
				return nil, fmt.Errorf("min: expected an integer, got %T", min)
			}
			opts = append(opts, types.WithIntMin(v))
		}
		if max != nil {
			v, ok := max.(int64)
			if !ok {
				return nil, fmt.Errorf("max: expected an integer, got %T", max)
			}
			opts = append(opts, types.WithIntMax(v))
		}
		return types.NewRangedInt(opts...), nil
	}
	return typ, nil
}
