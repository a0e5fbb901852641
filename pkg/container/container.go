// Package container assembles a schema document into live models, enums,
// value types and views, and resolves field references across them.
package container

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goliatone/go-formschema/pkg/model"
	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/types"
	"github.com/goliatone/go-formschema/pkg/view"
)

// Container owns every object built from one schema document.
type Container struct {
	types      *types.Registry
	models     map[string]*model.Model
	modelOrder []string
	enums      map[string]*model.Enum
	enumOrder  []string
	views      map[string]*view.View
	viewOrder  []string
	normalized *schema.Map
}

// New validates doc, builds enums and registers them as choice types, then
// builds models and views. doc is not modified.
func New(doc *schema.Map, opts ...Option) (*Container, error) {
	if doc == nil {
		return nil, errors.New("container: document is required")
	}
	cfg := applyOptions(opts)

	c := &Container{
		types:  cfg.registry,
		models: make(map[string]*model.Model),
		enums:  make(map[string]*model.Enum),
		views:  make(map[string]*view.View),
	}

	normalizer := schema.NewNormalizer(
		schema.WithEnumPolicy(cfg.enumPolicy),
		schema.WithKnownTypes(cfg.knownTypes()...),
	)
	if err := normalizer.ValidateModels(doc); err != nil {
		return nil, err
	}
	if err := c.buildEnums(doc); err != nil {
		return nil, err
	}
	normalized, err := normalizer.Normalize(doc)
	if err != nil {
		return nil, err
	}
	c.normalized = normalized

	models, err := normalized.Map(schema.KeyModel)
	if err != nil {
		return nil, fmt.Errorf("container: %w", err)
	}
	for _, name := range models.Keys() {
		fields, err := models.Map(name)
		if err != nil {
			return nil, fmt.Errorf("container: model: %w", err)
		}
		m, err := buildModel(c.types, name, fields, cfg)
		if err != nil {
			return nil, err
		}
		c.models[name] = m
		c.modelOrder = append(c.modelOrder, name)
	}

	if err := c.buildViews(doc); err != nil {
		return nil, err
	}
	if cfg.strictViews {
		if err := c.ValidateViews(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// FromDocument decodes and builds a container from a loaded document.
func FromDocument(doc schema.Document, opts ...Option) (*Container, error) {
	raw, err := doc.Decode()
	if err != nil {
		return nil, err
	}
	return New(raw, opts...)
}

func (c *Container) buildEnums(doc *schema.Map) error {
	enums, err := doc.Map(schema.KeyEnum)
	if err != nil {
		return fmt.Errorf("container: %w", err)
	}
	for _, name := range enums.Keys() {
		raw, _ := enums.Get(name)
		pairs, ok := raw.([]any)
		if !ok {
			return fmt.Errorf("container: enum %q: expected an array, got %T", name, raw)
		}
		enum, err := model.NewEnum(name, pairs)
		if err != nil {
			return fmt.Errorf("container: %w", err)
		}
		if err := c.types.Register(name, types.NewChoices(enum.Values()...)); err != nil {
			return fmt.Errorf("container: enum %q: %w", name, err)
		}
		c.enums[name] = enum
		c.enumOrder = append(c.enumOrder, name)
	}
	return nil
}

func (c *Container) buildViews(doc *schema.Map) error {
	if !doc.Has(schema.KeyView) {
		return nil
	}
	views, err := doc.Map(schema.KeyView)
	if err != nil {
		return fmt.Errorf("container: %w", err)
	}
	for _, name := range views.Keys() {
		raw, err := views.Map(name)
		if err != nil {
			return fmt.Errorf("container: view: %w", err)
		}
		spec, err := viewSpec(raw)
		if err != nil {
			return fmt.Errorf("container: view %q: %w", name, err)
		}
		v, err := view.New(name, spec)
		if err != nil {
			return fmt.Errorf("container: %w", err)
		}
		c.views[name] = v
		c.viewOrder = append(c.viewOrder, name)
	}
	return nil
}

func viewSpec(raw *schema.Map) (view.Spec, error) {
	spec := view.Spec{Forms: make(map[view.FormKind][]any)}
	for _, key := range raw.Keys() {
		v, _ := raw.Get(key)
		switch key {
		case "title", "model":
			s, ok := v.(string)
			if !ok {
				return view.Spec{}, fmt.Errorf("%q must be a string, got %T", key, v)
			}
			if key == "title" {
				spec.Title = s
			} else {
				spec.Model = s
			}
		default:
			entries, ok := v.([]any)
			if !ok {
				return view.Spec{}, fmt.Errorf("form %q must be a list, got %T", key, v)
			}
			spec.Forms[view.FormKind(key)] = entries
		}
	}
	return spec, nil
}

// Types exposes the type registry, including one Choices type per enum.
func (c *Container) Types() *types.Registry { return c.types }

// Normalized returns a copy of the converted document.
func (c *Container) Normalized() *schema.Map { return c.normalized.Clone() }

// Model returns the named model.
func (c *Container) Model(name string) (*model.Model, error) {
	m, ok := c.models[name]
	if !ok {
		return nil, model.NewLookupError(model.LookupModel, name, "")
	}
	return m, nil
}

// Enum returns the named enum.
func (c *Container) Enum(name string) (*model.Enum, error) {
	e, ok := c.enums[name]
	if !ok {
		return nil, model.NewLookupError(model.LookupEnum, name, "")
	}
	return e, nil
}

// View returns the named view.
func (c *Container) View(name string) (*view.View, error) {
	v, ok := c.views[name]
	if !ok {
		return nil, model.NewLookupError(model.LookupView, name, "")
	}
	return v, nil
}

// Field returns a field by model and field name.
func (c *Container) Field(modelName, fieldName string) (*model.FieldDefinition, error) {
	m, err := c.Model(modelName)
	if err != nil {
		return nil, err
	}
	return m.Field(fieldName)
}

// SetFieldValue validates and assigns v to modelName.fieldName.
func (c *Container) SetFieldValue(modelName, fieldName string, v any) error {
	field, err := c.Field(modelName, fieldName)
	if err != nil {
		return err
	}
	return field.SetValue(v)
}

// SetFieldRefValue resolves ref and assigns v to it.
func (c *Container) SetFieldRefValue(ref string, v any) error {
	field, err := c.FieldFromRef(ref)
	if err != nil {
		return err
	}
	return field.SetValue(v)
}

func (c *Container) ModelNames() []string { return append([]string(nil), c.modelOrder...) }
func (c *Container) EnumNames() []string  { return append([]string(nil), c.enumOrder...) }
func (c *Container) ViewNames() []string  { return append([]string(nil), c.viewOrder...) }

// Values snapshots every model's field values keyed by model name.
func (c *Container) Values() map[string]map[string]any {
	out := make(map[string]map[string]any, len(c.models))
	for name, m := range c.models {
		out[name] = m.Values()
	}
	return out
}

// ValidateViews resolves every view reference and reports all failures.
func (c *Container) ValidateViews() error {
	var errs []error
	names := c.ViewNames()
	sort.Strings(names)
	for _, name := range names {
		for _, ref := range c.views[name].FieldRefs() {
			if _, err := c.FieldFromRef(ref); err != nil {
				errs = append(errs, fmt.Errorf("container: view %q: %w", name, err))
			}
		}
	}
	return errors.Join(errs...)
}
