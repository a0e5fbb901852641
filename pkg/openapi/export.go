// Package openapi exports container models and enums as OpenAPI 3 component
// schemas. The generated document is loaded and validated with kin-openapi
// before it is returned.
package openapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formschema/pkg/container"
	"github.com/goliatone/go-formschema/pkg/model"
	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/types"
)

// Version is the OpenAPI version written into exported documents.
const Version = "3.0.3"

// ExtensionEnumLabels carries enum labels alongside enum values.
const ExtensionEnumLabels = "x-enum-labels"

// Option customises the export.
type Option func(*options)

type options struct {
	title       string
	version     string
	description string
}

// WithTitle sets info.title. Blank titles keep the default.
func WithTitle(title string) Option {
	return func(o *options) {
		if title != "" {
			o.title = title
		}
	}
}

// WithVersion sets info.version. Blank versions keep the default.
func WithVersion(version string) Option {
	return func(o *options) {
		if version != "" {
			o.version = version
		}
	}
}

// WithDescription sets info.description.
func WithDescription(description string) Option {
	return func(o *options) { o.description = description }
}

// Result is a validated export.
type Result struct {
	Doc  *openapi3.T
	JSON []byte
}

// Export builds one object schema per model and one schema per enum.
func Export(ctx context.Context, c *container.Container, opts ...Option) (*Result, error) {
	if c == nil {
		return nil, errors.New("openapi: container is required")
	}
	o := options{title: "formschema", version: "1.0.0"}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	schemas := schema.NewMap()
	for _, name := range c.EnumNames() {
		enum, err := c.Enum(name)
		if err != nil {
			return nil, err
		}
		schemas.Set(name, enumSchema(enum))
	}
	for _, name := range c.ModelNames() {
		if schemas.Has(name) {
			return nil, fmt.Errorf("openapi: model %q collides with an enum of the same name", name)
		}
		m, err := c.Model(name)
		if err != nil {
			return nil, err
		}
		schemas.Set(name, modelSchema(c, m))
	}

	info := schema.NewMap()
	info.Set("title", o.title)
	info.Set("version", o.version)
	if o.description != "" {
		info.Set("description", o.description)
	}
	components := schema.NewMap()
	components.Set("schemas", schemas)

	doc := schema.NewMap()
	doc.Set("openapi", Version)
	doc.Set("info", info)
	doc.Set("paths", schema.NewMap())
	doc.Set("components", components)

	payload, err := schema.EncodeJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("openapi: %w", err)
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(payload)
	if err != nil {
		return nil, fmt.Errorf("openapi: load export: %w", err)
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("openapi: validate export: %w", err)
	}
	return &Result{Doc: spec, JSON: payload}, nil
}

// SchemaRef returns the component reference for name.
func SchemaRef(name string) string {
	return "#/components/schemas/" + name
}

func enumSchema(enum *model.Enum) *schema.Map {
	values := enum.Values()
	labels := make([]any, 0, enum.Len())
	for _, entry := range enum.Entries() {
		labels = append(labels, entry.Label())
	}

	out := schema.NewMap()
	if typ := jsonType(values); typ != "" {
		out.Set("type", typ)
	}
	out.Set("enum", values)
	out.Set(ExtensionEnumLabels, labels)
	return out
}

func modelSchema(c *container.Container, m *model.Model) *schema.Map {
	props := schema.NewMap()
	for _, field := range m.Fields() {
		props.Set(field.Name(), fieldSchema(c, field))
	}
	out := schema.NewMap()
	out.Set("type", "object")
	out.Set("properties", props)
	return out
}

func fieldSchema(c *container.Container, field *model.FieldDefinition) *schema.Map {
	out := schema.NewMap()
	typ := field.Type()

	switch typ.Kind() {
	case types.KindBoolean:
		out.Set("type", "boolean")
	case types.KindFloat:
		out.Set("type", "number")
		out.Set("format", "double")
	case types.KindInt:
		out.Set("type", "integer")
		out.Set("format", "int64")
	case types.KindString:
		out.Set("type", "string")
		if _, ok := typ.(types.OptionalString); ok {
			out.Set("nullable", true)
		}
	case types.KindChoices:
		if _, err := c.Enum(field.TypeName()); err == nil {
			ref := schema.NewMap()
			ref.Set("$ref", SchemaRef(field.TypeName()))
			out.Set("allOf", []any{ref})
		} else if e, ok := typ.(types.Enumerated); ok {
			out.Set("enum", e.Values())
		}
	case types.KindStruct:
		out.Set("type", "object")
	}

	if label := field.Label(); label != "" {
		out.Set("title", label)
	}
	if tip := field.ToolTip(); tip != "" {
		out.Set("description", tip)
	}
	if def, ok := field.Default(); ok && def != nil {
		if v, err := typ.Validate(def); err == nil {
			out.Set("default", v)
		}
	}
	if typ.Kind() == types.KindFloat || typ.Kind() == types.KindInt {
		if v, ok := number(field.Min()); ok {
			out.Set("minimum", v)
		}
		if v, ok := number(field.Max()); ok {
			out.Set("maximum", v)
		}
	}
	return out
}

func number(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	f, err := (types.Float{}).Validate(v)
	if err != nil {
		return 0, false
	}
	return f.(float64), true
}

func jsonType(values []any) string {
	kind := ""
	for _, v := range values {
		var k string
		switch v.(type) {
		case string:
			k = "string"
		case bool:
			k = "boolean"
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			k = "integer"
		case float32, float64:
			k = "number"
		default:
			return ""
		}
		switch {
		case kind == "":
			kind = k
		case kind == k:
		case (kind == "integer" && k == "number") || (kind == "number" && k == "integer"):
			kind = "number"
		default:
			return ""
		}
	}
	return kind
}
