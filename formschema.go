// Package formschema is the quick start entry point: load a schema document,
// build a container, and render or export it.
package formschema

import (
	"context"
	"io/fs"

	internalLoader "github.com/goliatone/go-formschema/internal/loader"
	"github.com/goliatone/go-formschema/pkg/container"
	"github.com/goliatone/go-formschema/pkg/orchestrator"
	"github.com/goliatone/go-formschema/pkg/render"
	"github.com/goliatone/go-formschema/pkg/renderers/html"
	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/types"
	"github.com/goliatone/go-formschema/pkg/view"
)

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface validation errors.
type RenderOptions = render.RenderOptions

// NewLoader exposes the built-in file/fs.FS/HTTP loader.
func NewLoader(options ...schema.LoaderOption) schema.Loader {
	return internalLoader.New(schema.NewLoaderOptions(options...))
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Load reads source with the default loader and builds a container.
func Load(ctx context.Context, source schema.Source, options ...container.Option) (*container.Container, error) {
	doc, err := NewLoader().Load(ctx, source)
	if err != nil {
		return nil, err
	}
	return container.FromDocument(doc, options...)
}

// Normalize decodes raw JSON or YAML and returns the normalized document with
// the built-in type names accepted.
func Normalize(raw []byte, options ...schema.NormalizerOption) (*schema.Map, error) {
	doc, err := schema.Decode(raw)
	if err != nil {
		return nil, err
	}
	opts := append([]schema.NormalizerOption{schema.WithKnownTypes(types.BuiltinNames()...)}, options...)
	return schema.NewNormalizer(opts...).Normalize(doc)
}

// GenerateHTML loads source and renders the named view form with the HTML
// renderer. It is the simplest entry point for callers that just want markup.
func GenerateHTML(ctx context.Context, source schema.Source, viewName string, kind view.FormKind, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		View:     viewName,
		Form:     kind,
		Renderer: html.Name,
	})
}

// EmbeddedTemplates exposes the HTML renderer's default template bundle.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
