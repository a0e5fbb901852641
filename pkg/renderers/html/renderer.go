package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	j "github.com/goccy/go-json"

	"github.com/goliatone/go-formschema/pkg/render"
	rendertemplate "github.com/goliatone/go-formschema/pkg/render/template"
	"github.com/goliatone/go-formschema/pkg/render/template/gotemplate"
)

// Name is the registry name of the HTML renderer.
const Name = "html"

const formTemplate = "templates/form.tmpl"

type Option func(*config)

type config struct {
	engine           string
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	classes          map[string]string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide templates/form.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithEngine selects the template engine by name: gotemplate.EnginePongo2
// (the default) or gotemplate.EngineGoTemplate. Ignored when a template
// renderer is injected.
func WithEngine(name string) Option {
	return func(cfg *config) {
		cfg.engine = strings.TrimSpace(name)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithClass overrides one of the semantic classes (form, header, section,
// field, label, units, help, error, errors).
func WithClass(slot, class string) Option {
	return func(cfg *config) {
		slot = strings.TrimSpace(slot)
		if slot == "" {
			return
		}
		cfg.classes[slot] = strings.TrimSpace(class)
	}
}

// Renderer writes a form snapshot as an HTML fragment.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	classes   map[string]string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), classes: defaultClasses()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.NewNamed(cfg.engine, cfg.templateFS, ".tmpl")
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, classes: cfg.classes}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render applies option values and errors to form and executes the form
// template.
func (r *Renderer) Render(ctx context.Context, form render.FormView, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	applied := render.Apply(form, options)
	data, err := templateData(map[string]any{
		"form":        buildFormContext(applied),
		"classes":     r.classes,
		"theme_style": themeStyle(options.Theme),
		"theme":       options.Theme,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: %w", err)
	}

	result, err := r.templates.RenderTemplate(formTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// templateData flattens the context to plain maps keyed by json names so
// every engine sees the same shape.
func templateData(in map[string]any) (map[string]any, error) {
	raw, err := j.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encode template data: %w", err)
	}
	out := make(map[string]any, len(in))
	if err := j.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode template data: %w", err)
	}
	return out, nil
}
