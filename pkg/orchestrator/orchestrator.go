package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	theme "github.com/goliatone/go-theme"

	internalLoader "github.com/goliatone/go-formschema/internal/loader"
	"github.com/goliatone/go-formschema/pkg/container"
	"github.com/goliatone/go-formschema/pkg/render"
	"github.com/goliatone/go-formschema/pkg/renderers/html"
	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/view"
	"github.com/goliatone/go-formschema/pkg/widgets"
)

const defaultRendererName = html.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom document loader.
func WithLoader(loader schema.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithWidgetRegistry injects the widget registry used to snapshot forms.
func WithWidgetRegistry(reg *widgets.Registry) Option {
	return func(o *Orchestrator) {
		o.widgets = reg
	}
}

// WithContainerOptions forwards options to container.New for every loaded
// document.
func WithContainerOptions(opts ...container.Option) Option {
	return func(o *Orchestrator) {
		o.containerOpts = append(o.containerOpts, opts...)
	}
}

// WithTransformer registers a Transformer that can adjust form snapshots
// before rendering. Transformers run in registration order.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		if t != nil {
			o.transformers = append(o.transformers, t)
		}
	}
}

// WithThemeSelector resolves theme/variant choices ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themes = selector
	}
}

// WithThemeDefaults sets the theme and variant used when a request names
// none.
func WithThemeDefaults(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = name
		o.defaultVariant = variant
	}
}

// WithLogger sets the logger for pipeline stages. Defaults to discarding.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates the full pipeline from schema document to rendered
// output. It applies defaults (file/HTTP loader, HTML renderer, built-in
// widgets) while remaining open to dependency injection.
type Orchestrator struct {
	loader          schema.Loader
	registry        *render.Registry
	widgets         *widgets.Registry
	defaultRenderer string
	containerOpts   []container.Option
	transformers    []Transformer
	themes          theme.ThemeSelector
	defaultTheme    string
	defaultVariant  string
	logger          *slog.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render one view form.
type Request struct {
	// Source identifies where the schema document lives. Optional when
	// Document or Container is supplied.
	Source schema.Source

	// Document bypasses the loader when the payload is already in memory.
	Document *schema.Document

	// Container bypasses loading and building entirely.
	Container *container.Container

	// View names the view to render. Required.
	View string

	// Form selects the form kind. Defaults to basic.
	Form view.FormKind

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant are passed to the theme selector.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries prefilled values and errors. Theme is filled in
	// from the selector when left nil.
	RenderOptions render.RenderOptions
}

// Generate executes the loader → container → snapshot → renderer sequence and
// returns the rendered bytes (HTML for the default renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if req.View == "" {
		return nil, errors.New("orchestrator: view is required")
	}
	kind := req.Form
	if kind == "" {
		kind = view.FormBasic
	}

	c, err := o.resolveContainer(ctx, req)
	if err != nil {
		return nil, err
	}

	form, err := render.Build(c, req.View, kind, render.WithWidgets(o.widgets))
	if err != nil {
		return nil, fmt.Errorf("orchestrator: build form: %w", err)
	}
	for _, t := range o.transformers {
		if err := t.Transform(ctx, &form); err != nil {
			return nil, fmt.Errorf("orchestrator: transform form: %w", err)
		}
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	opts := req.RenderOptions
	if opts.Theme == nil {
		opts.Theme, err = o.resolveTheme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, err
		}
	}

	o.logger.Debug("rendering form",
		slog.String("view", req.View),
		slog.String("form", string(kind)),
		slog.String("renderer", renderer.Name()),
	)
	output, err := renderer.Render(ctx, form, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Load reads source and builds a container with the configured options.
func (o *Orchestrator) Load(ctx context.Context, source schema.Source) (*container.Container, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if source == nil {
		return nil, errors.New("orchestrator: source is required")
	}
	doc, err := o.loader.Load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return o.build(doc)
}

func (o *Orchestrator) resolveContainer(ctx context.Context, req Request) (*container.Container, error) {
	if req.Container != nil {
		return req.Container, nil
	}
	if req.Document != nil {
		return o.build(*req.Document)
	}
	if req.Source == nil {
		return nil, errors.New("orchestrator: source, document or container is required")
	}
	return o.Load(ctx, req.Source)
}

func (o *Orchestrator) build(doc schema.Document) (*container.Container, error) {
	c, err := container.FromDocument(doc, o.containerOpts...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: build container: %w", err)
	}
	o.logger.Debug("container built",
		slog.String("location", doc.Location()),
		slog.Any("models", c.ModelNames()),
		slog.Any("views", c.ViewNames()),
	)
	return c, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	renderer, err := o.registry.Default()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.loader == nil {
		o.loader = internalLoader.New(schema.NewLoaderOptions())
	}
	if o.widgets == nil {
		o.widgets = widgets.NewRegistry()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := html.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
