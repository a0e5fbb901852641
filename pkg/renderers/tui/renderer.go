package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"

	j "github.com/goccy/go-json"

	"github.com/goliatone/go-formschema/pkg/render"
)

// Name is the registry name of the terminal renderer.
const Name = "tui"

// Renderer implements render.Renderer by prompting for every field of the
// form in order and serializing the answers.
type Renderer struct {
	settings
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) *Renderer {
	return &Renderer{settings: applyOptions(options)}
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatPrettyText {
		return "text/plain; charset=utf-8"
	}
	return "application/json"
}

// Render prompts for each field, prefilled with option values, and returns
// the collected answers keyed by field reference.
func (r *Renderer) Render(ctx context.Context, form render.FormView, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, ErrNoDriver
	}

	applied := render.Apply(form, opts)
	values := make(map[string]any)
	if err := (prompter{r.settings}).form(ctx, applied, values); err != nil {
		return nil, err
	}

	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}
	return r.serialize(values)
}

func (r *Renderer) serialize(values map[string]any) ([]byte, error) {
	if r.outputFormat != OutputFormatPrettyText {
		out, err := j.MarshalIndent(values, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("tui: encode values: %w", err)
		}
		return append(out, '\n'), nil
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	for _, key := range keys {
		fmt.Fprintf(&buf, "%s = %s\n", key, render.FormatValue(values[key]))
	}
	return buf.Bytes(), nil
}
