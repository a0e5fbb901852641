package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formschema/pkg/render"
)

// Transformer mutates a form snapshot before it is rendered.
type Transformer interface {
	Transform(ctx context.Context, form *render.FormView) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, form *render.FormView) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, form *render.FormView) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, form)
}

// PresetTransformer applies declarative overrides loaded from a JSON or YAML
// document:
//
//	title: Dog profile
//	fields:
//	  dog.breed:
//	    label: Breed name
//	    widget: textarea
type PresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Title  string                `yaml:"title"`
	Fields map[string]fieldPatch `yaml:"fields"`
}

type fieldPatch struct {
	Label   string `yaml:"label"`
	ToolTip string `yaml:"toolTip"`
	Units   string `yaml:"units"`
	Widget  string `yaml:"widget"`
}

// NewPresetTransformer constructs a transformer from raw JSON or YAML bytes.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	var document presetDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("preset transformer: parse document: %w", err)
	}
	return &PresetTransformer{document: document}, nil
}

// NewPresetTransformerFromFS loads a preset document from the provided
// filesystem path.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the patches. Every patched reference must be on the form.
func (t *PresetTransformer) Transform(ctx context.Context, form *render.FormView) error {
	if form == nil {
		return errors.New("preset transformer: form is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.document.Title != "" {
		form.Title = t.document.Title
	}

	applied := make(map[string]bool, len(t.document.Fields))
	form.Walk(func(f *render.Field) {
		patch, ok := t.document.Fields[f.Ref]
		if !ok {
			return
		}
		applyFieldPatch(f, patch)
		applied[f.Ref] = true
	})
	for ref := range t.document.Fields {
		if !applied[ref] {
			return fmt.Errorf("preset transformer: field %q not found", ref)
		}
	}
	return nil
}

func applyFieldPatch(field *render.Field, patch fieldPatch) {
	if patch.Label != "" {
		field.Label = patch.Label
	}
	if patch.ToolTip != "" {
		field.ToolTip = patch.ToolTip
	}
	if patch.Units != "" {
		field.Units = patch.Units
	}
	if strings.TrimSpace(patch.Widget) != "" {
		field.Widget = strings.TrimSpace(patch.Widget)
	}
}
