package tui

import (
	"context"
	"fmt"
	"sort"

	"github.com/goliatone/go-formschema/pkg/container"
	"github.com/goliatone/go-formschema/pkg/render"
	"github.com/goliatone/go-formschema/pkg/view"
)

// Editor prompts for a view form and commits each answer to the container.
type Editor struct {
	settings
}

// NewEditor binds an editor to c. Answers are always validated against c.
func NewEditor(c *container.Container, options ...Option) (*Editor, error) {
	if c == nil {
		return nil, fmt.Errorf("tui: container is required")
	}
	s := applyOptions(append(options, WithContainer(c)))
	return &Editor{settings: s}, nil
}

// Edit prompts for every field of the view form and writes the answers back
// through the container. Every answer is validated before the first one is
// committed, so a failure leaves the container unchanged.
func (e *Editor) Edit(ctx context.Context, viewName string, kind view.FormKind) (map[string]any, error) {
	if e.driver == nil {
		return nil, ErrNoDriver
	}
	form, err := render.Build(e.container, viewName, kind)
	if err != nil {
		return nil, err
	}

	values := make(map[string]any)
	if err := (prompter{e.settings}).form(ctx, form, values); err != nil {
		return nil, err
	}

	if e.submitTransformer != nil {
		if values, err = e.submitTransformer(values); err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}

	refs := make([]string, 0, len(values))
	for ref := range values {
		refs = append(refs, ref)
	}
	sort.Strings(refs)

	staged := make(map[string]any, len(refs))
	for _, ref := range refs {
		field, err := e.container.FieldFromRef(ref)
		if err != nil {
			return nil, fmt.Errorf("tui: %w", err)
		}
		v, err := field.Validate(values[ref])
		if err != nil {
			return nil, fmt.Errorf("tui: %s: %w", ref, err)
		}
		staged[ref] = v
	}
	for _, ref := range refs {
		if err := e.container.SetFieldRefValue(ref, staged[ref]); err != nil {
			return nil, fmt.Errorf("tui: commit %s: %w", ref, err)
		}
	}
	return values, nil
}
