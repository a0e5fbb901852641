package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"

	"github.com/goliatone/go-formschema/pkg/render"
	"github.com/goliatone/go-formschema/pkg/types"
	"github.com/goliatone/go-formschema/pkg/widgets"
)

// prompter asks for one field at a time and loops until the answer parses
// and validates.
type prompter struct {
	settings
}

func (p prompter) form(ctx context.Context, form render.FormView, values map[string]any) error {
	for _, msg := range form.FormErrors {
		if err := p.info(ctx, p.theme.ErrorPrefix+msg); err != nil {
			return err
		}
	}
	if err := p.fields(ctx, form.Fields, values); err != nil {
		return err
	}
	return p.pages(ctx, form.Pages, values)
}

func (p prompter) pages(ctx context.Context, pages []render.Page, values map[string]any) error {
	for _, page := range pages {
		if err := p.info(ctx, p.theme.PagePrefix+page.Name); err != nil {
			return err
		}
		if err := p.fields(ctx, page.Fields, values); err != nil {
			return err
		}
		if err := p.pages(ctx, page.Pages, values); err != nil {
			return err
		}
	}
	return nil
}

func (p prompter) fields(ctx context.Context, fields []render.Field, values map[string]any) error {
	for _, field := range fields {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, msg := range field.Errors {
			if err := p.info(ctx, fmt.Sprintf("%s%s: %s", p.theme.ErrorPrefix, field.Label, msg)); err != nil {
				return err
			}
		}
		v, err := p.field(ctx, field)
		if err != nil {
			return err
		}
		values[field.Ref] = v
	}
	return nil
}

func (p prompter) field(ctx context.Context, field render.Field) (any, error) {
	help := field.ToolTip
	if field.Units != "" {
		help = strings.TrimSpace(help + " (" + field.Units + ")")
	}

	switch {
	case field.Kind == string(types.KindBoolean):
		current, _ := field.Value.(bool)
		answer, err := p.driver.Confirm(ctx, ConfirmConfig{Message: field.Label, Default: current, Help: help})
		if err != nil {
			return nil, err
		}
		return p.validate(field, answer)
	case len(field.Choices) > 0:
		return p.choice(ctx, field, help)
	}

	for {
		var (
			raw string
			err error
		)
		if field.Widget == widgets.WidgetTextArea || field.Widget == widgets.WidgetJSON {
			raw, err = p.driver.TextArea(ctx, TextAreaConfig{Message: field.Label, Default: field.Display, Help: help})
		} else {
			raw, err = p.driver.Input(ctx, InputConfig{
				Message:   field.Label,
				Default:   field.Display,
				Help:      help,
				Validator: func(s string) error { _, err := p.parse(field, s); return err },
			})
		}
		if err != nil {
			return nil, err
		}
		v, err := p.parse(field, raw)
		if err == nil {
			return v, nil
		}
		if err := p.info(ctx, fmt.Sprintf("%sInvalid %s: %v", p.theme.ErrorPrefix, field.Label, err)); err != nil {
			return nil, err
		}
	}
}

func (p prompter) choice(ctx context.Context, field render.Field, help string) (any, error) {
	options := make([]string, len(field.Choices))
	selected := 0
	for i, c := range field.Choices {
		options[i] = c.Label
		if c.Label == "" {
			options[i] = c.Display
		}
		if c.Selected {
			selected = i
		}
	}
	for {
		idx, err := p.driver.Select(ctx, SelectConfig{
			Message:      field.Label,
			Options:      options,
			DefaultIndex: selected,
			Help:         help,
		})
		if err != nil {
			return nil, err
		}
		if idx >= 0 && idx < len(field.Choices) {
			return p.validate(field, field.Choices[idx].Value)
		}
		if err := p.info(ctx, fmt.Sprintf("%sInvalid %s: unknown option", p.theme.ErrorPrefix, field.Label)); err != nil {
			return nil, err
		}
	}
}

// parse converts text input by field kind, then runs the field definition's
// validation when a container is configured.
func (p prompter) parse(field render.Field, raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	var v any
	switch types.Kind(field.Kind) {
	case types.KindFloat:
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", trimmed)
		}
		v = f
	case types.KindInt:
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", trimmed)
		}
		v = n
	case types.KindStruct:
		var decoded any
		if trimmed != "" {
			if err := j.Unmarshal([]byte(trimmed), &decoded); err != nil {
				return nil, fmt.Errorf("invalid JSON: %w", err)
			}
		}
		v = decoded
	default:
		v = raw
	}
	return p.validate(field, v)
}

func (p prompter) validate(field render.Field, v any) (any, error) {
	if p.container == nil {
		return v, nil
	}
	def, err := p.container.FieldFromRef(field.Ref)
	if err != nil {
		return nil, err
	}
	return def.Validate(v)
}

func (p prompter) info(ctx context.Context, msg string) error {
	return p.driver.Info(ctx, p.theme.InfoPrefix+msg)
}
