package render

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/goliatone/go-formschema/pkg/container"
	"github.com/goliatone/go-formschema/pkg/model"
	"github.com/goliatone/go-formschema/pkg/types"
	"github.com/goliatone/go-formschema/pkg/view"
	"github.com/goliatone/go-formschema/pkg/widgets"
)

// FormView is a render-ready snapshot of one view form. Exactly one of
// Fields and Pages is populated, following the form content kind.
type FormView struct {
	View       string   `json:"view"`
	Title      string   `json:"title"`
	Kind       string   `json:"kind"`
	Model      string   `json:"model"`
	Fields     []Field  `json:"fields,omitempty"`
	Pages      []Page   `json:"pages,omitempty"`
	FormErrors []string `json:"formErrors,omitempty"`
}

// Page is a named group of fields or nested pages.
type Page struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields,omitempty"`
	Pages  []Page  `json:"pages,omitempty"`
}

// Field describes one referenced field.
type Field struct {
	Ref     string   `json:"ref"`
	Model   string   `json:"model"`
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	ToolTip string   `json:"toolTip,omitempty"`
	Units   string   `json:"units,omitempty"`
	Type    string   `json:"type"`
	Kind    string   `json:"kind"`
	Widget  string   `json:"widget"`
	Value   any      `json:"value"`
	Display string   `json:"display"`
	Min     any      `json:"min,omitempty"`
	Max     any      `json:"max,omitempty"`
	Choices []Choice `json:"choices,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// Choice is one selectable option of a choices field.
type Choice struct {
	Value    any    `json:"value"`
	Display  string `json:"display"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	widgets *widgets.Registry
}

// WithWidgets selects the widget registry. Defaults to widgets.NewRegistry.
func WithWidgets(reg *widgets.Registry) BuildOption {
	return func(c *buildConfig) {
		if reg != nil {
			c.widgets = reg
		}
	}
}

// Build snapshots the form of kind in viewName. Every field reference must
// resolve.
func Build(c *container.Container, viewName string, kind view.FormKind, opts ...BuildOption) (FormView, error) {
	if c == nil {
		return FormView{}, errors.New("render: container is required")
	}
	cfg := buildConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.widgets == nil {
		cfg.widgets = widgets.NewRegistry()
	}

	v, err := c.View(viewName)
	if err != nil {
		return FormView{}, fmt.Errorf("render: %w", err)
	}
	form, err := v.Form(kind)
	if err != nil {
		return FormView{}, fmt.Errorf("render: %w", err)
	}

	out := FormView{
		View:  v.Name(),
		Title: v.Title(),
		Kind:  string(kind),
		Model: v.DefaultModelName(),
	}
	if out.Title == "" {
		out.Title = model.DefaultLabeler(v.Name())
	}

	b := builder{c: c, widgets: cfg.widgets}
	switch form.Kind() {
	case view.ContentPages:
		out.Pages, err = b.pages(form.Pages())
	default:
		out.Fields, err = b.fields(form.Refs())
	}
	if err != nil {
		return FormView{}, err
	}
	return out, nil
}

type builder struct {
	c       *container.Container
	widgets *widgets.Registry
}

func (b builder) pages(pages []*view.Page) ([]Page, error) {
	out := make([]Page, 0, len(pages))
	for _, p := range pages {
		page := Page{Name: p.Name()}
		var err error
		if p.Kind() == view.ContentPages {
			page.Pages, err = b.pages(p.Pages())
		} else {
			page.Fields, err = b.fields(p.Refs())
		}
		if err != nil {
			return nil, err
		}
		out = append(out, page)
	}
	return out, nil
}

func (b builder) fields(refs []string) ([]Field, error) {
	out := make([]Field, 0, len(refs))
	for _, ref := range refs {
		field, err := b.field(ref)
		if err != nil {
			return nil, err
		}
		out = append(out, field)
	}
	return out, nil
}

func (b builder) field(ref string) (Field, error) {
	def, err := b.c.FieldFromRef(ref)
	if err != nil {
		return Field{}, fmt.Errorf("render: %w", err)
	}
	segments, _ := model.SplitFieldRef(ref)

	f := Field{
		Ref:     ref,
		Model:   segments[len(segments)-2],
		Name:    def.Name(),
		Label:   def.Label(),
		ToolTip: def.ToolTip(),
		Units:   def.Units(),
		Type:    def.TypeName(),
		Kind:    string(def.Type().Kind()),
		Value:   def.Value(),
		Display: FormatValue(def.Value()),
		Min:     def.Min(),
		Max:     def.Max(),
	}
	if f.Label == "" {
		f.Label = model.DefaultLabeler(def.Name())
	}
	if widget, ok := b.widgets.Resolve(ref, def); ok {
		f.Widget = widget
	}
	f.Choices = b.choices(def)
	return f, nil
}

func (b builder) choices(def *model.FieldDefinition) []Choice {
	current := FormatValue(def.Value())
	if enum, err := b.c.Enum(def.TypeName()); err == nil {
		out := make([]Choice, 0, enum.Len())
		for _, entry := range enum.Entries() {
			display := FormatValue(entry.Value())
			out = append(out, Choice{
				Value:    entry.Value(),
				Display:  display,
				Label:    entry.Label(),
				Selected: display == current,
			})
		}
		return out
	}
	e, ok := def.Type().(types.Enumerated)
	if !ok {
		return nil
	}
	values := e.Values()
	out := make([]Choice, 0, len(values))
	for _, v := range values {
		display := FormatValue(v)
		out = append(out, Choice{Value: v, Display: display, Label: display, Selected: display == current})
	}
	return out
}

// FormatValue renders a field value as form input text.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

// Walk calls fn for every field of the form, depth first.
func (f *FormView) Walk(fn func(*Field)) {
	for i := range f.Fields {
		fn(&f.Fields[i])
	}
	walkPages(f.Pages, fn)
}

func walkPages(pages []Page, fn func(*Field)) {
	for i := range pages {
		for j := range pages[i].Fields {
			fn(&pages[i].Fields[j])
		}
		walkPages(pages[i].Pages, fn)
	}
}

// Clone copies the snapshot so callers can adjust fields without affecting
// the original.
func (f FormView) Clone() FormView {
	f.Fields = cloneFields(f.Fields)
	f.Pages = clonePages(f.Pages)
	f.FormErrors = append([]string(nil), f.FormErrors...)
	return f
}

func cloneFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	for i, field := range fields {
		field.Choices = append([]Choice(nil), field.Choices...)
		field.Errors = append([]string(nil), field.Errors...)
		out[i] = field
	}
	return out
}

func clonePages(pages []Page) []Page {
	if pages == nil {
		return nil
	}
	out := make([]Page, len(pages))
	for i, page := range pages {
		page.Fields = cloneFields(page.Fields)
		page.Pages = clonePages(page.Pages)
		out[i] = page
	}
	return out
}
