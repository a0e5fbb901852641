// Package view groups field references into views, forms and pages for
// presentation. A form (or page) holds either a flat list of qualified field
// references or a list of pages, never both.
package view

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formschema/pkg/model"
)

// FormKind selects one of the forms a view can carry.
type FormKind string

const (
	FormBasic    FormKind = "basic"
	FormAdvanced FormKind = "advanced"
)

// FormKinds lists the supported kinds in presentation order.
func FormKinds() []FormKind { return []FormKind{FormBasic, FormAdvanced} }

// Spec is the decoded view description.
type Spec struct {
	Title string
	// Model defaults to the view name when empty.
	Model string
	Forms map[FormKind][]any
}

// View is a named presentation of one or more models.
type View struct {
	name         string
	title        string
	defaultModel string
	forms        map[FormKind]*Form
}

// New builds a view, qualifying every unqualified field name with the
// view's default model. Only form kinds present in spec are built.
func New(name string, spec Spec) (*View, error) {
	if name == "" {
		return nil, errors.New("view: view name is required")
	}
	v := &View{
		name:         name,
		title:        spec.Title,
		defaultModel: spec.Model,
		forms:        make(map[FormKind]*Form),
	}
	if v.defaultModel == "" {
		v.defaultModel = name
	}
	for _, kind := range FormKinds() {
		entries, ok := spec.Forms[kind]
		if !ok {
			continue
		}
		form, err := NewForm(entries, v.defaultModel)
		if err != nil {
			return nil, fmt.Errorf("view: %s.%s: %w", name, kind, err)
		}
		v.forms[kind] = form
	}
	for kind := range spec.Forms {
		if kind != FormBasic && kind != FormAdvanced {
			return nil, fmt.Errorf("view: %s: unknown form kind %q", name, kind)
		}
	}
	return v, nil
}

func (v *View) Name() string             { return v.name }
func (v *View) Title() string            { return v.title }
func (v *View) DefaultModelName() string { return v.defaultModel }

// Form returns the form of the given kind.
func (v *View) Form(kind FormKind) (*Form, error) {
	form, ok := v.forms[kind]
	if !ok {
		return nil, model.NewLookupError(model.LookupForm, string(kind), v.name)
	}
	return form, nil
}

// HasForm reports whether the view carries a form of the given kind.
func (v *View) HasForm(kind FormKind) bool {
	_, ok := v.forms[kind]
	return ok
}

// Kinds returns the form kinds present on the view.
func (v *View) Kinds() []FormKind {
	var out []FormKind
	for _, kind := range FormKinds() {
		if v.HasForm(kind) {
			out = append(out, kind)
		}
	}
	return out
}

// Page looks up a top level page of the given form.
func (v *View) Page(kind FormKind, name string) (*Page, error) {
	form, err := v.Form(kind)
	if err != nil {
		return nil, err
	}
	return form.Page(name)
}

// FieldRefs returns every field reference across all forms, deduplicated,
// in presentation order.
func (v *View) FieldRefs() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, kind := range v.Kinds() {
		for _, ref := range v.forms[kind].FieldRefs() {
			if _, ok := seen[ref]; ok {
				continue
			}
			seen[ref] = struct{}{}
			out = append(out, ref)
		}
	}
	return out
}
