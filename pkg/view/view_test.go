package view

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formschema/pkg/model"
)

func TestNew_DefaultsModelToViewName(t *testing.T) {
	v, err := New("dog", Spec{
		Title: "Dog",
		Forms: map[FormKind][]any{
			FormBasic: {"breed", "cat.name"},
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if v.DefaultModelName() != "dog" {
		t.Fatalf("default model = %q", v.DefaultModelName())
	}
	form, err := v.Form(FormBasic)
	if err != nil {
		t.Fatalf("Form: %v", err)
	}
	if form.Kind() != ContentRefs {
		t.Fatalf("expected refs content, got %s", form.Kind())
	}
	if diff := cmp.Diff([]string{"dog.breed", "cat.name"}, form.Refs()); diff != "" {
		t.Fatalf("refs mismatch (-want +got):\n%s", diff)
	}
	if form.Pages() != nil {
		t.Fatalf("refs form should report no pages")
	}
}

func TestNew_OmitsAbsentForms(t *testing.T) {
	v, err := New("settings", Spec{
		Model: "dog",
		Forms: map[FormKind][]any{FormAdvanced: {"weight"}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if v.HasForm(FormBasic) {
		t.Fatalf("basic form should be absent")
	}
	_, err = v.Form(FormBasic)
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if diff := cmp.Diff([]FormKind{FormAdvanced}, v.Kinds()); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"dog.weight"}, v.FieldRefs()); diff != "" {
		t.Fatalf("refs mismatch (-want +got):\n%s", diff)
	}
}

func TestNewForm_Pages(t *testing.T) {
	form, err := NewForm([]any{
		[]any{"Main", []any{"breed", "gender"}},
		[]any{"Body", []any{
			[]any{"Size", []any{"height", "weight"}},
		}},
	}, "dog")
	if err != nil {
		t.Fatalf("NewForm: %v", err)
	}
	if form.Kind() != ContentPages {
		t.Fatalf("expected pages content, got %s", form.Kind())
	}

	body, err := form.Page("Body")
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	size, err := body.Page("Size")
	if err != nil {
		t.Fatalf("nested Page: %v", err)
	}
	if diff := cmp.Diff([]string{"dog.height", "dog.weight"}, size.Refs()); diff != "" {
		t.Fatalf("nested refs mismatch (-want +got):\n%s", diff)
	}

	want := []string{"dog.breed", "dog.gender", "dog.height", "dog.weight"}
	if diff := cmp.Diff(want, form.FieldRefs()); diff != "" {
		t.Fatalf("flattened refs mismatch (-want +got):\n%s", diff)
	}
}

func TestNewForm_RejectsInvalidEntries(t *testing.T) {
	cases := map[string][]any{
		"mixed":          {"breed", []any{"Main", []any{"gender"}}},
		"bad entry":      {42},
		"empty ref":      {""},
		"short page":     {[]any{"Main"}},
		"page name":      {[]any{7, []any{"breed"}}},
		"page entries":   {[]any{"Main", "breed"}},
		"nested mixture": {[]any{"Main", []any{"breed", []any{"Sub", []any{"x"}}}}},
	}
	for name, entries := range cases {
		if _, err := NewForm(entries, "dog"); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestNew_RejectsUnknownFormKind(t *testing.T) {
	_, err := New("dog", Spec{Forms: map[FormKind][]any{"expert": {"breed"}}})
	if err == nil {
		t.Fatalf("expected unknown form kind to fail")
	}
}

func TestView_Page(t *testing.T) {
	v, err := New("dog", Spec{Forms: map[FormKind][]any{
		FormBasic: {[]any{"Main", []any{"breed"}}},
	}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	page, err := v.Page(FormBasic, "Main")
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if page.Name() != "Main" {
		t.Fatalf("page name = %q", page.Name())
	}
	if _, err := v.Page(FormBasic, "Missing"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
