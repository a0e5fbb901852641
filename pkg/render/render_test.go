package render

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formschema/pkg/container"
	"github.com/goliatone/go-formschema/pkg/testsupport"
	"github.com/goliatone/go-formschema/pkg/view"
	"github.com/goliatone/go-formschema/pkg/widgets"
)

func dogContainer(t *testing.T) *container.Container {
	t.Helper()
	c, err := container.New(testsupport.MustDecode(t, "dog.json"))
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	return c
}

func TestBuild_RefsForm(t *testing.T) {
	form, err := Build(dogContainer(t), "dog", view.FormBasic)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if form.Title != "Dog" || form.Kind != "basic" || form.Model != "dog" {
		t.Fatalf("unexpected header %+v", form)
	}
	if len(form.Pages) != 0 || len(form.Fields) != 3 {
		t.Fatalf("expected 3 fields and no pages, got %d/%d", len(form.Fields), len(form.Pages))
	}

	gender := form.Fields[1]
	if gender.Ref != "dog.gender" || gender.Widget != widgets.WidgetRadio {
		t.Fatalf("unexpected gender field %+v", gender)
	}
	want := []Choice{
		{Value: "male", Display: "male", Label: "Male", Selected: true},
		{Value: "female", Display: "female", Label: "Female"},
	}
	if diff := cmp.Diff(want, gender.Choices); diff != "" {
		t.Fatalf("choices mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_PagesForm(t *testing.T) {
	form, err := Build(dogContainer(t), "dog", view.FormAdvanced)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(form.Fields) != 0 || len(form.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %+v", form)
	}

	var refs []string
	form.Walk(func(f *Field) { refs = append(refs, f.Ref) })
	want := []string{"dog.breed", "dog.height", "dog.weight", "dog.disposition", "dog.favoriteTreat"}
	if diff := cmp.Diff(want, refs); diff != "" {
		t.Fatalf("refs mismatch (-want +got):\n%s", diff)
	}

	height := form.Pages[0].Fields[1]
	if height.Display != "0.5" || height.Widget != widgets.WidgetNumber || height.Kind != "float" {
		t.Fatalf("unexpected height field %+v", height)
	}
}

func TestBuild_Errors(t *testing.T) {
	c := dogContainer(t)
	if _, err := Build(c, "cat", view.FormBasic); err == nil {
		t.Fatalf("expected unknown view error")
	}
	if _, err := Build(nil, "dog", view.FormBasic); err == nil {
		t.Fatalf("expected nil container error")
	}
}

func TestApply_ValuesAndErrors(t *testing.T) {
	form, err := Build(dogContainer(t), "dog", view.FormBasic)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	applied := Apply(form, RenderOptions{
		Values: map[string]any{"dog.gender": "female"},
		Errors: map[string][]string{
			"dog.breed": {"required", " required "},
			"":          {"try again"},
			"cat.name":  {"unknown"},
		},
	})

	if diff := cmp.Diff([]string{"required"}, applied.Fields[0].Errors); diff != "" {
		t.Fatalf("field errors (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"try again", "unknown"}, applied.FormErrors); diff != "" {
		t.Fatalf("form errors (-want +got):\n%s", diff)
	}
	gender := applied.Fields[1]
	if gender.Display != "female" || !gender.Choices[1].Selected || gender.Choices[0].Selected {
		t.Fatalf("value override not applied: %+v", gender)
	}
	if form.Fields[1].Display != "male" || !form.Fields[1].Choices[0].Selected {
		t.Fatalf("Apply mutated the original snapshot")
	}
}

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, FormView, RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Get(""); err == nil {
		t.Fatalf("empty registry has no default")
	}

	reg.MustRegister(stubRenderer{name: "tui"})
	reg.MustRegister(stubRenderer{name: "html"})
	if err := reg.Register(stubRenderer{name: "html"}); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if diff := cmp.Diff([]string{"html", "tui"}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	def, err := reg.Get("")
	if err != nil || def.Name() != "html" {
		t.Fatalf("default renderer = %v, %v", def, err)
	}
	if _, err := reg.Get("pdf"); err == nil {
		t.Fatalf("expected missing renderer error")
	}
}

func TestFormatValue(t *testing.T) {
	tests := map[any]string{
		nil:      "",
		0.5:      "0.5",
		60.0:     "60",
		int64(3): "3",
		true:     "true",
	}
	for in, want := range tests {
		if got := FormatValue(in); got != want {
			t.Fatalf("FormatValue(%v) = %q, want %q", in, got, want)
		}
	}
}
