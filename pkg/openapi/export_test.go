package openapi

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formschema/pkg/container"
	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/testsupport"
)

func exportDog(t *testing.T, opts ...Option) *Result {
	t.Helper()
	c, err := container.New(testsupport.MustDecode(t, "dog.json"))
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	res, err := Export(testsupport.Context(), c, opts...)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	return res
}

func TestExport_ComponentsPerModelAndEnum(t *testing.T) {
	res := exportDog(t, WithTitle("Dogs"), WithVersion("2.0.0"))

	if res.Doc.Info.Title != "Dogs" || res.Doc.Info.Version != "2.0.0" {
		t.Fatalf("info mismatch: %+v", res.Doc.Info)
	}

	schemas := res.Doc.Components.Schemas
	for _, name := range []string{"dog", "Gender", "DogDisposition"} {
		if _, ok := schemas[name]; !ok {
			t.Fatalf("missing component %q", name)
		}
	}

	dog := schemas["dog"].Value
	if diff := cmp.Diff([]string{"object"}, dog.Type.Slice()); diff != "" {
		t.Fatalf("dog type (-want +got):\n%s", diff)
	}
	if len(dog.Properties) != 6 {
		t.Fatalf("want 6 properties, got %d", len(dog.Properties))
	}

	height := dog.Properties["height"].Value
	if diff := cmp.Diff([]string{"number"}, height.Type.Slice()); diff != "" {
		t.Fatalf("height type (-want +got):\n%s", diff)
	}
	if height.Min == nil || *height.Min != 0 {
		t.Fatalf("height minimum = %v", height.Min)
	}
	if height.Description != "Distance from front paws to withers" {
		t.Fatalf("height description = %q", height.Description)
	}

	weight := dog.Properties["weight"].Value
	if weight.Max == nil || *weight.Max != 300 {
		t.Fatalf("weight maximum = %v", weight.Max)
	}
}

func TestExport_EnumReferences(t *testing.T) {
	res := exportDog(t)

	gender := res.Doc.Components.Schemas["dog"].Value.Properties["gender"].Value
	if len(gender.AllOf) != 1 || gender.AllOf[0].Ref != SchemaRef("Gender") {
		t.Fatalf("gender should reference the Gender component, got %+v", gender.AllOf)
	}
	if gender.Title != "Gender" || gender.Default != "male" {
		t.Fatalf("gender metadata: title=%q default=%v", gender.Title, gender.Default)
	}

	enum := res.Doc.Components.Schemas["Gender"].Value
	if diff := cmp.Diff([]any{"male", "female"}, enum.Enum); diff != "" {
		t.Fatalf("enum values (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"Male", "Female"}, enum.Extensions[ExtensionEnumLabels]); diff != "" {
		t.Fatalf("enum labels (-want +got):\n%s", diff)
	}
}

func TestExport_JSONKeepsDeclarationOrder(t *testing.T) {
	res := exportDog(t)
	raw := string(res.JSON)

	breed := strings.Index(raw, `"breed"`)
	treat := strings.Index(raw, `"favoriteTreat"`)
	if breed < 0 || treat < 0 || breed > treat {
		t.Fatalf("expected declaration order in payload:\n%s", raw)
	}
	compact := strings.Join(strings.Fields(raw), "")
	if !strings.HasPrefix(compact, `{"openapi":"3.0.3"`) {
		t.Fatalf("unexpected payload header:\n%s", raw)
	}
}

func TestExport_OptionalStringIsNullable(t *testing.T) {
	doc, err := schema.Decode([]byte(`{
		"enum": {},
		"model": {"dog": {"nick": ["Nick", "OptionalString"], "name": ["Name", "String", "Rex"]}}
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	c, err := container.New(doc)
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	res, err := Export(testsupport.Context(), c)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	props := res.Doc.Components.Schemas["dog"].Value.Properties
	if !props["nick"].Value.Nullable {
		t.Fatalf("OptionalString field should be nullable")
	}
	if props["name"].Value.Nullable {
		t.Fatalf("String field should not be nullable")
	}
}

func TestExport_NilContainer(t *testing.T) {
	if _, err := Export(testsupport.Context(), nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestJSONType(t *testing.T) {
	tests := []struct {
		values []any
		want   string
	}{
		{[]any{"a", "b"}, "string"},
		{[]any{int64(1), 2.5}, "number"},
		{[]any{int64(1), int64(2)}, "integer"},
		{[]any{"a", int64(1)}, ""},
		{[]any{true}, "boolean"},
	}
	for _, tt := range tests {
		if got := jsonType(tt.values); got != tt.want {
			t.Fatalf("jsonType(%v) = %q, want %q", tt.values, got, tt.want)
		}
	}
}
