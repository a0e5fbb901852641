package formschema

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/testsupport"
	"github.com/goliatone/go-formschema/pkg/view"
)

func TestGenerateHTML(t *testing.T) {
	out, err := GenerateHTML(context.Background(), schema.SourceFromFile(testsupport.FixturePath("dog.yaml")), "dog", view.FormBasic)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), `name="dog.gender"`) {
		t.Fatalf("expected gender field in output\n%s", out)
	}
}

func TestLoad(t *testing.T) {
	c, err := Load(context.Background(), schema.SourceFromFile(testsupport.FixturePath("dog.json")))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	field, err := c.FieldFromRef("dog.weight")
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	if field.Value() != 60.5 {
		t.Fatalf("unexpected weight %v", field.Value())
	}
}

func TestNormalize(t *testing.T) {
	got, err := Normalize(testsupport.ReadFixture(t, "gender.json"))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	want := testsupport.MustDecode(t, "gender.normalized.json")
	if diff := testsupport.CompareGolden(want.Plain(), got.Plain()); diff != "" {
		t.Fatalf("normalized mismatch (-want +got):\n%s", diff)
	}

	if _, err := Normalize(testsupport.ReadFixture(t, "missing_enum.json")); err == nil {
		t.Fatalf("expected integrity error")
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	if _, err := EmbeddedTemplates().Open("templates/form.tmpl"); err != nil {
		t.Fatalf("open form template: %v", err)
	}
}
