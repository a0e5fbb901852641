package schema_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/testsupport"
)

func TestDecode_JSONAndYAMLAgree(t *testing.T) {
	fromJSON := testsupport.MustDecode(t, "dog.json")
	fromYAML := testsupport.MustDecode(t, "dog.yaml")

	if diff := cmp.Diff(fromJSON.Plain(), fromYAML.Plain()); diff != "" {
		t.Fatalf("json/yaml mismatch (-json +yaml):\n%s", diff)
	}
}

func TestDecode_NumberKinds(t *testing.T) {
	m, err := schema.Decode([]byte(`{"i": 3, "f": 0.5, "b": true, "n": null, "s": "3"}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := map[string]any{"i": int64(3), "f": 0.5, "b": true, "n": nil, "s": "3"}
	if diff := cmp.Diff(want, m.Plain()); diff != "" {
		t.Fatalf("decoded values (-want +got):\n%s", diff)
	}
}

func TestDecode_Errors(t *testing.T) {
	if _, err := schema.Decode(nil); err == nil {
		t.Fatalf("expected empty input to fail")
	}
	if _, err := schema.Decode([]byte(`[1, 2]`)); err == nil {
		t.Fatalf("expected non-object root to fail")
	}
	_, err := schema.DecodeStrict([]byte("a: 1\na: 2\n"))
	var dup *schema.DuplicateKeyError
	if !errors.As(err, &dup) || dup.Key != "a" || dup.FirstLine != 1 || dup.Line != 2 {
		t.Fatalf("expected DuplicateKeyError, got %v", err)
	}
}

func TestDecode_RepeatedKeyLastWins(t *testing.T) {
	doc, err := schema.Decode([]byte(`{
		"enum": {"Gender": [["male", "Male"]], "Size": [], "Gender": [["female", "Female"]]},
		"model": {}
	}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	enums, err := doc.Map("enum")
	if err != nil {
		t.Fatalf("enum section: %v", err)
	}
	if diff := cmp.Diff([]string{"Gender", "Size"}, enums.Keys()); diff != "" {
		t.Fatalf("keys (-want +got):\n%s", diff)
	}
	gender, _ := enums.Get("Gender")
	if diff := cmp.Diff([]any{[]any{"female", "Female"}}, gender); diff != "" {
		t.Fatalf("Gender should keep the last value (-want +got):\n%s", diff)
	}
}

func TestMap_EncodeKeepsOrder(t *testing.T) {
	m := schema.NewMap()
	m.Set("zebra", 1)
	m.Set("apple", []any{"x"})
	nested := schema.NewMap()
	nested.Set("b", true)
	nested.Set("a", nil)
	m.Set("mid", nested)
	m.Set("zebra", 2)

	out, err := schema.EncodeJSON(m)
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	compact := strings.Join(strings.Fields(string(out)), "")
	if compact != `{"zebra":2,"apple":["x"],"mid":{"b":true,"a":null}}` {
		t.Fatalf("unexpected json: %s", out)
	}

	yml, err := schema.EncodeYAML(m)
	if err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}
	back, err := schema.Decode(yml)
	if err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if diff := cmp.Diff(m.Keys(), back.Keys()); diff != "" {
		t.Fatalf("yaml key order (-want +got):\n%s", diff)
	}
}

func TestMap_CloneIsDeep(t *testing.T) {
	m := testsupport.MustDecode(t, "gender.json")
	clone := m.Clone()

	enums, _ := clone.Map(schema.KeyEnum)
	enums.Set("Extra", []any{})

	original, _ := m.Map(schema.KeyEnum)
	if original.Has("Extra") {
		t.Fatalf("clone shares nested maps with the original")
	}
}

func TestParseSource(t *testing.T) {
	src, err := schema.ParseSource("https://example.com/schema.json")
	if err != nil || src.Kind() != schema.SourceKindURL {
		t.Fatalf("ParseSource url = %v, %v", src, err)
	}
	src, err = schema.ParseSource("./schema/../dog.json")
	if err != nil || src.Kind() != schema.SourceKindFile || src.Location() != "dog.json" {
		t.Fatalf("ParseSource file = %v, %v", src, err)
	}
	if _, err := schema.SourceFromURL("ftp://example.com/a"); err == nil {
		t.Fatalf("expected ftp scheme to fail")
	}
}
