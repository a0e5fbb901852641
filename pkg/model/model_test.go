package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formschema/pkg/types"
)

func mustField(t *testing.T, typ types.ValueType, initial any, opts ...FieldOption) *FieldDefinition {
	t.Helper()
	field, err := NewFieldDefinition(typ, initial, opts...)
	if err != nil {
		t.Fatalf("new field: %v", err)
	}
	return field
}

func TestFieldDefinition_ValidatesInitialValue(t *testing.T) {
	_, err := NewFieldDefinition(types.NewRangedFloat(types.WithMin(0)), -1.0, WithName("height"))
	var verr *types.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Code != types.CodeTooSmall {
		t.Fatalf("code: want too_small, got %s", verr.Code)
	}
}

func TestFieldDefinition_SetValueKeepsPreviousOnFailure(t *testing.T) {
	field := mustField(t, types.NewRangedFloat(types.WithMin(0)), 0.5, WithName("height"))

	if err := field.SetValue(1.25); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if err := field.SetValue(-3.0); err == nil {
		t.Fatalf("expected negative height to fail")
	}
	if got := field.Value(); got != 1.25 {
		t.Fatalf("value changed after failed set: %v", got)
	}
}

func TestFieldDefinition_SetTypeAlwaysFails(t *testing.T) {
	field := mustField(t, types.String{}, "", WithName("breed"))

	for _, typ := range []types.ValueType{types.String{}, types.Float{}, nil} {
		err := field.SetType(typ)
		var ierr *ImmutabilityError
		if !errors.As(err, &ierr) {
			t.Fatalf("expected ImmutabilityError, got %v", err)
		}
	}
	if _, ok := field.Type().(types.String); !ok {
		t.Fatalf("type changed: %T", field.Type())
	}
}

func TestFieldDefinition_Metadata(t *testing.T) {
	field := mustField(t, types.Float{}, 60.5,
		WithName("weight"),
		WithTypeName("Float"),
		WithLabel("Weight"),
		WithToolTip("Adult weight"),
		WithUnits("lb"),
		WithDefault(60.5),
		WithMin(0),
		WithMax(300),
	)

	def, ok := field.Default()
	if !ok || def != 60.5 {
		t.Fatalf("default mismatch: %v %v", def, ok)
	}
	got := []any{field.Label(), field.ToolTip(), field.Units(), field.TypeName(), field.Min(), field.Max()}
	want := []any{"Weight", "Adult weight", "lb", "Float", 0, 300}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("metadata mismatch (-want +got):\n%s", diff)
	}
}

func TestModel_FieldsAndValues(t *testing.T) {
	m, err := NewModel("dog",
		mustField(t, types.String{}, "", WithName("breed")),
		mustField(t, types.NewChoices("male", "female"), "male", WithName("gender")),
	)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}

	if diff := cmp.Diff([]string{"breed", "gender"}, m.FieldNames()); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
	if err := m.SetFieldValue("gender", "female"); err != nil {
		t.Fatalf("SetFieldValue: %v", err)
	}
	if err := m.SetFieldValue("gender", "other"); err == nil {
		t.Fatalf("expected non-member to fail")
	}
	if diff := cmp.Diff(map[string]any{"breed": "", "gender": "female"}, m.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	_, err = m.Field("height")
	var lerr *LookupError
	if !errors.As(err, &lerr) || lerr.Kind != LookupField || lerr.Scope != "dog" {
		t.Fatalf("expected field LookupError, got %v", err)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("LookupError should match ErrNotFound")
	}
	if got := m.FieldRef("breed"); got != "dog.breed" {
		t.Fatalf("FieldRef = %q", got)
	}
}

func TestNewModel_RejectsInvalidFields(t *testing.T) {
	breed := mustField(t, types.String{}, "", WithName("breed"))
	dotted := mustField(t, types.String{}, "", WithName("a.b"))
	unnamed := mustField(t, types.String{}, "")

	cases := map[string][]*FieldDefinition{
		"duplicate": {breed, breed},
		"dotted":    {dotted},
		"unnamed":   {unnamed},
		"nil":       {nil},
	}
	for name, fields := range cases {
		if _, err := NewModel("dog", fields...); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	if _, err := NewModel("", breed); err == nil {
		t.Fatalf("expected empty model name to fail")
	}
}

func TestQualifyFieldRef(t *testing.T) {
	tests := []struct{ model, field, want string }{
		{"dog", "breed", "dog.breed"},
		{"dog", "cat.name", "cat.name"},
		{"dog", "scope.cat.name", "scope.cat.name"},
	}
	for _, tt := range tests {
		if got := QualifyFieldRef(tt.model, tt.field); got != tt.want {
			t.Fatalf("QualifyFieldRef(%q, %q) = %q, want %q", tt.model, tt.field, got, tt.want)
		}
	}
}

func TestSplitFieldRef(t *testing.T) {
	got, err := SplitFieldRef("app.dog.breed")
	if err != nil {
		t.Fatalf("SplitFieldRef: %v", err)
	}
	if diff := cmp.Diff([]string{"app", "dog", "breed"}, got); diff != "" {
		t.Fatalf("segments mismatch (-want +got):\n%s", diff)
	}
	for _, bad := range []string{"breed", "dog.", ".breed", "dog..breed", ""} {
		if _, err := SplitFieldRef(bad); err == nil {
			t.Fatalf("SplitFieldRef(%q): expected error", bad)
		}
	}
}

func TestDefaultLabeler(t *testing.T) {
	tests := map[string]string{
		"favoriteTreat": "Favorite Treat",
		"dog_breed":     "Dog Breed",
		"size2x":        "Size 2 X",
		"max-height2":   "Max Height 2",
		"élan":          "Élan",
		"höheÜberBoden": "Höhe Über Boden",
		"__":            "",
		"":              "",
	}
	for in, want := range tests {
		if got := DefaultLabeler(in); got != want {
			t.Fatalf("DefaultLabeler(%q) = %q, want %q", in, got, want)
		}
	}
}
