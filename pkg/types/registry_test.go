package types

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry_Builtins(t *testing.T) {
	reg := NewRegistry()

	if diff := cmp.Diff(BuiltinNames(), reg.Names()); diff != "" {
		t.Fatalf("builtin names mismatch (-want +got):\n%s", diff)
	}

	typ, err := reg.Lookup(NameOptionalString)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if typ.Kind() != KindString {
		t.Fatalf("OptionalString should be a string type, got %s", typ.Kind())
	}
	if _, err := typ.Validate(nil); err != nil {
		t.Fatalf("OptionalString should accept nil: %v", err)
	}
	strict, _ := reg.Lookup(NameString)
	if _, err := strict.Validate(nil); err == nil {
		t.Fatalf("String should reject nil")
	}
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register("Gender", NewChoices("male", "female")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("Gender", String{}); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := reg.Register("", String{}); err == nil {
		t.Fatalf("expected empty name to fail")
	}
	if !reg.Has("Gender") {
		t.Fatalf("Gender not registered")
	}

	_, err := reg.Lookup("Missing")
	if !errors.Is(err, ErrTypeNotFound) {
		t.Fatalf("expected ErrTypeNotFound, got %v", err)
	}
}

func TestRegistry_MustRegisterPanicsOnDuplicate(t *testing.T) {
	reg := NewRegistry()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	reg.MustRegister(NameString, String{})
}
