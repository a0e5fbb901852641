package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewEnum_EntriesByLabel(t *testing.T) {
	enum, err := NewEnum("Gender", []any{
		[]any{"male", "Male"},
		[]any{"female", "Female"},
	})
	if err != nil {
		t.Fatalf("NewEnum: %v", err)
	}

	entry, err := enum.Entry("Female")
	if err != nil {
		t.Fatalf("Entry: %v", err)
	}
	if entry.Value() != "female" || entry.Label() != "Female" {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if diff := cmp.Diff([]any{"male", "female"}, enum.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	_, err = enum.Entry("Other")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNewEnum_DuplicateLabelLastWins(t *testing.T) {
	enum, err := NewEnum("Size", []any{
		[]any{"s", "Small"},
		[]any{"m", "Medium"},
		[]any{"xs", "Small"},
	})
	if err != nil {
		t.Fatalf("NewEnum: %v", err)
	}
	entry, _ := enum.Entry("Small")
	if entry.Value() != "xs" {
		t.Fatalf("want last value for duplicate label, got %v", entry.Value())
	}
	if enum.Len() != 2 {
		t.Fatalf("want 2 entries, got %d", enum.Len())
	}
	if diff := cmp.Diff([]any{"xs", "m"}, enum.Values()); diff != "" {
		t.Fatalf("duplicate label should keep first position (-want +got):\n%s", diff)
	}
}

func TestEntriesFromSchema_RejectsMalformedPairs(t *testing.T) {
	cases := map[string][]any{
		"not a pair":    {"male"},
		"short pair":    {[]any{"male"}},
		"long pair":     {[]any{"male", "Male", "extra"}},
		"non-str label": {[]any{"male", 1}},
	}
	for name, pairs := range cases {
		if _, err := EntriesFromSchema(pairs); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestEnum_SetEntriesReplacesContent(t *testing.T) {
	enum, err := NewEnum("Gender", []any{[]any{"male", "Male"}})
	if err != nil {
		t.Fatalf("NewEnum: %v", err)
	}

	replacement, err := EntriesFromSchema([]any{[]any{"f", "F"}, []any{"m", "M"}})
	if err != nil {
		t.Fatalf("EntriesFromSchema: %v", err)
	}
	enum.SetEntries(replacement)

	if _, err := enum.Entry("Male"); err == nil {
		t.Fatalf("old entry should be gone")
	}
	if diff := cmp.Diff([]any{"f", "m"}, enum.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	enum.ClearEntries()
	if enum.Len() != 0 || len(enum.Entries()) != 0 {
		t.Fatalf("expected empty enum after ClearEntries")
	}
}
