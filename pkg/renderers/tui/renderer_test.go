package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	j "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formschema/pkg/container"
	"github.com/goliatone/go-formschema/pkg/render"
	"github.com/goliatone/go-formschema/pkg/testsupport"
	"github.com/goliatone/go-formschema/pkg/view"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	textAreas    []string
	infoMessages []string
	selectCfgs   []SelectConfig
	inputPos     int
	selectPos    int
	confirmPos   int
	textPos      int
	err          error
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selectCfgs = append(s.selectCfgs, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func dogContainer(t *testing.T) *container.Container {
	t.Helper()
	c, err := container.New(testsupport.MustDecode(t, "dog.json"))
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	return c
}

func dogForm(t *testing.T, c *container.Container, kind view.FormKind) render.FormView {
	t.Helper()
	form, err := render.Build(c, "dog", kind)
	if err != nil {
		t.Fatalf("build form: %v", err)
	}
	return form
}

func TestRender_CollectsAnswersByRef(t *testing.T) {
	driver := &stubDriver{inputs: []string{"Beagle"}, selectIdx: []int{1, 2}}
	r := New(WithPromptDriver(driver))

	out, err := r.Render(context.Background(), dogForm(t, dogContainer(t), view.FormBasic), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var got map[string]any
	if err := j.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	want := map[string]any{
		"dog.breed":       "Beagle",
		"dog.gender":      "female",
		"dog.disposition": "submissive",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("answers mismatch (-want +got):\n%s", diff)
	}
	if driver.selectCfgs[0].DefaultIndex != 0 || driver.selectCfgs[1].DefaultIndex != 1 {
		t.Fatalf("expected current values preselected, got %+v", driver.selectCfgs)
	}
	if diff := cmp.Diff([]string{"Male", "Female"}, driver.selectCfgs[0].Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_RetriesInvalidNumbers(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Lab", "tall", "0.6", "70", "bone"},
		selectIdx: []int{0},
	}
	r := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatPrettyText))

	out, err := r.Render(context.Background(), dogForm(t, dogContainer(t), view.FormAdvanced), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := strings.Join([]string{
		"dog.breed = Lab",
		"dog.disposition = aggressive",
		"dog.favoriteTreat = bone",
		"dog.height = 0.6",
		"dog.weight = 70",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}

	joined := strings.Join(driver.infoMessages, "\n")
	for _, msg := range []string{"== Appearance", "== Temperament", `! Invalid Height: "tall" is not a number`} {
		if !strings.Contains(joined, msg) {
			t.Fatalf("expected info %q in %q", msg, joined)
		}
	}
	if r.ContentType() != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected content type %q", r.ContentType())
	}
}

func TestRender_ShowsErrorsAndTransformsValues(t *testing.T) {
	driver := &stubDriver{inputs: []string{"Beagle"}, selectIdx: []int{0, 0}}
	r := New(
		WithPromptDriver(driver),
		WithSubmitTransformer(func(values map[string]any) (map[string]any, error) {
			return map[string]any{"count": len(values)}, nil
		}),
	)

	out, err := r.Render(context.Background(), dogForm(t, dogContainer(t), view.FormBasic), render.RenderOptions{
		Errors: map[string][]string{"dog.breed": {"required"}, "": {"check the form"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), `"count": 3`) {
		t.Fatalf("transformer not applied: %s", out)
	}
	if diff := cmp.Diff([]string{"! check the form", "! Breed: required"}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Aborted(t *testing.T) {
	r := New(WithPromptDriver(&stubDriver{err: ErrAborted}))
	_, err := r.Render(context.Background(), dogForm(t, dogContainer(t), view.FormBasic), render.RenderOptions{})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestEditor_CommitsAnswers(t *testing.T) {
	c := dogContainer(t)
	driver := &stubDriver{inputs: []string{"Lab", "0.7", "42", "bone"}, selectIdx: []int{2}}

	editor, err := NewEditor(c, WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new editor: %v", err)
	}
	values, err := editor.Edit(context.Background(), "dog", view.FormAdvanced)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if len(values) != 5 {
		t.Fatalf("expected 5 answers, got %v", values)
	}

	weight, err := c.Field("dog", "weight")
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	if weight.Value() != 42.0 {
		t.Fatalf("weight not committed: %v", weight.Value())
	}
	disposition, _ := c.Field("dog", "disposition")
	if disposition.Value() != "submissive" {
		t.Fatalf("disposition not committed: %v", disposition.Value())
	}
}

func TestEditor_LeavesContainerUntouchedOnFailure(t *testing.T) {
	c := dogContainer(t)
	driver := &stubDriver{inputs: []string{"Lab"}}

	editor, err := NewEditor(c, WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new editor: %v", err)
	}
	if _, err := editor.Edit(context.Background(), "dog", view.FormBasic); err == nil {
		t.Fatalf("expected error when the driver runs out of answers")
	}
	breed, _ := c.Field("dog", "breed")
	if breed.Value() != "" {
		t.Fatalf("breed should be unchanged, got %v", breed.Value())
	}
}

func TestEditor_RejectedAnswerCommitsNothing(t *testing.T) {
	c := dogContainer(t)
	driver := &stubDriver{inputs: []string{"Lab", "0.7", "42", "bone"}, selectIdx: []int{2}}

	editor, err := NewEditor(c,
		WithPromptDriver(driver),
		WithSubmitTransformer(func(values map[string]any) (map[string]any, error) {
			values["dog.weight"] = "heavy"
			return values, nil
		}),
	)
	if err != nil {
		t.Fatalf("new editor: %v", err)
	}
	_, err = editor.Edit(context.Background(), "dog", view.FormAdvanced)
	if err == nil || !strings.Contains(err.Error(), "dog.weight") {
		t.Fatalf("expected weight validation error, got %v", err)
	}

	want := dogContainer(t).Values()
	if diff := cmp.Diff(want, c.Values()); diff != "" {
		t.Fatalf("container changed (-want +got):\n%s", diff)
	}
}

func TestNewEditor_RequiresContainer(t *testing.T) {
	if _, err := NewEditor(nil); err == nil {
		t.Fatalf("expected error for nil container")
	}
}
