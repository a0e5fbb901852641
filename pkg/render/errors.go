package render

import (
	"sort"
	"strings"
)

// ErrorMapping splits a message payload into field level and form level
// messages.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MapErrors assigns payload messages to the form's field references. Keys
// that match no field, and the empty key, become form level messages.
func MapErrors(form FormView, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{Fields: make(map[string][]string)}
	if len(payload) == 0 {
		return mapping
	}

	refs := make(map[string]struct{})
	form.Walk(func(f *Field) { refs[f.Ref] = struct{}{} })

	for _, key := range sortedKeys(payload) {
		messages := normalizeMessages(payload[key])
		if len(messages) == 0 {
			continue
		}
		ref := strings.TrimSpace(key)
		if _, ok := refs[ref]; !ok {
			mapping.Form = append(mapping.Form, messages...)
			continue
		}
		mapping.Fields[ref] = append(mapping.Fields[ref], messages...)
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

// Apply copies option values and errors onto a form snapshot.
func Apply(form FormView, options RenderOptions) FormView {
	form = form.Clone()
	mapping := MapErrors(form, options.Errors)
	form.FormErrors = mapping.Form
	form.Walk(func(f *Field) {
		if msgs, ok := mapping.Fields[f.Ref]; ok {
			f.Errors = msgs
		}
		v, ok := options.Values[f.Ref]
		if !ok {
			return
		}
		f.Value = v
		f.Display = FormatValue(v)
		for i := range f.Choices {
			f.Choices[i].Selected = f.Choices[i].Display == f.Display
		}
	})
	return form
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(messages))
	out := make([]string, 0, len(messages))
	for _, msg := range messages {
		trimmed := strings.TrimSpace(msg)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
