package html

import (
	"regexp"
	"sort"
	"strings"

	"github.com/goliatone/go-formschema/pkg/render"
)

type formContext struct {
	View     string    `json:"view"`
	Title    string    `json:"title"`
	Kind     string    `json:"kind"`
	Errors   []string  `json:"errors,omitempty"`
	Sections []section `json:"sections"`
}

// section is one fieldset. Nested pages are flattened depth first; the root
// section of a refs form has no name.
type section struct {
	Name   string         `json:"name"`
	Depth  int            `json:"depth,string"`
	Fields []fieldContext `json:"fields"`
}

type fieldContext struct {
	ID      string          `json:"id"`
	Ref     string          `json:"ref"`
	Label   string          `json:"label"`
	ToolTip string          `json:"tooltip,omitempty"`
	Units   string          `json:"units,omitempty"`
	Widget  string          `json:"widget"`
	Display string          `json:"display"`
	Step    string          `json:"step,omitempty"`
	Min     string          `json:"min,omitempty"`
	Max     string          `json:"max,omitempty"`
	Choices []render.Choice `json:"choices,omitempty"`
	Errors  []string        `json:"errors,omitempty"`
}

func buildFormContext(form render.FormView) formContext {
	out := formContext{
		View:   form.View,
		Title:  form.Title,
		Kind:   form.Kind,
		Errors: form.FormErrors,
	}
	if len(form.Fields) > 0 {
		out.Sections = append(out.Sections, section{Fields: fieldContexts(form.Fields)})
	}
	out.Sections = appendPages(out.Sections, form.Pages, 0)
	return out
}

func appendPages(out []section, pages []render.Page, depth int) []section {
	for _, page := range pages {
		out = append(out, section{
			Name:   page.Name,
			Depth:  depth,
			Fields: fieldContexts(page.Fields),
		})
		out = appendPages(out, page.Pages, depth+1)
	}
	return out
}

func fieldContexts(fields []render.Field) []fieldContext {
	out := make([]fieldContext, 0, len(fields))
	for _, f := range fields {
		ctx := fieldContext{
			ID:      controlID(f.Ref),
			Ref:     f.Ref,
			Label:   sanitizeInline(f.Label),
			ToolTip: sanitizeInline(f.ToolTip),
			Units:   f.Units,
			Widget:  f.Widget,
			Display: f.Display,
			Min:     render.FormatValue(f.Min),
			Max:     render.FormatValue(f.Max),
			Choices: f.Choices,
			Errors:  f.Errors,
		}
		if f.Kind == "float" {
			ctx.Step = "any"
		}
		out = append(out, ctx)
	}
	return out
}

func controlID(ref string) string {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return ""
	}
	return "fs-" + strings.ReplaceAll(trimmed, ".", "-")
}

var (
	tokenName   = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	unsafeValue = regexp.MustCompile(`[;{}<>]`)
)

// themeStyle writes theme tokens as CSS custom properties in key order.
// Tokens with unusable names or values are skipped.
func themeStyle(theme *render.ThemeConfig) string {
	if theme == nil || len(theme.Tokens) == 0 {
		return ""
	}
	keys := make([]string, 0, len(theme.Tokens))
	for key := range theme.Tokens {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		name := strings.TrimPrefix(strings.TrimSpace(key), "--")
		value := strings.TrimSpace(theme.Tokens[key])
		if !tokenName.MatchString(name) || value == "" || unsafeValue.MatchString(value) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("--")
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteByte(';')
	}
	return b.String()
}
