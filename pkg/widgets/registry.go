package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formschema/pkg/model"
	"github.com/goliatone/go-formschema/pkg/types"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetToggle   = "toggle"
	WidgetSelect   = "select"
	WidgetRadio    = "radio"
	WidgetNumber   = "number"
	WidgetText     = "text"
	WidgetTextArea = "textarea"
	WidgetJSON     = "json-editor"
)

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(field *model.FieldDefinition) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for fields. Overrides keyed by field reference
// win; otherwise the highest priority matcher wins and ties fall back to
// registration order.
type Registry struct {
	mu        sync.RWMutex
	rules     []rule
	overrides map[string]string
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher. Blank names and nil matchers are ignored.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Override pins the widget used for a qualified field reference.
func (r *Registry) Override(ref, widget string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.overrides == nil {
		r.overrides = make(map[string]string)
	}
	if widget = strings.TrimSpace(widget); widget == "" {
		delete(r.overrides, ref)
		return
	}
	r.overrides[ref] = widget
}

// Resolve returns the widget name for the field behind ref.
func (r *Registry) Resolve(ref string, field *model.FieldDefinition) (string, bool) {
	if r == nil || field == nil {
		return "", false
	}
	r.mu.RLock()
	if widget, ok := r.overrides[ref]; ok {
		r.mu.RUnlock()
		return widget, true
	}
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

// radioLimit is the largest choice set rendered as radio buttons.
const radioLimit = 3

func (r *Registry) registerBuiltins() {
	r.Register(WidgetToggle, 90, func(field *model.FieldDefinition) bool {
		return field.Type().Kind() == types.KindBoolean
	})

	r.Register(WidgetRadio, 80, func(field *model.FieldDefinition) bool {
		e, ok := field.Type().(types.Enumerated)
		return ok && len(e.Values()) > 0 && len(e.Values()) <= radioLimit
	})

	r.Register(WidgetSelect, 70, func(field *model.FieldDefinition) bool {
		return field.Type().Kind() == types.KindChoices
	})

	r.Register(WidgetNumber, 60, func(field *model.FieldDefinition) bool {
		kind := field.Type().Kind()
		return kind == types.KindFloat || kind == types.KindInt
	})

	r.Register(WidgetJSON, 50, func(field *model.FieldDefinition) bool {
		return field.Type().Kind() == types.KindStruct
	})

	r.Register(WidgetTextArea, 40, func(field *model.FieldDefinition) bool {
		s, ok := field.Value().(string)
		return ok && strings.Contains(s, "\n")
	})

	r.Register(WidgetText, 0, func(field *model.FieldDefinition) bool {
		return field.Type().Kind() == types.KindString
	})
}
