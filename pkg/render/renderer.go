package render

import (
	"context"
)

// Renderer converts a form snapshot into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form FormView, options RenderOptions) ([]byte, error)
}

// RenderOptions carry per-request data renderers can use without touching
// the container.
type RenderOptions struct {
	// Values overrides displayed values, keyed by qualified field reference.
	Values map[string]any
	// Errors attaches messages to fields by reference. Unknown references
	// become form level messages.
	Errors map[string][]string
	// Theme supplies design tokens resolved by the orchestrator.
	Theme *ThemeConfig
}

// ThemeConfig is the subset of a theme selection renderers consume.
type ThemeConfig struct {
	Name    string            `json:"name"`
	Variant string            `json:"variant"`
	Tokens  map[string]string `json:"tokens,omitempty"`
}
