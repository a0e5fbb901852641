package orchestrator

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formschema/pkg/render"
)

// resolveTheme asks the selector for a theme and flattens the manifest
// tokens, with variant tokens layered over the base set. No selector means
// no theme.
func (o *Orchestrator) resolveTheme(name, variant string) (*render.ThemeConfig, error) {
	if o.themes == nil {
		return nil, nil
	}
	if name == "" {
		name = o.defaultTheme
	}
	if variant == "" {
		variant = o.defaultVariant
	}

	selection, err := o.themes.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, nil
	}
	return themeConfig(selection), nil
}

func themeConfig(selection *theme.Selection) *render.ThemeConfig {
	cfg := &render.ThemeConfig{
		Name:    selection.Theme,
		Variant: selection.Variant,
		Tokens:  make(map[string]string),
	}
	manifest := selection.Manifest
	if manifest == nil {
		return cfg
	}
	if cfg.Name == "" {
		cfg.Name = manifest.Name
	}
	for key, value := range manifest.Tokens {
		cfg.Tokens[key] = value
	}
	if v, ok := manifest.Variants[selection.Variant]; ok {
		for key, value := range v.Tokens {
			cfg.Tokens[key] = value
		}
	}
	return cfg
}

// StaticThemes is a ThemeSelector over a fixed set of manifests. An empty
// name selects the first manifest; an empty variant selects the base tokens.
type StaticThemes struct {
	manifests []*theme.Manifest
}

var _ theme.ThemeSelector = (*StaticThemes)(nil)

// NewStaticThemes keeps the non-nil manifests in order.
func NewStaticThemes(manifests ...*theme.Manifest) *StaticThemes {
	s := &StaticThemes{}
	for _, m := range manifests {
		if m != nil {
			s.manifests = append(s.manifests, m)
		}
	}
	return s
}

// Select implements theme.ThemeSelector.
func (s *StaticThemes) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if len(s.manifests) == 0 {
		return nil, fmt.Errorf("theme: no themes registered")
	}
	name = strings.TrimSpace(name)
	variant = strings.TrimSpace(variant)

	manifest := s.manifests[0]
	if name != "" {
		manifest = nil
		for _, m := range s.manifests {
			if m.Name == name {
				manifest = m
				break
			}
		}
		if manifest == nil {
			return nil, fmt.Errorf("theme: %q not found", name)
		}
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("theme: %q has no variant %q (have %s)", manifest.Name, variant, strings.Join(variantNames(manifest), ", "))
		}
	}
	return &theme.Selection{Theme: manifest.Name, Variant: variant, Manifest: manifest}, nil
}

func variantNames(m *theme.Manifest) []string {
	names := make([]string, 0, len(m.Variants))
	for name := range m.Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultTheme is the built-in manifest with light and dark variants.
func DefaultTheme() *theme.Manifest {
	return &theme.Manifest{
		Name:    "default",
		Version: "1.0.0",
		Tokens: map[string]string{
			"color-text":       "#1f2933",
			"color-background": "#ffffff",
			"color-primary":    "#2563eb",
			"color-error":      "#b91c1c",
			"radius":           "4px",
			"spacing":          "0.75rem",
		},
		Variants: map[string]theme.Variant{
			"light": {},
			"dark": {
				Tokens: map[string]string{
					"color-text":       "#e5e7eb",
					"color-background": "#111827",
					"color-primary":    "#60a5fa",
					"color-error":      "#f87171",
				},
			},
		},
	}
}
