package tui

import (
	"github.com/goliatone/go-formschema/pkg/container"
)

// OutputFormat controls how collected values are serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits application/json payloads keyed by field reference.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatPrettyText emits one "ref = value" line per field.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Theme captures message prefixes the renderer applies when printing.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
	PagePrefix  string
}

// DefaultTheme is used when no theme is configured.
var DefaultTheme = Theme{InfoPrefix: "", ErrorPrefix: "! ", PagePrefix: "== "}

// SubmitTransformer mutates collected values before serialization.
type SubmitTransformer func(map[string]any) (map[string]any, error)

// Option configures the TUI renderer and editor.
type Option func(*settings)

type settings struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	container         *container.Container
	submitTransformer SubmitTransformer
	theme             Theme
}

func applyOptions(opts []Option) settings {
	s := settings{outputFormat: OutputFormatJSON, theme: DefaultTheme}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s
}

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *settings) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(s *settings) {
		if format != "" {
			s.outputFormat = format
		}
	}
}

// WithContainer validates answers against the container's field definitions.
// Without it answers are only parsed by field kind.
func WithContainer(c *container.Container) Option {
	return func(s *settings) {
		s.container = c
	}
}

// WithSubmitTransformer allows callers to mutate collected values prior to
// serialization.
func WithSubmitTransformer(fn SubmitTransformer) Option {
	return func(s *settings) {
		s.submitTransformer = fn
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *settings) {
		s.theme = theme
	}
}
