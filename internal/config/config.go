// Package config loads CLI settings from an optional formschema.yaml and
// FORMSCHEMA_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/goliatone/go-formschema/pkg/container"
	"github.com/goliatone/go-formschema/pkg/schema"
)

// Configuration keys.
const (
	KeyEnumPolicy       = "enum_policy"
	KeyStrictTypes      = "strict_types"
	KeyStrictViews      = "strict_views"
	KeyRangeEnforcement = "range_enforcement"
	KeyRenderer         = "renderer"
	KeyTemplateEngine   = "template_engine"
	KeyTheme            = "theme"
	KeyVariant          = "variant"
)

// EnvPrefix is prepended to upper-cased keys for environment overrides.
const EnvPrefix = "FORMSCHEMA"

// Config holds the resolved CLI settings.
type Config struct {
	EnumPolicy       schema.EnumPolicy
	StrictTypes      bool
	StrictViews      bool
	RangeEnforcement bool
	Renderer         string
	TemplateEngine   string
	Theme            string
	Variant          string

	// File is the config file that was read, empty when none was found.
	File string
}

// Load reads path when given, else formschema.yaml from the working directory
// when present. Environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyEnumPolicy, string(schema.EnumLastWins))
	v.SetDefault(KeyStrictTypes, false)
	v.SetDefault(KeyStrictViews, false)
	v.SetDefault(KeyRangeEnforcement, false)
	v.SetDefault(KeyRenderer, "html")
	v.SetDefault(KeyTemplateEngine, "")
	v.SetDefault(KeyTheme, "")
	v.SetDefault(KeyVariant, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("formschema")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read formschema.yaml: %w", err)
			}
		}
	}

	policy, err := schema.ParseEnumPolicy(strings.TrimSpace(v.GetString(KeyEnumPolicy)))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", KeyEnumPolicy, err)
	}

	return &Config{
		EnumPolicy:       policy,
		StrictTypes:      v.GetBool(KeyStrictTypes),
		StrictViews:      v.GetBool(KeyStrictViews),
		RangeEnforcement: v.GetBool(KeyRangeEnforcement),
		Renderer:         strings.TrimSpace(v.GetString(KeyRenderer)),
		TemplateEngine:   strings.TrimSpace(v.GetString(KeyTemplateEngine)),
		Theme:            strings.TrimSpace(v.GetString(KeyTheme)),
		Variant:          strings.TrimSpace(v.GetString(KeyVariant)),
		File:             v.ConfigFileUsed(),
	}, nil
}

// ContainerOptions translates the settings into container build options.
func (c *Config) ContainerOptions() []container.Option {
	opts := []container.Option{container.WithEnumPolicy(c.EnumPolicy)}
	if c.StrictTypes {
		opts = append(opts, container.WithStrictTypes())
	}
	if c.StrictViews {
		opts = append(opts, container.WithStrictViews())
	}
	if c.RangeEnforcement {
		opts = append(opts, container.WithRangeEnforcement())
	}
	return opts
}
