package container

import (
	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/types"
)

// Option customises container construction.
type Option func(*config)

type config struct {
	registry         *types.Registry
	enumPolicy       schema.EnumPolicy
	strictTypes      bool
	strictViews      bool
	rangeEnforcement bool
	labeler          func(string) string
}

func applyOptions(opts []Option) config {
	cfg := config{enumPolicy: schema.EnumLastWins}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.registry == nil {
		cfg.registry = types.NewRegistry()
	}
	return cfg
}

// knownTypes lists the registry types a field may use besides the document
// enums. Strict mode allows enums only.
func (c config) knownTypes() []string {
	if c.strictTypes {
		return nil
	}
	return c.registry.Names()
}

// WithRegistry supplies the type registry. Enum choice types are registered
// into it, so a registry should not be shared between containers.
func WithRegistry(reg *types.Registry) Option {
	return func(c *config) {
		if reg != nil {
			c.registry = reg
		}
	}
}

// WithEnumPolicy selects how the normalized document converts enums.
func WithEnumPolicy(policy schema.EnumPolicy) Option {
	return func(c *config) {
		if policy != "" {
			c.enumPolicy = policy
		}
	}
}

// WithStrictTypes only accepts field types declared as document enums.
func WithStrictTypes() Option {
	return func(c *config) { c.strictTypes = true }
}

// WithStrictViews resolves every view field reference while building.
func WithStrictViews() Option {
	return func(c *config) { c.strictViews = true }
}

// WithRangeEnforcement turns numeric min/max metadata into validated bounds.
func WithRangeEnforcement() Option {
	return func(c *config) { c.rangeEnforcement = true }
}

// WithLabeler derives labels for fields declared without one.
func WithLabeler(labeler func(string) string) Option {
	return func(c *config) { c.labeler = labeler }
}
