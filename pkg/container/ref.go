package container

import (
	"github.com/goliatone/go-formschema/pkg/model"
)

// FieldFromRef resolves "model.field". Longer references carry leading scope
// segments; each scope must name a model of the container and is dropped
// before resolving the remainder.
func (c *Container) FieldFromRef(ref string) (*model.FieldDefinition, error) {
	segments, err := model.SplitFieldRef(ref)
	if err != nil {
		return nil, err
	}
	return c.resolve(segments)
}

func (c *Container) resolve(segments []string) (*model.FieldDefinition, error) {
	if len(segments) == 2 {
		return c.Field(segments[0], segments[1])
	}
	if _, ok := c.models[segments[0]]; !ok {
		return nil, model.NewLookupError(model.LookupModel, segments[0], model.JoinFieldRef(segments...))
	}
	return c.resolve(segments[1:])
}
