package schema

import (
	"fmt"
	"strings"
)

// SchemaIntegrityError reports a model field whose declared type is not an
// enum (or an accepted built-in) of the document.
type SchemaIntegrityError struct {
	Model string
	Field string
	Type  any
	Known []string
}

func (e *SchemaIntegrityError) Error() string {
	return fmt.Sprintf("schema: model %q field %q: type %v not in enums [%s]",
		e.Model, e.Field, e.Type, strings.Join(e.Known, ", "))
}
