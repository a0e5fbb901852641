package model

import (
	"fmt"
	"strings"
)

// RefSeparator joins scope, model and field segments of a field reference.
const RefSeparator = "."

// JoinFieldRef joins segments into a reference.
func JoinFieldRef(segments ...string) string {
	return strings.Join(segments, RefSeparator)
}

// QualifyFieldRef prefixes an unqualified field name with defaultModel.
// References already containing a separator are returned unchanged.
func QualifyFieldRef(defaultModel, field string) string {
	if strings.Contains(field, RefSeparator) {
		return field
	}
	return JoinFieldRef(defaultModel, field)
}

// SplitFieldRef splits a reference into its segments. A reference needs at
// least a model and a field segment and no segment may be empty.
func SplitFieldRef(ref string) ([]string, error) {
	segments := strings.Split(ref, RefSeparator)
	if len(segments) < 2 {
		return nil, fmt.Errorf("model: field reference %q must have the form model.field", ref)
	}
	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("model: field reference %q has an empty segment", ref)
		}
	}
	return segments, nil
}
