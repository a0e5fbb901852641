// Package model holds the schema object model: typed field definitions,
// models that own them, and enums that back choice types. A FieldDefinition
// always holds a value its type accepts. Assignments are validated first and
// committed only on success, so a rejected value leaves the field untouched.
// Field types are fixed at construction. Enums are replaced wholesale through
// SetEntries rather than edited in place.
package model
