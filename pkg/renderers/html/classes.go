package html

// Class is a semantic CSS class applied by the default templates.
type Class string

const (
	ClassForm    Class = "formschema-form"
	ClassHeader  Class = "formschema-header"
	ClassSection Class = "formschema-section"
	ClassField   Class = "formschema-field"
	ClassLabel   Class = "formschema-label"
	ClassUnits   Class = "formschema-units"
	ClassHelp    Class = "formschema-help"
	ClassError   Class = "formschema-error"
	ClassErrors  Class = "formschema-errors"
)

func defaultClasses() map[string]string {
	return map[string]string{
		"form":    string(ClassForm),
		"header":  string(ClassHeader),
		"section": string(ClassSection),
		"field":   string(ClassField),
		"label":   string(ClassLabel),
		"units":   string(ClassUnits),
		"help":    string(ClassHelp),
		"error":   string(ClassError),
		"errors":  string(ClassErrors),
	}
}
