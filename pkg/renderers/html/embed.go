package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle so callers can start from
// the defaults when supplying their own.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
