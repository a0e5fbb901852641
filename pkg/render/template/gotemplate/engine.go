package gotemplate

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-formschema/pkg/render/template"
)

// Engine names accepted by NewNamed.
const (
	EnginePongo2     = "pongo2"
	EngineGoTemplate = "go-template"
)

// EngineNames lists the engines NewNamed can build.
func EngineNames() []string {
	return []string{EnginePongo2, EngineGoTemplate}
}

// NewGoTemplate builds the stock go-template renderer over files. Extra
// go-template options are applied after the file system and extension.
func NewGoTemplate(files fs.FS, ext string, options ...gotemplatepkg.Option) (template.TemplateRenderer, error) {
	if files == nil {
		return nil, errors.New("gotemplate: go-template engine needs an fs.FS")
	}
	if ext == "" {
		ext = DefaultExtension
	}
	opts := append([]gotemplatepkg.Option{
		gotemplatepkg.WithFS(files),
		gotemplatepkg.WithExtension(ext),
	}, options...)

	renderer, err := gotemplatepkg.NewRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: go-template engine: %w", err)
	}
	return renderer, nil
}

// NewNamed builds the engine called name over files. An empty name selects
// the pongo2 engine of this package.
func NewNamed(name string, files fs.FS, ext string) (template.TemplateRenderer, error) {
	switch strings.TrimSpace(name) {
	case "", EnginePongo2:
		return New(WithFS(files), WithExtension(ext))
	case EngineGoTemplate:
		return NewGoTemplate(files, ext)
	}
	return nil, fmt.Errorf("gotemplate: unknown engine %q (want one of %s)", name, strings.Join(EngineNames(), ", "))
}
