package view

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formschema/pkg/model"
)

// ContentKind tells whether a form or page lists field refs or pages.
type ContentKind int

const (
	ContentRefs ContentKind = iota
	ContentPages
)

func (k ContentKind) String() string {
	if k == ContentPages {
		return "pages"
	}
	return "refs"
}

// Content is shared by forms and pages.
type Content struct {
	kind  ContentKind
	refs  []string
	pages []*Page
}

func (c *Content) Kind() ContentKind { return c.kind }

// Refs returns the qualified references of a refs-kind content. It is nil
// for page content.
func (c *Content) Refs() []string {
	if c.kind != ContentRefs {
		return nil
	}
	out := make([]string, len(c.refs))
	copy(out, c.refs)
	return out
}

// Pages returns the pages of a pages-kind content. It is nil for refs.
func (c *Content) Pages() []*Page {
	if c.kind != ContentPages {
		return nil
	}
	out := make([]*Page, len(c.pages))
	copy(out, c.pages)
	return out
}

// Page returns the direct child page called name.
func (c *Content) Page(name string) (*Page, error) {
	for _, page := range c.pages {
		if page.name == name {
			return page, nil
		}
	}
	return nil, model.NewLookupError(model.LookupPage, name, "")
}

// FieldRefs flattens the content into its field references, depth first.
func (c *Content) FieldRefs() []string {
	if c.kind == ContentRefs {
		return c.Refs()
	}
	var out []string
	for _, page := range c.pages {
		out = append(out, page.FieldRefs()...)
	}
	return out
}

// Form is the content of one view form kind.
type Form struct {
	Content
}

// NewForm builds a form from raw entries. Strings become field references
// qualified with defaultModel; sequences become pages.
func NewForm(entries []any, defaultModel string) (*Form, error) {
	content, err := buildContent(entries, defaultModel)
	if err != nil {
		return nil, err
	}
	return &Form{Content: content}, nil
}

// Page is a named group inside a form, possibly holding nested pages.
type Page struct {
	Content
	name string
}

// NewPage builds a page from a raw [name, [entries...]] pair.
func NewPage(raw []any, defaultModel string) (*Page, error) {
	if len(raw) != 2 {
		return nil, fmt.Errorf("page must be a [name, entries] pair, got %d elements", len(raw))
	}
	name, ok := raw[0].(string)
	if !ok || name == "" {
		return nil, fmt.Errorf("page name must be a non-empty string, got %v", raw[0])
	}
	entries, ok := raw[1].([]any)
	if !ok {
		return nil, fmt.Errorf("page %q: entries must be a list, got %T", name, raw[1])
	}
	content, err := buildContent(entries, defaultModel)
	if err != nil {
		return nil, fmt.Errorf("page %q: %w", name, err)
	}
	return &Page{Content: content, name: name}, nil
}

func (p *Page) Name() string { return p.name }

var errMixedContent = errors.New("entries mix field references and pages")

func buildContent(entries []any, defaultModel string) (Content, error) {
	var (
		refs  []string
		pages []*Page
	)
	for i, entry := range entries {
		switch v := entry.(type) {
		case string:
			if v == "" {
				return Content{}, fmt.Errorf("entry %d: empty field reference", i)
			}
			refs = append(refs, model.QualifyFieldRef(defaultModel, v))
		case []any:
			page, err := NewPage(v, defaultModel)
			if err != nil {
				return Content{}, fmt.Errorf("entry %d: %w", i, err)
			}
			pages = append(pages, page)
		default:
			return Content{}, fmt.Errorf("entry %d: expected field name or page, got %T", i, entry)
		}
	}
	if len(refs) > 0 && len(pages) > 0 {
		return Content{}, errMixedContent
	}
	if len(pages) > 0 {
		return Content{kind: ContentPages, pages: pages}, nil
	}
	if refs == nil {
		refs = []string{}
	}
	return Content{kind: ContentRefs, refs: refs}, nil
}
