// Package models defines the domain types for glossgen: glossary entries and
// the glossary that owns them.
package models

import (
	"strings"

	"github.com/starford/glossgen/internal/translit"
)

// Kind identifies the variant of an Entry.
type Kind int

const (
	KindContent Kind = iota
	KindReference
	KindPlaceholder
)

func (k Kind) String() string {
	switch k {
	case KindContent:
		return "content"
	case KindReference:
		return "reference"
	case KindPlaceholder:
		return "placeholder"
	}
	return "unknown"
}

// Image is an image token as written in the source together with the
// absolute path it resolved to.
type Image struct {
	Token string `json:"token"`
	Path  string `json:"path"`
}

// Entry is one glossary definition. The set of implementations is closed:
// *Content, *Reference and *Placeholder.
type Entry interface {
	Name() string
	EscapedName() string
	Tags() []string
	Images() []Image
	Kind() Kind
	IsEmpty() bool

	attrs() *base
}

type base struct {
	name   string
	tags   []string
	images []Image
}

func (b *base) Name() string        { return b.name }
func (b *base) EscapedName() string { return EscapeName(b.name) }
func (b *base) Tags() []string      { return b.tags }
func (b *base) Images() []Image     { return b.images }
func (b *base) attrs() *base        { return b }

// SetTags replaces the tags of e.
func SetTags(e Entry, tags []string) { e.attrs().tags = tags }

// SetImages replaces the images of e.
func SetImages(e Entry, images []Image) { e.attrs().images = images }

// EscapeName returns the file and URL safe form of an entry name.
func EscapeName(name string) string {
	return translit.Name(name)
}

// Content is an entry with a free-text body.
type Content struct {
	base
	body string
}

// NewContent returns an empty content entry.
func NewContent(name string) *Content {
	return &Content{base: base{name: name}}
}

// Body returns the raw, unrendered body.
func (c *Content) Body() string { return c.body }

// SetBody replaces the body.
func (c *Content) SetBody(body string) { c.body = body }

// AppendLine adds one source line to the body. The line is trimmed and
// followed by a single space.
func (c *Content) AppendLine(line string) {
	c.body += strings.TrimSpace(line) + " "
}

func (c *Content) Kind() Kind { return KindContent }

// IsEmpty reports whether the body is blank.
func (c *Content) IsEmpty() bool { return strings.TrimSpace(c.body) == "" }

// Demote converts c into a placeholder that keeps its tags and images.
func (c *Content) Demote() *Placeholder {
	return &Placeholder{base: base{name: c.name, tags: c.tags, images: c.images}}
}

// Reference is a "see" entry pointing at another entry by name.
type Reference struct {
	base
	target string
}

// NewReference returns a reference entry pointing to target.
func NewReference(name, target string) *Reference {
	return &Reference{base: base{name: name}, target: target}
}

// Target returns the name of the referenced entry.
func (r *Reference) Target() string { return r.target }

func (r *Reference) Kind() Kind    { return KindReference }
func (r *Reference) IsEmpty() bool { return false }

// Placeholder stands in for a content entry whose body was empty.
type Placeholder struct {
	base
}

// NewPlaceholder returns a placeholder entry.
func NewPlaceholder(name string) *Placeholder {
	return &Placeholder{base: base{name: name}}
}

func (p *Placeholder) Kind() Kind    { return KindPlaceholder }
func (p *Placeholder) IsEmpty() bool { return true }
