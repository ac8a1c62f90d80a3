package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"

	sprig "github.com/go-task/slim-sprig/v3"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

const defaultTemplate = "templates/page.html.tmpl"

// Crumb is one step of a breadcrumb trail.
type Crumb struct {
	Title string
	Href  string
}

// Page is the data handed to the website template.
type Page struct {
	Kind        string // entry, index, tags, tag or letter
	Title       string
	Body        template.HTML
	Tags        []string
	Breadcrumbs []Crumb
	// Root is the relative path from the page back to the site root.
	Root   string
	Site   string
	Author string
	Lang   string
}

// PageTemplate renders complete HTML pages.
type PageTemplate struct {
	tmpl *template.Template
}

// DefaultTemplate returns the built-in page template.
func DefaultTemplate() (*PageTemplate, error) {
	data, err := templateFS.ReadFile(defaultTemplate)
	if err != nil {
		return nil, fmt.Errorf("render: read default template: %w", err)
	}
	return ParseTemplate("page", string(data))
}

// LoadTemplate parses the page template stored at path.
func LoadTemplate(path string) (*PageTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: read template %s: %w", path, err)
	}
	return ParseTemplate(path, string(data))
}

// ParseTemplate compiles text with the sprig function set available.
func ParseTemplate(name, text string) (*PageTemplate, error) {
	tmpl, err := template.New(name).Funcs(sprig.FuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("render: parse template %s: %w", name, err)
	}
	return &PageTemplate{tmpl: tmpl}, nil
}

// Execute renders p into a complete page.
func (t *PageTemplate) Execute(p *Page) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("render: execute template for %q: %w", p.Title, err)
	}
	return buf.String(), nil
}
