package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/starford/glossgen/internal/models"
	"github.com/starford/glossgen/internal/storage"
	"github.com/starford/glossgen/internal/translit"
)

const (
	// latexArrow prefixes every cross-reference in typeset output.
	latexArrow     = `\ding{222}~`
	latexEmpty     = `\ding{55}`
	latexParagraph = `\\`
)

var boldRe = regexp.MustCompile(`\*([^*]+)\*`)

// LaTeX renders the glossary as glossaries-package entry definitions.
type LaTeX struct {
	file string
}

// NewLaTeX returns a renderer that emits a single document named file.
func NewLaTeX(file string) *LaTeX {
	return &LaTeX{file: file}
}

func (l *LaTeX) Name() string { return "latex" }

// Render produces one file holding the whole document.
func (l *LaTeX) Render(ctx *Context) (*Output, error) {
	doc, err := l.Build(ctx)
	if err != nil {
		return nil, err
	}
	out := &storage.Plan{}
	out.AddFile(l.file, []byte(doc))
	return out, nil
}

// Build returns the document: one preamble command per metadata key, then
// one \newglossaryentry per entry.
func (l *LaTeX) Build(ctx *Context) (string, error) {
	if err := ctx.validate(); err != nil {
		return "", err
	}
	var b strings.Builder
	g := ctx.Glossary
	for _, k := range g.Meta().Keys() {
		v, _ := g.Meta().Get(k)
		fmt.Fprintf(&b, "\\%s{%s}\n", k, v)
	}

	errs := entryErrors{ctx: ctx}
	for _, e := range g.Entries() {
		desc, err := latexDescription(ctx, e)
		if errs.add(e.Name(), err) {
			continue
		}
		opts := []string{
			"name={" + translit.LaTeX(e.Name()) + "}",
			"description={" + desc + "}",
		}
		if r, ok := e.(*models.Reference); ok {
			if t, found := ctx.target(r); found {
				opts = append(opts, "see={"+t.EscapedName()+"}")
			}
		}
		fmt.Fprintf(&b, "\\newglossaryentry{%s}{%s}\n", e.EscapedName(), strings.Join(opts, ","))
	}
	if err := errs.result(); err != nil {
		return "", err
	}
	return b.String(), nil
}

func latexDescription(ctx *Context, e models.Entry) (string, error) {
	switch e := e.(type) {
	case *models.Content:
		body, err := ctx.expand(e, func(t models.Entry, text string) string {
			return latexLink(t.EscapedName(), translit.LaTeX(text))
		}, latexText)
		if err != nil {
			return "", err
		}
		return boldRe.ReplaceAllString(body, `\textbf{$1}`), nil
	case *models.Reference:
		return `\textit{\seename} ` + latexLink(models.EscapeName(e.Target()), translit.LaTeX(e.Target())), nil
	case *models.Placeholder:
		return latexEmpty, nil
	}
	return "", fmt.Errorf("render: unknown entry kind %v", e.Kind())
}

func latexLink(key, text string) string {
	return `\glslink{` + key + `}{` + latexArrow + `\textbf{` + text + `}}`
}

// latexText escapes literal body text and turns paragraph markers into
// forced line breaks. Equations are already TeX and pass through.
func latexText(s string) string {
	return paragraphs(s, latexParagraph, func(p string) string {
		return replaceEquations(p, translit.LaTeX, func(eq string) string { return "$" + eq + "$" })
	})
}
