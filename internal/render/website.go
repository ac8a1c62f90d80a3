package render

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/starford/glossgen/internal/models"
	"github.com/starford/glossgen/internal/storage"
)

// Website renders a static HTML site through a page template.
type Website struct {
	tmpl *PageTemplate
}

// NewWebsite returns a website renderer. A nil template selects the
// built-in one.
func NewWebsite(tmpl *PageTemplate) (*Website, error) {
	if tmpl == nil {
		var err error
		if tmpl, err = DefaultTemplate(); err != nil {
			return nil, err
		}
	}
	return &Website{tmpl: tmpl}, nil
}

func (w *Website) Name() string { return "website" }

var overviewCrumb = Crumb{Title: "Overview", Href: "index.html"}

type sitePage struct {
	path string
	page *Page
}

// Render produces one page per entry plus the index, tag and letter pages
// and a sidebar fragment.
func (w *Website) Render(ctx *Context) (*Output, error) {
	if err := ctx.validate(); err != nil {
		return nil, err
	}
	g := ctx.Glossary
	out := &storage.Plan{
		Prune: []storage.Prune{
			{Dir: "", Ext: ".html"},
			{Dir: "tags", Ext: ".html"},
			{Dir: "letters", Ext: ".html"},
		},
	}

	errs := entryErrors{ctx: ctx}
	entries := g.Entries()
	for i, e := range entries {
		prev, next := neighbors(entries, i)
		page, err := w.entryPage(ctx, e, prev, next)
		if errs.add(e.Name(), err) {
			continue
		}
		out.AddFile(e.EscapedName()+".html", []byte(page))
	}
	if err := errs.result(); err != nil {
		return nil, err
	}

	groups := groupByLetter(entries)
	pages := []sitePage{
		{"index.html", w.indexPage(ctx, groups)},
		{"Tags.html", w.tagsPage(ctx)},
	}
	tagged := g.Tagged()
	for _, tag := range g.Tags() {
		p := w.listPage(ctx, "tag", "Tag #"+tag, tagged[tag])
		p.Breadcrumbs = append(p.Breadcrumbs, Crumb{Title: "Tags", Href: "Tags.html"})
		pages = append(pages, sitePage{"tags/" + tag + ".html", p})
	}
	for _, grp := range groups {
		p := w.listPage(ctx, "letter", "Letter "+strings.ToUpper(grp.Letter), grp.Entries)
		pages = append(pages, sitePage{"letters/" + letterSlug(grp.Letter) + ".html", p})
	}
	for _, p := range pages {
		s, err := w.tmpl.Execute(p.page)
		if err != nil {
			return nil, err
		}
		out.AddFile(p.path, []byte(s))
	}
	out.AddFile("_Sidebar.html", []byte(w.sidebar(g.Tags(), groups)))

	stageImages(g, out)
	return out, nil
}

func (w *Website) page(ctx *Context, kind, title string, body string) *Page {
	site, _ := ctx.Glossary.Meta().Get("title")
	author, _ := ctx.Glossary.Meta().Get("author")
	lang, _ := ctx.Glossary.Meta().Get("lang")
	return &Page{
		Kind:   kind,
		Title:  title,
		Body:   template.HTML(body),
		Tags:   ctx.Glossary.Tags(),
		Site:   site,
		Author: author,
		Lang:   lang,
	}
}

// htmlLink links to e from a page at root.
func htmlLink(ctx *Context, root string, e models.Entry) string {
	return fmt.Sprintf(`<a href="%s%s.html">%s</a>`, root, ctx.linkTarget(e), html.EscapeString(e.Name()))
}

func (w *Website) entryPage(ctx *Context, e, prev, next models.Entry) (string, error) {
	body, err := w.Entry(ctx, e)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(body)
	if tags := e.Tags(); len(tags) > 0 {
		b.WriteString("<h2>Tagged with</h2><ul>")
		for _, t := range tags {
			fmt.Fprintf(&b, `<li><a class="tag" href="tags/%s.html">#%s</a></li>`, t, t)
		}
		b.WriteString("</ul>")
	}
	for _, img := range e.Images() {
		fmt.Fprintf(&b, `<figure><img alt="%s" src="img/%s"></figure>`,
			html.EscapeString(imageAlt(img)), html.EscapeString(imageFile(img)))
	}
	if refs := ctx.Refs.Referrers(e.Name()); len(refs) > 0 {
		b.WriteString("<h2>See also</h2><ul>")
		for _, ref := range refs {
			b.WriteString("<li>" + htmlLink(ctx, "", ref) + "</li>")
		}
		b.WriteString("</ul>")
	}
	b.WriteString("<hr/>")
	if prev != nil {
		fmt.Fprintf(&b, `<a class="btn prev" href="%s.html">%s</a>`, prev.EscapedName(), html.EscapeString(prev.Name()))
	}
	if next != nil {
		fmt.Fprintf(&b, `<a class="btn next" href="%s.html">%s</a>`, next.EscapedName(), html.EscapeString(next.Name()))
	}

	p := w.page(ctx, "entry", e.Name(), b.String())
	l := letterOf(e)
	p.Breadcrumbs = []Crumb{
		overviewCrumb,
		{Title: strings.ToUpper(l), Href: "letters/" + letterSlug(l) + ".html"},
	}
	return w.tmpl.Execute(p)
}

// Entry renders the HTML body of a single entry.
func (w *Website) Entry(ctx *Context, e models.Entry) (string, error) {
	switch e := e.(type) {
	case *models.Content:
		body, err := ctx.expand(e, func(t models.Entry, text string) string {
			return fmt.Sprintf(`<a href="%s.html">%s</a>`, t.EscapedName(), html.EscapeString(text))
		}, htmlText)
		if err != nil {
			return "", err
		}
		return "<p>" + body + "</p>", nil
	case *models.Reference:
		if t, ok := ctx.target(e); ok {
			return `<p class="reference">See ` + htmlLink(ctx, "", t) + "</p>", nil
		}
		return `<p class="reference">See ` + html.EscapeString(e.Target()) + "</p>", nil
	case *models.Placeholder:
		return fmt.Sprintf(`<p class="empty">There is no content for %s yet!</p>`, html.EscapeString(e.Name())), nil
	}
	return "", fmt.Errorf("render: unknown entry kind %v", e.Kind())
}

// htmlText escapes literal body text, embeds equations as images and splits
// paragraphs.
func htmlText(s string) string {
	return paragraphs(s, "</p><p>", func(p string) string {
		return replaceEquations(p, html.EscapeString, func(eq string) string {
			return fmt.Sprintf(`<img class="equation" alt="%s" src="%s">`, html.EscapeString(eq), equationURL(eq))
		})
	})
}

func (w *Website) indexPage(ctx *Context, groups []letterGroup) *Page {
	var b strings.Builder
	for _, grp := range groups {
		fmt.Fprintf(&b, `<h2><a href="letters/%s.html">%s</a></h2><ul>`,
			letterSlug(grp.Letter), strings.ToUpper(grp.Letter))
		for _, e := range grp.Entries {
			b.WriteString("<li>" + htmlLink(ctx, "", e) + "</li>")
		}
		b.WriteString("</ul>")
	}
	return w.page(ctx, "index", ctx.meta("title"), b.String())
}

func (w *Website) tagsPage(ctx *Context) *Page {
	var b strings.Builder
	b.WriteString("<ul>")
	for _, t := range ctx.Glossary.Tags() {
		fmt.Fprintf(&b, `<li><a href="tags/%s.html">#%s</a></li>`, t, t)
	}
	b.WriteString("</ul>")
	p := w.page(ctx, "tags", "Tags", b.String())
	p.Breadcrumbs = []Crumb{overviewCrumb}
	return p
}

// listPage renders a page one directory below the root.
func (w *Website) listPage(ctx *Context, kind, title string, entries []models.Entry) *Page {
	var b strings.Builder
	b.WriteString("<ul>")
	for _, e := range entries {
		b.WriteString("<li>" + htmlLink(ctx, "../", e) + "</li>")
	}
	b.WriteString("</ul>")
	p := w.page(ctx, kind, title, b.String())
	p.Root = "../"
	p.Breadcrumbs = []Crumb{overviewCrumb}
	return p
}

// sidebar renders a navigation fragment for inclusion by other pages.
func (w *Website) sidebar(tags []string, groups []letterGroup) string {
	var b strings.Builder
	b.WriteString(`<nav class="sidebar"><p><a href="index.html"><strong>Overview</strong></a></p>`)
	if len(groups) > 0 {
		b.WriteString(`<p class="letters">`)
		for _, grp := range groups {
			fmt.Fprintf(&b, `<a href="letters/%s.html">%s</a> `, letterSlug(grp.Letter), strings.ToUpper(grp.Letter))
		}
		b.WriteString("</p>")
	}
	b.WriteString(`<p><a href="Tags.html"><strong>Tags</strong></a></p><ul>`)
	for _, t := range tags {
		fmt.Fprintf(&b, `<li><a href="tags/%s.html">#%s</a></li>`, t, t)
	}
	b.WriteString("</ul></nav>\n")
	return b.String()
}
