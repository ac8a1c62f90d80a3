package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/starford/glossgen/internal/models"
	"github.com/starford/glossgen/internal/storage"
)

const (
	mdRule      = "\n\n***\n\n"
	mdOverview  = "* [Go to Overview](Home)\n"
	footerStamp = "2006-01-02 15:04:05"
)

// Wiki renders GitHub-wiki flavoured Markdown pages.
type Wiki struct {
	now func() time.Time
}

// WikiOption configures a Wiki renderer.
type WikiOption func(*Wiki)

// WithClock sets the time source used for the footer timestamp.
func WithClock(now func() time.Time) WikiOption {
	return func(w *Wiki) { w.now = now }
}

// NewWiki returns a Markdown wiki renderer.
func NewWiki(opts ...WikiOption) *Wiki {
	w := &Wiki{now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Wiki) Name() string { return "wiki" }

// Render produces one page per entry plus the home, tag, letter, sidebar and
// footer pages.
func (w *Wiki) Render(ctx *Context) (*Output, error) {
	if err := ctx.validate(); err != nil {
		return nil, err
	}
	g := ctx.Glossary
	out := &storage.Plan{
		Prune: []storage.Prune{
			{Dir: "", Ext: ".md"},
			{Dir: "tags", Ext: ".md"},
			{Dir: "letters", Ext: ".md"},
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
		out.AddFile(e.EscapedName()+".md", []byte(page))
	}
	if err := errs.result(); err != nil {
		return nil, err
	}

	out.AddFile("Home.md", []byte(w.homePage(ctx)))
	out.AddFile("Tags.md", []byte(w.tagsPage(g.Tags())))
	out.AddFile("_Sidebar.md", []byte(w.sidebar(g.Tags(), groupByLetter(entries))))
	out.AddFile("_Footer.md", []byte(w.footer(ctx)))

	tagged := g.Tagged()
	for _, tag := range g.Tags() {
		out.AddFile("tags/"+tag+".md", []byte(w.listPage(ctx, "Tag #"+tag, tagged[tag])))
	}
	for _, grp := range groupByLetter(entries) {
		out.AddFile("letters/"+letterSlug(grp.Letter)+".md",
			[]byte(w.listPage(ctx, "Letter "+strings.ToUpper(grp.Letter), grp.Entries)))
	}

	stageImages(g, out)
	return out, nil
}

func (w *Wiki) link(ctx *Context, e models.Entry) string {
	return fmt.Sprintf("[%s](%s)", e.Name(), ctx.linkTarget(e))
}

func tagLink(tag string) string {
	return fmt.Sprintf("[#%s](%s)", tag, tag)
}

func (w *Wiki) entryPage(ctx *Context, e, prev, next models.Entry) (string, error) {
	body, err := w.Entry(ctx, e)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("# " + e.Name() + "\n")
	if tags := e.Tags(); len(tags) > 0 {
		links := make([]string, len(tags))
		for i, t := range tags {
			links[i] = tagLink(t)
		}
		b.WriteString("> tagged with: " + strings.Join(links, ", ") + "\n")
	}
	b.WriteString("\n" + body + "\n\n")

	for _, img := range e.Images() {
		fmt.Fprintf(&b, "![%s](img/%s)\n\n", imageAlt(img), imageFile(img))
	}

	b.WriteString(mdRule)
	b.WriteString(mdOverview)
	for _, ref := range ctx.Refs.Referrers(e.Name()) {
		b.WriteString("* See also " + w.link(ctx, ref) + "\n")
	}
	if prev != nil {
		b.WriteString("* Previous: " + w.link(ctx, prev) + "\n")
	}
	if next != nil {
		b.WriteString("* Next: " + w.link(ctx, next) + "\n")
	}
	return b.String(), nil
}

// Entry renders the Markdown body of a single entry.
func (w *Wiki) Entry(ctx *Context, e models.Entry) (string, error) {
	switch e := e.(type) {
	case *models.Content:
		body, err := ctx.expand(e, func(t models.Entry, text string) string {
			return fmt.Sprintf("[%s](%s)", text, t.EscapedName())
		}, markdownText)
		if err != nil {
			return "", err
		}
		return e.Name() + " " + body, nil
	case *models.Reference:
		if t, ok := ctx.target(e); ok {
			return "_See_ " + w.link(ctx, t), nil
		}
		return "_See_ " + e.Target(), nil
	case *models.Placeholder:
		return fmt.Sprintf("_There is no content for %s yet!_", e.Name()), nil
	}
	return "", fmt.Errorf("render: unknown entry kind %v", e.Kind())
}

// markdownText turns equations into image embeds and paragraph markers into
// blank lines.
func markdownText(s string) string {
	return paragraphs(s, "\n\n", func(p string) string {
		return replaceEquations(p, identity, func(eq string) string {
			return fmt.Sprintf("![%s](%s)", eq, equationURL(eq))
		})
	})
}

func identity(s string) string { return s }

func (w *Wiki) homePage(ctx *Context) string {
	var b strings.Builder
	b.WriteString("# " + ctx.meta("title") + "\n\n")
	letter := ""
	for _, e := range ctx.Glossary.Entries() {
		if e.Kind() == models.KindPlaceholder {
			continue
		}
		if l := letterOf(e); l != letter {
			letter = l
			b.WriteString(mdRule)
		}
		b.WriteString("* " + w.link(ctx, e) + "\n")
	}
	b.WriteString(mdRule)
	return b.String()
}

func (w *Wiki) tagsPage(tags []string) string {
	var b strings.Builder
	b.WriteString("# Tags\n\n")
	for _, t := range tags {
		b.WriteString("* " + tagLink(t) + "\n")
	}
	return b.String()
}

func (w *Wiki) sidebar(tags []string, letters []letterGroup) string {
	var b strings.Builder
	b.WriteString("[**Overview**](Home)\n\n")
	if len(letters) > 0 {
		links := make([]string, len(letters))
		for i, grp := range letters {
			links[i] = fmt.Sprintf("[%s](%s)", strings.ToUpper(grp.Letter), letterSlug(grp.Letter))
		}
		b.WriteString(strings.Join(links, " ") + "\n\n")
	}
	b.WriteString("[**Tags**](Tags)\n\n")
	for _, t := range tags {
		b.WriteString("* " + tagLink(t) + "\n")
	}
	return b.String()
}

func (w *Wiki) footer(ctx *Context) string {
	return "*Last updated at " + w.now().Format(footerStamp) + "*\n\n*Author:* " + ctx.meta("author")
}

func (w *Wiki) listPage(ctx *Context, title string, entries []models.Entry) string {
	var b strings.Builder
	b.WriteString("# " + title + "\n\n")
	for _, e := range entries {
		b.WriteString("* " + w.link(ctx, e) + "\n")
	}
	b.WriteString(mdRule)
	b.WriteString(mdOverview)
	return b.String()
}
