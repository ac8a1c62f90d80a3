package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
)

func parseHTML(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// findAll returns every element below n matching tag and, when non-empty,
// carrying class.
func findAll(n *html.Node, tag, class string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.ElementNode && c.Data == tag && (class == "" || attr(c, "class") == class) {
			out = append(out, c)
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return out
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}

func hrefs(nodes []*html.Node) []string {
	var out []string
	for _, n := range nodes {
		out = append(out, attr(n, "href"))
	}
	return out
}

func renderSite(t *testing.T, src string) *Output {
	t.Helper()
	w, err := NewWebsite(nil)
	if err != nil {
		t.Fatalf("NewWebsite: %v", err)
	}
	out, err := w.Render(fixtureContext(t, src))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return out
}

func TestWebsite_Files(t *testing.T) {
	out := renderSite(t, fixture)
	want := []string{
		"2nd.html", "aepfelchen.html", "apple.html", "apple-tree.html", "malus.html", "zebra-fruit.html",
		"index.html", "Tags.html",
		"tags/fruit.html", "tags/latin.html", "tags/plant.html",
		"letters/other.html", "letters/a.html", "letters/m.html", "letters/z.html",
		"_Sidebar.html",
	}
	if diff := cmp.Diff(want, filePaths(out)); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestWebsite_ContentPage(t *testing.T) {
	out := renderSite(t, fixture)
	doc := parseHTML(t, fileContent(t, out, "apple.html"))

	main := findAll(doc, "main", "")
	if len(main) != 1 {
		t.Fatalf("main elements = %d", len(main))
	}
	if h := findAll(main[0], "h1", ""); len(h) != 1 || textOf(h[0]) != "Apple" {
		t.Errorf("title = %v", h)
	}
	wantLinks := []string{"apple-tree.html", "tags/fruit.html", "apple-tree.html", "aepfelchen.html", "apple-tree.html"}
	if diff := cmp.Diff(wantLinks, hrefs(findAll(main[0], "a", ""))); diff != "" {
		t.Errorf("links mismatch (-want +got):\n%s", diff)
	}

	paras := findAll(main[0], "p", "")
	if len(paras) < 2 || textOf(paras[0]) != "The tree bears it. " {
		t.Errorf("first paragraph = %q", textOf(paras[0]))
	}
	eq := findAll(main[0], "img", "equation")
	if len(eq) != 1 || attr(eq[0], "alt") != "a^2+b" || attr(eq[0], "src") != EquationService+"a%5E2%2Bb" {
		t.Errorf("equation = %+v", eq)
	}
	var srcs []string
	for _, img := range findAll(main[0], "img", "") {
		srcs = append(srcs, attr(img, "src"))
	}
	if len(srcs) != 2 || srcs[1] != "img/apple.png" {
		t.Errorf("images = %v", srcs)
	}

	crumbs := hrefs(findAll(findAll(doc, "nav", "breadcrumbs")[0], "a", ""))
	if diff := cmp.Diff([]string{"index.html", "letters/a.html"}, crumbs); diff != "" {
		t.Errorf("breadcrumbs mismatch (-want +got):\n%s", diff)
	}
}

func TestWebsite_EscapesText(t *testing.T) {
	out := renderSite(t, fixture)
	page := fileContent(t, out, "apple-tree.html")
	if !strings.Contains(page, "fruit &amp; more") {
		t.Errorf("ampersand not escaped:\n%s", page)
	}
}

func TestWebsite_ReferenceAndPlaceholder(t *testing.T) {
	out := renderSite(t, fixture)

	ref := findAll(parseHTML(t, fileContent(t, out, "malus.html")), "p", "reference")
	if len(ref) != 1 || textOf(ref[0]) != "See Apple" {
		t.Fatalf("reference paragraph = %v", ref)
	}
	if diff := cmp.Diff([]string{"apple.html"}, hrefs(findAll(ref[0], "a", ""))); diff != "" {
		t.Errorf("reference link mismatch (-want +got):\n%s", diff)
	}

	empty := findAll(parseHTML(t, fileContent(t, out, "aepfelchen.html")), "p", "empty")
	if len(empty) != 1 || textOf(empty[0]) != "There is no content for Äpfelchen yet!" {
		t.Errorf("placeholder paragraph = %v", empty)
	}
}

func TestWebsite_IndexAndTagPages(t *testing.T) {
	out := renderSite(t, fixture)

	index := parseHTML(t, fileContent(t, out, "index.html"))
	main := findAll(index, "main", "")[0]
	var letters []string
	for _, h := range findAll(main, "h2", "") {
		letters = append(letters, textOf(h))
	}
	if diff := cmp.Diff([]string{"#", "A", "M", "Z"}, letters); diff != "" {
		t.Errorf("letters mismatch (-want +got):\n%s", diff)
	}
	var entries []string
	for _, li := range findAll(main, "li", "") {
		entries = append(entries, hrefs(findAll(li, "a", ""))...)
	}
	want := []string{"2nd.html", "aepfelchen.html", "apple.html", "apple-tree.html", "apple.html", "zebra-fruit.html"}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("index entries mismatch (-want +got):\n%s", diff)
	}

	tag := parseHTML(t, fileContent(t, out, "tags/fruit.html"))
	tagMain := findAll(tag, "main", "")[0]
	if diff := cmp.Diff([]string{"../apple.html", "../zebra-fruit.html"}, hrefs(findAll(tagMain, "a", ""))); diff != "" {
		t.Errorf("tag links mismatch (-want +got):\n%s", diff)
	}
	crumbs := hrefs(findAll(findAll(tag, "nav", "breadcrumbs")[0], "a", ""))
	if diff := cmp.Diff([]string{"../index.html", "../Tags.html"}, crumbs); diff != "" {
		t.Errorf("breadcrumbs mismatch (-want +got):\n%s", diff)
	}
	if css := findAll(tag, "link", ""); len(css) != 1 || attr(css[0], "href") != "../style.css" {
		t.Errorf("stylesheet = %v", css)
	}
}

func TestWebsite_Sidebar(t *testing.T) {
	out := renderSite(t, fixture)
	doc := parseHTML(t, fileContent(t, out, "_Sidebar.html"))
	want := []string{
		"index.html",
		"letters/other.html", "letters/a.html", "letters/m.html", "letters/z.html",
		"Tags.html",
		"tags/fruit.html", "tags/latin.html", "tags/plant.html",
	}
	if diff := cmp.Diff(want, hrefs(findAll(doc, "a", ""))); diff != "" {
		t.Errorf("sidebar mismatch (-want +got):\n%s", diff)
	}
}

func TestWebsite_CustomTemplate(t *testing.T) {
	tmpl, err := ParseTemplate("custom", `{{ .Kind }}|{{ .Title | upper }}|{{ .Body }}`)
	if err != nil {
		t.Fatalf("ParseTemplate: %v", err)
	}
	w, err := NewWebsite(tmpl)
	if err != nil {
		t.Fatal(err)
	}
	out, err := w.Render(fixtureContext(t, fixture))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := fileContent(t, out, "malus.html")
	if !strings.HasPrefix(got, `entry|MALUS|<p class="reference">See <a href="apple.html">Apple</a></p>`) {
		t.Errorf("malus.html = %q", got)
	}
}

func TestLoadTemplate_Missing(t *testing.T) {
	if _, err := LoadTemplate("/nonexistent/page.tmpl"); err == nil {
		t.Error("expected error for missing template")
	}
}
