// Package render turns a parsed glossary into output documents. Each
// renderer produces a storage.Plan; writing it to disk is left to the caller.
package render

import (
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/multierr"

	"github.com/starford/glossgen/internal/apperr"
	"github.com/starford/glossgen/internal/collate"
	"github.com/starford/glossgen/internal/inline"
	"github.com/starford/glossgen/internal/models"
	"github.com/starford/glossgen/internal/storage"
)

// Output is the set of files a renderer produces.
type Output = storage.Plan

// Renderer produces one output format.
type Renderer interface {
	Name() string
	Render(ctx *Context) (*Output, error)
}

// Context carries everything a renderer reads.
type Context struct {
	Glossary *models.Glossary
	Refs     collate.ReferenceMap
	Logger   *slog.Logger
	// Strict turns per-entry syntax errors and unusable escaped names into a
	// failed render instead of a logged warning.
	Strict bool

	names error
}

// NewContext builds the reference map for g and wraps both in a Context.
func NewContext(g *models.Glossary, logger *slog.Logger, strict bool) *Context {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Context{
		Glossary: g,
		Refs:     collate.BuildReferenceMap(g, logger),
		Logger:   logger,
		Strict:   strict,
		names:    checkNames(g, logger),
	}
}

// checkNames finds entries whose escaped name is empty or already taken by
// another entry. Such entries would share a file name or gls key.
func checkNames(g *models.Glossary, logger *slog.Logger) error {
	var errs error
	owner := make(map[string]string, g.Len())
	for _, e := range g.Entries() {
		esc := e.EscapedName()
		if esc == "" {
			logger.Warn("escaped name empty", slog.String("entry", e.Name()))
			errs = multierr.Append(errs, &EntryError{
				Entry: e.Name(),
				Err:   fmt.Errorf("%w: name has no letters or digits", apperr.ErrEscapedName),
			})
			continue
		}
		if other, taken := owner[esc]; taken {
			logger.Warn("escaped name collision",
				slog.String("entry", e.Name()),
				slog.String("other", other),
				slog.String("escaped", esc))
			errs = multierr.Append(errs, &EntryError{
				Entry: e.Name(),
				Err:   fmt.Errorf("%w: %q is also used by %q", apperr.ErrEscapedName, esc, other),
			})
			continue
		}
		owner[esc] = e.Name()
	}
	return errs
}

// validate returns the escaped-name problems found by NewContext when
// running strict.
func (ctx *Context) validate() error {
	if ctx.Strict {
		return ctx.names
	}
	return nil
}

// EntryError wraps a failure to render a single entry.
type EntryError struct {
	Entry string
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("render: entry %q: %v", e.Entry, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// entryErrors accumulates per-entry failures during one render.
type entryErrors struct {
	ctx *Context
	err error
}

// add records err for entry and reports whether the entry must be skipped.
func (c *entryErrors) add(entry string, err error) bool {
	if err == nil {
		return false
	}
	c.ctx.Logger.Error("entry skipped",
		slog.String("entry", entry),
		slog.String("error", err.Error()))
	c.err = multierr.Append(c.err, &EntryError{Entry: entry, Err: err})
	return true
}

// result returns the collected errors in strict mode and nil otherwise.
func (c *entryErrors) result() error {
	if c.ctx.Strict {
		return c.err
	}
	return nil
}

// meta returns a front-matter value, warning when the key is absent.
func (ctx *Context) meta(key string) string {
	v, ok := ctx.Glossary.Meta().Get(key)
	if !ok {
		ctx.Logger.Warn("metadata missing", slog.String("key", key))
	}
	return v
}

// linkTarget returns the escaped name a link to e should point at. A
// reference links straight to its target's page.
func (ctx *Context) linkTarget(e models.Entry) string {
	if r, ok := e.(*models.Reference); ok {
		if t, found := ctx.Glossary.Lookup(r.Target()); found {
			return t.EscapedName()
		}
	}
	return e.EscapedName()
}

// target resolves a reference entry, warning when it dangles.
func (ctx *Context) target(r *models.Reference) (models.Entry, bool) {
	t, ok := ctx.Glossary.Lookup(r.Target())
	if !ok {
		ctx.Logger.Warn("reference target missing",
			slog.String("entry", r.Name()),
			slog.String("target", r.Target()))
	}
	return t, ok
}

// expand runs the inline parser over a content body.
func (ctx *Context) expand(c *models.Content, f inline.Formatter, escape func(string) string) (string, error) {
	return inline.Expand(c.Body(), ctx.Glossary, f,
		inline.WithLogger(ctx.Logger.With(slog.String("entry", c.Name()))),
		inline.WithTextEscaper(escape))
}

// ParagraphBreak separates paragraphs inside an entry body.
const ParagraphBreak = "<p/>"

// EquationService renders a TeX expression as an image.
const EquationService = "https://latex.codecogs.com/gif.latex?"

var equationRe = regexp.MustCompile(`\$([^$]+)\$`)

// equationURL returns the image URL for a TeX expression.
func equationURL(eq string) string {
	return EquationService + rawURLEncode(eq)
}

// rawURLEncode percent-encodes s as RFC 3986 requires, with spaces as %20.
func rawURLEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// replaceEquations rewrites every $…$ span in s with eq and passes the text
// between spans through text.
func replaceEquations(s string, text, eq func(string) string) string {
	var b strings.Builder
	last := 0
	for _, m := range equationRe.FindAllStringSubmatchIndex(s, -1) {
		b.WriteString(text(s[last:m[0]]))
		b.WriteString(eq(s[m[2]:m[3]]))
		last = m[1]
	}
	b.WriteString(text(s[last:]))
	return b.String()
}

// paragraphs applies fn to each paragraph of s and joins them with sep.
func paragraphs(s, sep string, fn func(string) string) string {
	parts := strings.Split(s, ParagraphBreak)
	for i, p := range parts {
		parts[i] = fn(p)
	}
	return strings.Join(parts, sep)
}

// OtherLetter groups names that do not start with a–z.
const OtherLetter = "#"

// letterOf returns the index letter of an entry.
func letterOf(e models.Entry) string {
	escaped := e.EscapedName()
	if escaped == "" || escaped[0] < 'a' || escaped[0] > 'z' {
		return OtherLetter
	}
	return escaped[:1]
}

// letterSlug names the page of a letter group.
func letterSlug(letter string) string {
	if letter == OtherLetter {
		return "other"
	}
	return letter
}

type letterGroup struct {
	Letter  string
	Entries []models.Entry
}

// groupByLetter splits sorted entries into runs sharing a first letter.
func groupByLetter(entries []models.Entry) []letterGroup {
	var groups []letterGroup
	for _, e := range entries {
		l := letterOf(e)
		if n := len(groups); n == 0 || groups[n-1].Letter != l {
			groups = append(groups, letterGroup{Letter: l})
		}
		groups[len(groups)-1].Entries = append(groups[len(groups)-1].Entries, e)
	}
	return groups
}

// neighbors returns the entries before and after index i.
func neighbors(entries []models.Entry, i int) (prev, next models.Entry) {
	if i > 0 {
		prev = entries[i-1]
	}
	if i+1 < len(entries) {
		next = entries[i+1]
	}
	return prev, next
}

// imageFile is the name an image is staged under inside img/.
func imageFile(img models.Image) string {
	return filepath.Base(img.Path)
}

// imageAlt strips the extension from an image file name.
func imageAlt(img models.Image) string {
	base := imageFile(img)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// stageImages adds every image in the glossary to out under img/.
func stageImages(g *models.Glossary, out *Output) {
	seen := make(map[string]struct{})
	for _, e := range g.Entries() {
		for _, img := range e.Images() {
			dst := "img/" + imageFile(img)
			if _, ok := seen[dst]; ok {
				continue
			}
			seen[dst] = struct{}{}
			out.Assets = append(out.Assets, storage.Asset{Src: img.Path, Path: dst})
		}
	}
	out.Prune = append(out.Prune, storage.Prune{Dir: "img"})
}
