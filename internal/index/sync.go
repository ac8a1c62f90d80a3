package index

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/k3a/html2text"

	"github.com/starford/glossgen/internal/checksum"
	"github.com/starford/glossgen/internal/collate"
	"github.com/starford/glossgen/internal/inline"
	"github.com/starford/glossgen/internal/models"
)

// Dash entry types written to searchIndex.
const (
	TypeEntry = "Entry"
	TypeAlias = "Alias"
	TypeTag   = "Tag"
)

// SyncReport counts what Rebuild changed.
type SyncReport struct {
	Indexed   int
	Unchanged int
	Removed   int
}

// Rebuild brings the index in line with g:
//   - new/changed entries are upserted
//   - entries no longer in the glossary are deleted
//   - the searchIndex table is rewritten
//
// Entries whose checksum is unchanged are skipped.
func (db *DB) Rebuild(g *models.Glossary, refs collate.ReferenceMap, logger *slog.Logger) (*SyncReport, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	checksums, err := db.AllChecksums()
	if err != nil {
		return nil, err
	}
	outgoing := invert(refs)

	rep := &SyncReport{}
	now := time.Now()
	present := make(map[string]struct{}, g.Len())
	docset := make([]DocsetRow, 0, g.Len()+len(g.Tags()))

	for _, e := range g.Entries() {
		present[e.Name()] = struct{}{}
		path := pagePath(g, e)
		docset = append(docset, DocsetRow{Name: e.Name(), Type: docsetType(e), Path: path})

		body := plainText(g, e, logger)
		links := outgoing[e.Name()]
		row := EntryRow{
			Name:      e.Name(),
			Escaped:   e.EscapedName(),
			Kind:      e.Kind().String(),
			Tags:      e.Tags(),
			Path:      path,
			UpdatedAt: now,
		}
		row.Checksum = checksum.Fields(row.Kind, strings.Join(row.Tags, " "), row.Path, strings.Join(links, "\x00"), body)
		if checksums[e.Name()] == row.Checksum {
			rep.Unchanged++
			continue
		}
		if err := db.UpsertEntry(row, body, links); err != nil {
			return rep, err
		}
		rep.Indexed++
		logger.Debug("index: indexed", slog.String("entry", e.Name()))
	}

	for name := range checksums {
		if _, ok := present[name]; ok {
			continue
		}
		if err := db.DeleteEntry(name); err != nil {
			logger.Warn("index: delete failed", slog.String("entry", name), slog.String("error", err.Error()))
			continue
		}
		rep.Removed++
		logger.Debug("index: removed stale", slog.String("entry", name))
	}

	for _, tag := range g.Tags() {
		docset = append(docset, DocsetRow{Name: tag, Type: TypeTag, Path: "tags/" + tag + ".html"})
	}
	if err := db.ReplaceDocset(docset); err != nil {
		return rep, err
	}
	return rep, nil
}

// invert turns target → referrers into referrer → sorted targets.
func invert(refs collate.ReferenceMap) map[string][]string {
	out := make(map[string][]string)
	for target, sources := range refs {
		for src := range sources {
			out[src] = append(out[src], target)
		}
	}
	for _, targets := range out {
		sort.Strings(targets)
	}
	return out
}

// pagePath is the website page an entry is reached through. References
// point at their target's page.
func pagePath(g *models.Glossary, e models.Entry) string {
	if r, ok := e.(*models.Reference); ok {
		if t, found := g.Lookup(r.Target()); found {
			return t.EscapedName() + ".html"
		}
	}
	return e.EscapedName() + ".html"
}

func docsetType(e models.Entry) string {
	if e.Kind() == models.KindReference {
		return TypeAlias
	}
	return TypeEntry
}

// plainText renders an entry as searchable text.
func plainText(g *models.Glossary, e models.Entry, logger *slog.Logger) string {
	switch e := e.(type) {
	case *models.Content:
		body, err := inline.Expand(e.Body(), g, func(_ models.Entry, text string) string { return text })
		if err != nil {
			logger.Warn("index: raw body indexed",
				slog.String("entry", e.Name()),
				slog.String("error", err.Error()))
			body = e.Body()
		}
		return strings.TrimSpace(html2text.HTML2Text(body))
	case *models.Reference:
		return "See " + e.Target()
	}
	return ""
}
