package collate

import (
	"log/slog"

	"github.com/starford/glossgen/internal/inline"
	"github.com/starford/glossgen/internal/models"
)

// ReferenceMap maps a target entry name to the entries whose bodies link to
// it, keyed by the referring entry's name.
type ReferenceMap map[string]map[string]models.Entry

// Add records that source links to target.
func (m ReferenceMap) Add(target string, source models.Entry) {
	refs, ok := m[target]
	if !ok {
		refs = make(map[string]models.Entry)
		m[target] = refs
	}
	refs[source.Name()] = source
}

// Referrers returns the entries linking to name in collation order.
func (m ReferenceMap) Referrers(name string) []models.Entry {
	refs := m[name]
	if len(refs) == 0 {
		return nil
	}
	out := make([]models.Entry, 0, len(refs))
	for _, e := range refs {
		out = append(out, e)
	}
	SortEntries(out)
	return out
}

// BuildReferenceMap scans the body of every content entry once and records
// each resolved inline reference. Bodies with syntax errors contribute
// nothing; the renderers report those.
func BuildReferenceMap(g *models.Glossary, logger *slog.Logger) ReferenceMap {
	m := make(ReferenceMap)
	for _, e := range g.Entries() {
		c, ok := e.(*models.Content)
		if !ok {
			continue
		}
		err := inline.Collect(c.Body(), g, func(target models.Entry) {
			m.Add(target.Name(), c)
		})
		if err != nil && logger != nil {
			logger.Debug("reference map: skipped entry",
				slog.String("entry", c.Name()),
				slog.String("error", err.Error()))
		}
	}
	return m
}
