package models

// Glossary is the aggregate root: front matter, the collation-sorted entry
// table and the sorted, deduplicated tag list. It is built once by the
// parser and read-only afterwards.
type Glossary struct {
	source  string
	meta    *Meta
	entries []Entry
	byName  map[string]Entry
	tags    []string
}

// NewGlossary assembles a glossary from already sorted entries and tags.
// Entry names must be unique.
func NewGlossary(source string, meta *Meta, entries []Entry, tags []string) *Glossary {
	if meta == nil {
		meta = NewMeta()
	}
	byName := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byName[e.Name()] = e
	}
	return &Glossary{
		source:  source,
		meta:    meta,
		entries: entries,
		byName:  byName,
		tags:    tags,
	}
}

// Source returns the path the glossary was read from, if any.
func (g *Glossary) Source() string { return g.source }

// Meta returns the front matter.
func (g *Glossary) Meta() *Meta { return g.meta }

// Entries returns all entries in collation order.
func (g *Glossary) Entries() []Entry { return g.entries }

// Tags returns every tag used by any entry in collation order.
func (g *Glossary) Tags() []string { return g.tags }

// Len returns the number of entries.
func (g *Glossary) Len() int { return len(g.entries) }

// Lookup returns the entry with the given name.
func (g *Glossary) Lookup(name string) (Entry, bool) {
	e, ok := g.byName[name]
	return e, ok
}

// Resolve looks up name and, if it is a reference entry, follows it to its
// target. Only one hop is taken.
func (g *Glossary) Resolve(name string) (Entry, bool) {
	e, ok := g.byName[name]
	if !ok {
		return nil, false
	}
	if ref, isRef := e.(*Reference); isRef {
		return g.Lookup(ref.Target())
	}
	return e, true
}

// Tagged groups entries by tag, keeping entry order within each group.
func (g *Glossary) Tagged() map[string][]Entry {
	out := make(map[string][]Entry, len(g.tags))
	for _, e := range g.entries {
		for _, t := range e.Tags() {
			out[t] = append(out[t], e)
		}
	}
	return out
}
