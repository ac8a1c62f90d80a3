// Package collate orders entries and tags and builds the backlink index
// between entries.
package collate

import (
	"sort"

	"github.com/maruel/natural"

	"github.com/starford/glossgen/internal/models"
	"github.com/starford/glossgen/internal/translit"
)

// Key returns the collation key of s.
func Key(s string) string {
	return translit.SortKey(s)
}

// Less orders a before b by collation key. Names with equal keys fall back
// to natural order of the raw strings so output is deterministic.
func Less(a, b string) bool {
	ka, kb := Key(a), Key(b)
	if ka != kb {
		return ka < kb
	}
	return natural.Less(a, b)
}

// SortEntries sorts entries in place by name.
func SortEntries(entries []models.Entry) {
	keys := make(map[models.Entry]string, len(entries))
	for _, e := range entries {
		keys[e] = Key(e.Name())
	}
	sort.SliceStable(entries, func(i, j int) bool {
		ki, kj := keys[entries[i]], keys[entries[j]]
		if ki != kj {
			return ki < kj
		}
		return natural.Less(entries[i].Name(), entries[j].Name())
	})
}

// SortStrings sorts s in place.
func SortStrings(s []string) {
	sort.SliceStable(s, func(i, j int) bool { return Less(s[i], s[j]) })
}

// Unique returns s without repeated values, keeping first occurrences.
func Unique(s []string) []string {
	seen := make(map[string]struct{}, len(s))
	out := make([]string, 0, len(s))
	for _, v := range s {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
