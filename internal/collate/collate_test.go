package collate

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/starford/glossgen/internal/models"
)

func names(entries []models.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name()
	}
	return out
}

func TestKey(t *testing.T) {
	if got := Key("Öl-Preis"); got != "olpreis" {
		t.Errorf("Key = %q", got)
	}
}

func TestSortStrings_FoldsUmlauts(t *testing.T) {
	tags := []string{"zebra", "Äpfel", "apfelsaft", "Birne", "über"}
	SortStrings(tags)
	want := []string{"Äpfel", "apfelsaft", "Birne", "über", "zebra"}
	if diff := cmp.Diff(want, tags); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortEntries_PermutationInvariant(t *testing.T) {
	base := []string{"Zeta", "alpha", "Öl", "Mus", "Beta 2", "Beta 10", "ölig", "_under"}
	want := append([]string(nil), base...)
	SortStrings(want)

	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		perm := rng.Perm(len(base))
		entries := make([]models.Entry, len(base))
		for i, p := range perm {
			entries[i] = models.NewPlaceholder(base[p])
		}
		SortEntries(entries)
		if diff := cmp.Diff(want, names(entries)); diff != "" {
			t.Fatalf("round %d order mismatch (-want +got):\n%s", round, diff)
		}
		for i := 1; i < len(entries); i++ {
			if Key(entries[i].Name()) < Key(entries[i-1].Name()) {
				t.Fatalf("keys out of order at %d: %q < %q", i, entries[i].Name(), entries[i-1].Name())
			}
		}
	}
}

func TestLess_TieBreakIsDeterministic(t *testing.T) {
	// "A-B" and "AB" share the key "ab".
	if Less("AB", "A-B") == Less("A-B", "AB") {
		t.Error("tie-break must order equal keys one way only")
	}
}

func TestUnique(t *testing.T) {
	got := Unique([]string{"b", "a", "b", "c", "a"})
	if diff := cmp.Diff([]string{"b", "a", "c"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildReferenceMap(t *testing.T) {
	apple := models.NewContent("Apple")
	apple.AppendLine("Grows on an => {Apple tree}[tree].")
	tree := models.NewContent("Apple tree")
	tree.AppendLine("Bears => Apple and => Malus fruit, not => Banana.")
	pie := models.NewContent("Pie")
	pie.AppendLine("Made of => Apple.")
	broken := models.NewContent("Broken")
	broken.AppendLine("Refers to => {Apple")
	malus := models.NewReference("Malus", "Apple")
	g := models.NewGlossary("", nil, []models.Entry{apple, tree, broken, malus, pie}, nil)

	m := BuildReferenceMap(g, nil)

	if diff := cmp.Diff([]string{"Apple tree", "Pie"}, names(m.Referrers("Apple"))); diff != "" {
		t.Errorf("Apple referrers mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Apple"}, names(m.Referrers("Apple tree"))); diff != "" {
		t.Errorf("Apple tree referrers mismatch (-want +got):\n%s", diff)
	}
	if len(m["Apple"]) != 2 {
		t.Errorf("Apple tree links twice to Apple but must be recorded once, got %d", len(m["Apple"]))
	}
	if _, ok := m["Malus"]; ok {
		t.Error("references through a reference entry are recorded under the target")
	}
	if m.Referrers("Banana") != nil {
		t.Error("unknown target should have no referrers")
	}
}
