//go:build sqlite_fts5

package index

import (
	"testing"
	"time"
)

func TestFTS5_TableExists(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM entries_fts`).Scan(&count); err != nil {
		t.Fatalf("entries_fts table missing: %v", err)
	}
}

func TestFTS5_SearchWithSnippet(t *testing.T) {
	db := testDB(t)
	row := EntryRow{Name: "Kiwi", Kind: "content", Checksum: "f1", Tags: []string{"fruit"}, Path: "kiwi.html", UpdatedAt: time.Now()}
	if err := db.UpsertEntry(row, "A fuzzy brown fruit with bright green flesh.", nil); err != nil {
		t.Fatalf("UpsertEntry: %v", err)
	}

	results, err := db.Search("fuzzy", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Name != "Kiwi" || results[0].Path != "kiwi.html" {
		t.Errorf("result = %+v", results[0])
	}
	if results[0].Snippet == "" {
		t.Error("expected non-empty snippet")
	}
}

func TestFTS5_DeleteRemovesFromFTS(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertEntry(EntryRow{Name: "gone", Kind: "content", Checksum: "g", UpdatedAt: time.Now()}, "vanishing content", nil)
	_ = db.DeleteEntry("gone")

	results, _ := db.Search("vanishing", 10)
	for _, r := range results {
		if r.Name == "gone" {
			t.Error("deleted entry still in FTS index")
		}
	}
}

func TestFTS5_UpsertReplacesContent(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	_ = db.UpsertEntry(EntryRow{Name: "evo", Kind: "content", Checksum: "1", UpdatedAt: now}, "original text", nil)
	_ = db.UpsertEntry(EntryRow{Name: "evo", Kind: "content", Checksum: "2", UpdatedAt: now}, "replacement text", nil)

	if results, _ := db.Search("original", 10); len(results) != 0 {
		t.Error("old FTS content should be gone")
	}
	if results, _ := db.Search("replacement", 10); len(results) != 1 {
		t.Errorf("FTS not updated: %+v", results)
	}
}
