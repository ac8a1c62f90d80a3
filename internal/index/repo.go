package index

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/starford/glossgen/internal/apperr"
)

// EntryRow represents a row in the entries table.
type EntryRow struct {
	Name      string
	Escaped   string
	Kind      string
	Checksum  string
	Tags      []string
	Path      string
	UpdatedAt time.Time
}

// SearchResult represents one search hit.
type SearchResult struct {
	Name    string
	Path    string
	Snippet string
}

// UpsertEntry inserts or replaces an entry, its FTS row and its outgoing
// links within a transaction.
func (db *DB) UpsertEntry(e EntryRow, body string, links []string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	if e.Tags == nil {
		e.Tags = []string{}
	}
	tagsJSON, _ := json.Marshal(e.Tags)

	_, err = tx.Exec(`
		INSERT INTO entries (name, escaped, kind, checksum, tags, body, path, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			escaped    = excluded.escaped,
			kind       = excluded.kind,
			checksum   = excluded.checksum,
			tags       = excluded.tags,
			body       = excluded.body,
			path       = excluded.path,
			updated_at = excluded.updated_at
	`, e.Name, e.Escaped, e.Kind, e.Checksum, string(tagsJSON), body, e.Path, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("index: upsert entry: %w", err)
	}

	// FTS upsert (no-op when FTS5 tag is absent).
	if err := ftsUpsert(tx, e.Name, body, e.Tags); err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM links WHERE source = ?`, e.Name); err != nil {
		return fmt.Errorf("index: clear links: %w", err)
	}
	if len(links) > 0 {
		stmt, err := tx.Prepare(`INSERT OR IGNORE INTO links (source, target) VALUES (?, ?)`)
		if err != nil {
			return fmt.Errorf("index: prepare link insert: %w", err)
		}
		defer stmt.Close()
		for _, target := range links {
			if _, err := stmt.Exec(e.Name, target); err != nil {
				return fmt.Errorf("index: insert link: %w", err)
			}
		}
	}

	return tx.Commit()
}

// DeleteEntry removes an entry, its FTS row and its outgoing links.
func (db *DB) DeleteEntry(name string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	ftsDelete(tx, name)
	_, _ = tx.Exec(`DELETE FROM links WHERE source = ?`, name)
	_, _ = tx.Exec(`DELETE FROM entries WHERE name = ?`, name)

	return tx.Commit()
}

// GetEntry returns a single entry row.
func (db *DB) GetEntry(name string) (*EntryRow, error) {
	var (
		r        EntryRow
		tagsJSON string
	)
	err := db.conn.QueryRow(`
		SELECT name, escaped, kind, checksum, tags, path, updated_at
		FROM entries WHERE name = ?
	`, name).Scan(&r.Name, &r.Escaped, &r.Kind, &r.Checksum, &tagsJSON, &r.Path, &r.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("index: get entry %q: %w", name, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("index: get entry %q: %w", name, err)
	}
	_ = json.Unmarshal([]byte(tagsJSON), &r.Tags)
	return &r, nil
}

// AllChecksums returns the stored checksum of every indexed entry.
func (db *DB) AllChecksums() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT name, checksum FROM entries`)
	if err != nil {
		return nil, fmt.Errorf("index: all checksums: %w", err)
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var n, cs string
		if err := rows.Scan(&n, &cs); err != nil {
			return nil, err
		}
		out[n] = cs
	}
	return out, rows.Err()
}

// Backlinks returns the names of all entries whose bodies link to target.
func (db *DB) Backlinks(target string) ([]string, error) {
	rows, err := db.conn.Query(`SELECT source FROM links WHERE target = ? ORDER BY source`, target)
	if err != nil {
		return nil, fmt.Errorf("index: backlinks: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// DocsetRow is one row of the Dash searchIndex table.
type DocsetRow struct {
	Name string
	Type string
	Path string
}

// ReplaceDocset rewrites the searchIndex table.
func (db *DB) ReplaceDocset(rows []DocsetRow) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec(`DELETE FROM searchIndex`); err != nil {
		return fmt.Errorf("index: clear searchIndex: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO searchIndex(name, type, path) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("index: prepare searchIndex insert: %w", err)
	}
	defer stmt.Close()
	for _, r := range rows {
		if _, err := stmt.Exec(r.Name, r.Type, r.Path); err != nil {
			return fmt.Errorf("index: insert searchIndex: %w", err)
		}
	}
	return tx.Commit()
}

// Docset returns the searchIndex rows ordered by name.
func (db *DB) Docset() ([]DocsetRow, error) {
	rows, err := db.conn.Query(`SELECT name, type, path FROM searchIndex ORDER BY name, type`)
	if err != nil {
		return nil, fmt.Errorf("index: docset: %w", err)
	}
	defer rows.Close()
	var out []DocsetRow
	for rows.Next() {
		var r DocsetRow
		if err := rows.Scan(&r.Name, &r.Type, &r.Path); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
