package index

import (
	"log/slog"

	"github.com/starford/glossgen/internal/collate"
	"github.com/starford/glossgen/internal/models"
)

// GlossaryIndex defines the interface for glossary indexing operations.
// Consumers should depend on this interface rather than the concrete *DB type.
type GlossaryIndex interface {
	Rebuild(g *models.Glossary, refs collate.ReferenceMap, logger *slog.Logger) (*SyncReport, error)
	Search(query string, limit int) ([]SearchResult, error)
	Backlinks(target string) ([]string, error)
	GetEntry(name string) (*EntryRow, error)
	Close() error
}

// Verify *DB satisfies GlossaryIndex at compile time.
var _ GlossaryIndex = (*DB)(nil)
