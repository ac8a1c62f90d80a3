// Package testutil provides shared test helpers for glossary sources,
// loggers and output directories.
package testutil

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/glossgen/internal/models"
	"github.com/starford/glossgen/internal/parser"
	"github.com/starford/glossgen/internal/storage"
)

// WriteSource writes src as glossary.txt into a fresh temp directory along
// with a small placeholder file for every image name, and returns the
// source path.
func WriteSource(t *testing.T, src string, images ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, img := range images {
		p := filepath.Join(dir, img)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("image:"+img), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(dir, "glossary.txt")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// Glossary writes src with its images and parses it.
func Glossary(t *testing.T, src string, images ...string) *models.Glossary {
	t.Helper()
	g, err := parser.ParseFile(WriteSource(t, src, images...))
	if err != nil {
		t.Fatalf("parse glossary: %v", err)
	}
	return g
}

// Logger returns a debug-level text logger writing into the returned buffer.
func Logger(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

// TestOutput creates a temporary output directory with a storage.Provider.
func TestOutput(t *testing.T) (string, storage.Provider) {
	t.Helper()
	outDir := t.TempDir()
	store, err := storage.NewFS(outDir)
	if err != nil {
		t.Fatal(err)
	}
	return outDir, store
}
