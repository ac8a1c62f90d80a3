// Package storage writes generated output into a target directory.
package storage

import "time"

// FileInfo describes a file found under an output root.
type FileInfo struct {
	Path      string // relative to the root, slash separated
	Checksum  string
	UpdatedAt time.Time
}

// Provider is the interface for output file operations. All paths are
// relative to the provider root.
type Provider interface {
	// Root returns the absolute output directory.
	Root() string
	// List returns the regular files directly inside dir whose name ends in
	// ext. An empty ext matches every file.
	List(dir, ext string) ([]FileInfo, error)
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Write atomically replaces path with content. It reports false when the
	// file already held identical bytes and was left untouched.
	Write(path string, content []byte) (bool, error)
	// Copy copies the file at the absolute path src to path, skipping the
	// copy when the contents already match.
	Copy(src, path string) (bool, error)
	// Delete removes the file at path.
	Delete(path string) error
}
