// Package checksum digests generated output and watched source files.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"strings"
)

// Sum returns the hex-encoded SHA-256 digest of data.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// File returns the digest of the file at path.
func File(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Sum(data), nil
}

// Fields digests parts joined by a unit separator, so moving text from one
// part to its neighbour changes the result.
func Fields(parts ...string) string {
	return Sum([]byte(strings.Join(parts, "\x1f")))
}
