// Package lockfile holds helpers shared by the lockfile readers.
package lockfile

import (
	"crypto/sha256"
	"encoding/hex"
	"os"

	"github.com/rios0rios0/podupdate/internal/domain/entities"
)

// Read returns the content of the lockfile at path and its hex SHA-256.
// A read failure is returned as *entities.ParseError.
func Read(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", &entities.ParseError{Path: path, Err: err}
	}
	return data, Hash(data), nil
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
