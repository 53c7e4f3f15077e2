package repositories

import "github.com/rios0rios0/podupdate/internal/domain/entities"

// LockfileRepository reads one lockfile format into a snapshot.
// Each implementation owns a single ecosystem (CocoaPods, Cargo, ...).
type LockfileRepository interface {
	// Name returns the lockfile kind (e.g. "cocoapods", "cargo").
	Name() string

	// Supports returns true if the file at path is in this format.
	Supports(path string) bool

	// Parse reads the lockfile at path. Failures are *entities.ParseError.
	Parse(path string) (*entities.Snapshot, error)
}
