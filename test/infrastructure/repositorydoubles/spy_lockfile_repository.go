//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/podupdate/internal/domain/entities"
	"github.com/rios0rios0/podupdate/internal/domain/repositories"
)

// SpyLockfileRepository implements repositories.LockfileRepository. Each
// Parse call returns the next queued snapshot/error pair.
type SpyLockfileRepository struct {
	FormatName string
	Snapshots  []*entities.Snapshot
	ParseErrs  []error

	ParsedPaths []string
}

var _ repositories.LockfileRepository = (*SpyLockfileRepository)(nil)

func (s *SpyLockfileRepository) Name() string {
	if s.FormatName == "" {
		return "spy"
	}
	return s.FormatName
}

func (s *SpyLockfileRepository) Supports(_ string) bool { return true }

func (s *SpyLockfileRepository) Parse(path string) (*entities.Snapshot, error) {
	call := len(s.ParsedPaths)
	s.ParsedPaths = append(s.ParsedPaths, path)

	if call < len(s.ParseErrs) && s.ParseErrs[call] != nil {
		return nil, s.ParseErrs[call]
	}
	if call < len(s.Snapshots) {
		return s.Snapshots[call], nil
	}
	return entities.NewSnapshot(path, "", nil), nil
}
