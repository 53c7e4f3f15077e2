//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/podupdate/internal/domain/repositories"
)

// SpyCommandRepository implements repositories.CommandRepository as a spy.
type SpyCommandRepository struct {
	RunErr error

	CallCount   int
	LastDir     string
	LastCommand string
}

var _ repositories.CommandRepository = (*SpyCommandRepository)(nil)

func (s *SpyCommandRepository) Run(_ context.Context, dir, command string) error {
	s.CallCount++
	s.LastDir = dir
	s.LastCommand = command
	return s.RunErr
}
