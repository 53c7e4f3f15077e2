//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/podupdate/internal/domain/commands"
	"github.com/rios0rios0/podupdate/internal/domain/entities"
)

// StubDiffCommand is a stub implementation of commands.Diff.
type StubDiffCommand struct {
	Report     *entities.Report
	ExecuteErr error

	ExecuteCallCount int
	LastBefore       string
	LastAfter        string
}

var _ commands.Diff = (*StubDiffCommand)(nil)

func (s *StubDiffCommand) Execute(beforePath, afterPath string) (*entities.Report, error) {
	s.ExecuteCallCount++
	s.LastBefore = beforePath
	s.LastAfter = afterPath
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	if s.Report == nil {
		return entities.NewReport(nil), nil
	}
	return s.Report, nil
}
