//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/podupdate/internal/domain/commands"
	"github.com/rios0rios0/podupdate/internal/domain/entities"
)

// StubPublishCommand is a stub implementation of commands.Publish.
type StubPublishCommand struct {
	PullRequest *entities.PullRequest
	ExecuteErr  error

	ExecuteCallCount int
	LastReport       *entities.Report
}

var _ commands.Publish = (*StubPublishCommand)(nil)

func (s *StubPublishCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	report *entities.Report,
) (*entities.PullRequest, error) {
	s.ExecuteCallCount++
	s.LastReport = report
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	if s.PullRequest == nil {
		return &entities.PullRequest{ID: 1, URL: "https://example.com/pull/1"}, nil
	}
	return s.PullRequest, nil
}
