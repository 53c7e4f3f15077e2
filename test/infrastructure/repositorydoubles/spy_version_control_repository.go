//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/podupdate/internal/domain/repositories"
)

// SpyVersionControlRepository implements repositories.VersionControlRepository,
// recording every call in Calls ("identity", "branch", "stage", "commit", "push").
type SpyVersionControlRepository struct {
	Remote    string
	RemoteErr error

	IdentityErr error
	BranchErr   error
	StageErr    error
	CommitErr   error
	PushErr     error

	Calls         []string
	Username      string
	Email         string
	Branch        string
	StagedPaths   []string
	CommitTitle   string
	PushedURL     string
	PushedBranch  string
	RemotesLooked []string
}

var _ repositories.VersionControlRepository = (*SpyVersionControlRepository)(nil)

// Factory returns a VersionControlFactory always handing out this spy.
func (s *SpyVersionControlRepository) Factory() repositories.VersionControlFactory {
	return func(_ string) repositories.VersionControlRepository { return s }
}

func (s *SpyVersionControlRepository) ConfigureIdentity(_ context.Context, username, email string) error {
	s.Calls = append(s.Calls, "identity")
	s.Username = username
	s.Email = email
	return s.IdentityErr
}

func (s *SpyVersionControlRepository) CreateBranch(_ context.Context, branch string) error {
	s.Calls = append(s.Calls, "branch")
	s.Branch = branch
	return s.BranchErr
}

func (s *SpyVersionControlRepository) Stage(_ context.Context, paths ...string) error {
	s.Calls = append(s.Calls, "stage")
	s.StagedPaths = append(s.StagedPaths, paths...)
	return s.StageErr
}

func (s *SpyVersionControlRepository) Commit(_ context.Context, title string) error {
	s.Calls = append(s.Calls, "commit")
	s.CommitTitle = title
	return s.CommitErr
}

func (s *SpyVersionControlRepository) Push(_ context.Context, remoteURL, branch string) error {
	s.Calls = append(s.Calls, "push")
	s.PushedURL = remoteURL
	s.PushedBranch = branch
	return s.PushErr
}

func (s *SpyVersionControlRepository) RemoteURL(_ context.Context, remote string) (string, error) {
	s.RemotesLooked = append(s.RemotesLooked, remote)
	return s.Remote, s.RemoteErr
}
