package repositories

import (
	"context"

	"github.com/rios0rios0/podupdate/internal/domain/entities"
)

// ProviderRepository abstracts a Git hosting service (GitHub, GitLab,
// Azure DevOps) that accepts pushed branches and opens pull requests.
type ProviderRepository interface {
	// Name returns the provider identifier (e.g. "github").
	Name() string

	// MatchesURL returns true if the remote URL belongs to this provider.
	MatchesURL(rawURL string) bool

	// PushURL returns an HTTPS remote URL with the token embedded.
	PushURL(repo entities.Repository) string

	// CreatePullRequest opens a pull request. A non-2xx answer is
	// reported as *entities.ApiStatusError.
	CreatePullRequest(
		ctx context.Context,
		repo entities.Repository,
		input entities.PullRequestInput,
	) (*entities.PullRequest, error)
}
