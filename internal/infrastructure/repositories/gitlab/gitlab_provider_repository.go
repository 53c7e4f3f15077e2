package gitlab

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gl "gitlab.com/gitlab-org/api/client-go"

	"github.com/rios0rios0/podupdate/internal/domain/entities"
	"github.com/rios0rios0/podupdate/internal/domain/repositories"
)

const (
	providerName = "gitlab"
	host         = "gitlab.com"
)

var errClientNotInitialized = errors.New("gitlab client not initialized")

// GitLabProviderRepository implements repositories.ProviderRepository for GitLab.
// Pull requests are opened as merge requests.
type GitLabProviderRepository struct {
	token  string
	client *gl.Client
}

// NewGitLabProviderRepository creates a new GitLab provider with the given token.
func NewGitLabProviderRepository(token string) repositories.ProviderRepository {
	client, err := gl.NewClient(token)
	if err != nil {
		// Return a provider that will fail on use rather than panicking at construction
		return &GitLabProviderRepository{token: token, client: nil}
	}
	return &GitLabProviderRepository{token: token, client: client}
}

// NewGitLabProviderRepositoryWithBaseURL targets a self-managed instance.
func NewGitLabProviderRepositoryWithBaseURL(token, baseURL string) (repositories.ProviderRepository, error) {
	client, err := gl.NewClient(token, gl.WithBaseURL(baseURL))
	if err != nil {
		return nil, fmt.Errorf("failed to create GitLab client: %w", err)
	}
	return &GitLabProviderRepository{token: token, client: client}, nil
}

func (p *GitLabProviderRepository) Name() string { return providerName }

func (p *GitLabProviderRepository) MatchesURL(rawURL string) bool {
	return strings.Contains(rawURL, host)
}

func (p *GitLabProviderRepository) PushURL(repo entities.Repository) string {
	return fmt.Sprintf(
		"https://oauth2:%s@%s/%s/%s.git",
		p.token, host, repo.Organization, repo.Name,
	)
}

func (p *GitLabProviderRepository) CreatePullRequest(
	ctx context.Context,
	repo entities.Repository,
	input entities.PullRequestInput,
) (*entities.PullRequest, error) {
	if p.client == nil {
		return nil, errClientNotInitialized
	}

	pid := repo.Organization + "/" + repo.Name
	sourceBranch := strings.TrimPrefix(input.SourceBranch, "refs/heads/")
	targetBranch := strings.TrimPrefix(input.TargetBranch, "refs/heads/")

	mr, resp, err := p.client.MergeRequests.CreateMergeRequest(
		pid,
		&gl.CreateMergeRequestOptions{
			Title:        gl.Ptr(input.Title),
			Description:  gl.Ptr(input.Description),
			SourceBranch: gl.Ptr(sourceBranch),
			TargetBranch: gl.Ptr(targetBranch),
		},
		gl.WithContext(ctx),
	)
	if resp != nil && resp.Response != nil && !entities.IsSuccessStatus(resp.StatusCode) {
		return nil, &entities.ApiStatusError{StatusCode: resp.StatusCode, Err: err}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create merge request: %w", err)
	}

	return &entities.PullRequest{
		ID:     int(mr.IID),
		Title:  mr.Title,
		URL:    mr.WebURL,
		Status: mr.State,
	}, nil
}
