package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v66/github"

	"github.com/rios0rios0/podupdate/internal/domain/entities"
	"github.com/rios0rios0/podupdate/internal/domain/repositories"
)

const (
	providerName = "github"
	host         = "github.com"
)

// GitHubProviderRepository implements repositories.ProviderRepository for GitHub.
type GitHubProviderRepository struct {
	token  string
	client *gh.Client
}

// NewGitHubProviderRepository creates a new GitHub provider with the given token.
func NewGitHubProviderRepository(token string) repositories.ProviderRepository {
	return &GitHubProviderRepository{
		token:  token,
		client: gh.NewClient(nil).WithAuthToken(token),
	}
}

// NewGitHubProviderRepositoryWithBaseURL targets another API root, such as a
// GitHub Enterprise server. baseURL must end with a slash.
func NewGitHubProviderRepositoryWithBaseURL(token, baseURL string) (repositories.ProviderRepository, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API URL %q: %w", baseURL, err)
	}

	client := gh.NewClient(nil).WithAuthToken(token)
	client.BaseURL = parsed
	return &GitHubProviderRepository{token: token, client: client}, nil
}

func (p *GitHubProviderRepository) Name() string { return providerName }

func (p *GitHubProviderRepository) MatchesURL(rawURL string) bool {
	return strings.Contains(rawURL, host)
}

func (p *GitHubProviderRepository) PushURL(repo entities.Repository) string {
	return fmt.Sprintf(
		"https://x-access-token:%s@%s/%s/%s.git",
		p.token, host, repo.Organization, repo.Name,
	)
}

func (p *GitHubProviderRepository) CreatePullRequest(
	ctx context.Context,
	repo entities.Repository,
	input entities.PullRequestInput,
) (*entities.PullRequest, error) {
	sourceBranch := strings.TrimPrefix(input.SourceBranch, "refs/heads/")
	targetBranch := strings.TrimPrefix(input.TargetBranch, "refs/heads/")

	maintainerCanModify := true
	pr, resp, err := p.client.PullRequests.Create(
		ctx, repo.Organization, repo.Name,
		&gh.NewPullRequest{
			Title:               &input.Title,
			Head:                &sourceBranch,
			Base:                &targetBranch,
			Body:                &input.Description,
			MaintainerCanModify: &maintainerCanModify,
		},
	)
	if resp != nil && resp.Response != nil && !entities.IsSuccessStatus(resp.StatusCode) {
		return nil, &entities.ApiStatusError{StatusCode: resp.StatusCode, Err: err}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create pull request: %w", err)
	}

	return &entities.PullRequest{
		ID:     pr.GetNumber(),
		Title:  pr.GetTitle(),
		URL:    pr.GetHTMLURL(),
		Status: pr.GetState(),
	}, nil
}
