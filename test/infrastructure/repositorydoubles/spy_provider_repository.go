//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"strings"

	"github.com/rios0rios0/podupdate/internal/domain/entities"
	"github.com/rios0rios0/podupdate/internal/domain/repositories"
)

// SpyProviderRepository implements repositories.ProviderRepository as a configurable spy.
type SpyProviderRepository struct {
	ProviderName string
	Token        string
	URLPattern   string

	CreatedPR   *entities.PullRequest
	CreatePRErr error

	PRRepos  []entities.Repository
	PRInputs []entities.PullRequestInput
}

var _ repositories.ProviderRepository = (*SpyProviderRepository)(nil)

// Factory returns a ProviderFactory that records the token and hands out this spy.
func (p *SpyProviderRepository) Factory() func(token string) repositories.ProviderRepository {
	return func(token string) repositories.ProviderRepository {
		p.Token = token
		return p
	}
}

func (p *SpyProviderRepository) Name() string { return p.ProviderName }

func (p *SpyProviderRepository) MatchesURL(rawURL string) bool {
	return p.URLPattern != "" && strings.Contains(rawURL, p.URLPattern)
}

func (p *SpyProviderRepository) PushURL(repo entities.Repository) string {
	return fmt.Sprintf("https://token:%s@example.com/%s.git", p.Token, entities.RepositorySlug(repo))
}

func (p *SpyProviderRepository) CreatePullRequest(
	_ context.Context,
	repo entities.Repository,
	input entities.PullRequestInput,
) (*entities.PullRequest, error) {
	p.PRRepos = append(p.PRRepos, repo)
	p.PRInputs = append(p.PRInputs, input)
	if p.CreatePRErr != nil {
		return nil, p.CreatePRErr
	}
	if p.CreatedPR != nil {
		return p.CreatedPR, nil
	}
	return &entities.PullRequest{ID: len(p.PRInputs), Title: input.Title}, nil
}
