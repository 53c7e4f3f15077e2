package entities

import (
	"fmt"
	"strings"

	gitforgeEntities "github.com/rios0rios0/gitforge/domain/entities"
)

// ProjectScopedProvider groups repositories under organization projects.
const ProjectScopedProvider = "azuredevops"

// Repository is re-exported from gitforge. Only Organization, Project,
// Name and ProviderName are required to publish a pull request.
type Repository = gitforgeEntities.Repository

// RepositorySlug returns "org/name" (or "org/project/name" for providers
// that group repositories under projects).
func RepositorySlug(repo Repository) string {
	parts := []string{repo.Organization}
	if repo.Project != "" {
		parts = append(parts, repo.Project)
	}
	parts = append(parts, repo.Name)
	return strings.Join(parts, "/")
}

// ParseRepositorySlug turns a configured slug into a Repository for the
// given provider: "owner/name" in general, "organization/project/name" for
// ProjectScopedProvider. A trailing ".git" is dropped.
func ParseRepositorySlug(provider, slug string) (*Repository, error) {
	segments := strings.Split(strings.Trim(slug, "/"), "/")
	want := 2 //nolint:mnd // owner/name
	if provider == ProjectScopedProvider {
		want = 3 //nolint:mnd // organization/project/name
	}

	if len(segments) != want {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRepository, slug)
	}
	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRepository, slug)
		}
	}

	repo := &Repository{
		Organization: segments[0],
		Name:         strings.TrimSuffix(segments[want-1], ".git"),
		ProviderName: provider,
	}
	if provider == ProjectScopedProvider {
		repo.Project = segments[1]
	}
	return repo, nil
}
