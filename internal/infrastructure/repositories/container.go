package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/podupdate/internal/domain/repositories"
	adoRepo "github.com/rios0rios0/podupdate/internal/infrastructure/repositories/azuredevops"
	cargoRepo "github.com/rios0rios0/podupdate/internal/infrastructure/repositories/cargo"
	podsRepo "github.com/rios0rios0/podupdate/internal/infrastructure/repositories/cocoapods"
	gitRepo "github.com/rios0rios0/podupdate/internal/infrastructure/repositories/git"
	ghRepo "github.com/rios0rios0/podupdate/internal/infrastructure/repositories/github"
	glRepo "github.com/rios0rios0/podupdate/internal/infrastructure/repositories/gitlab"
	goRepo "github.com/rios0rios0/podupdate/internal/infrastructure/repositories/golang"
	shellRepo "github.com/rios0rios0/podupdate/internal/infrastructure/repositories/shell"
	tfRepo "github.com/rios0rios0/podupdate/internal/infrastructure/repositories/terraform"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register lockfile registry with every supported format
	if err := container.Provide(func() *LockfileRegistry {
		reg := NewLockfileRegistry()
		reg.Register(podsRepo.NewLockfileRepository())
		reg.Register(cargoRepo.NewLockfileRepository())
		reg.Register(goRepo.NewLockfileRepository())
		reg.Register(tfRepo.NewLockfileRepository())
		return reg
	}); err != nil {
		return err
	}

	// Register provider registry with all provider factories
	if err := container.Provide(func() *ProviderRegistry {
		reg := NewProviderRegistry()
		reg.Register("github", ghRepo.NewGitHubProviderRepository)
		reg.Register("gitlab", glRepo.NewGitLabProviderRepository)
		reg.Register("azuredevops", adoRepo.NewAzureDevOpsProviderRepository)
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(shellRepo.NewCommandRepository); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.VersionControlFactory {
		return gitRepo.NewVersionControlRepository
	}); err != nil {
		return err
	}

	return nil
}
