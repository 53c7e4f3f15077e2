package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/podupdate/internal/domain/entities"
	"github.com/rios0rios0/podupdate/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/podupdate/internal/infrastructure/repositories"
)

const (
	originRemote      = "origin"
	changelogFile     = "CHANGELOG.md"
	changelogFileMode = 0o644
	repositoryEnvVar  = "GITHUB_REPOSITORY"
)

// Publish is the interface for publishing a report as a pull request.
type Publish interface {
	Execute(ctx context.Context, settings *entities.Settings, report *entities.Report) (*entities.PullRequest, error)
}

// PublishCommand turns the modified lockfile into a pull request: commit
// identity, fresh branch, stage, commit, push, open the pull request.
// The first failing step aborts the rest; nothing is rolled back.
type PublishCommand struct {
	providers  *infraRepos.ProviderRegistry
	vcsFactory repositories.VersionControlFactory
	clock      entities.Clock
	getenv     func(string) string
}

// NewPublishCommand creates a new PublishCommand.
func NewPublishCommand(
	providers *infraRepos.ProviderRegistry,
	vcsFactory repositories.VersionControlFactory,
	clock entities.Clock,
) *PublishCommand {
	return &PublishCommand{
		providers:  providers,
		vcsFactory: vcsFactory,
		clock:      clock,
		getenv:     os.Getenv,
	}
}

// Execute publishes the report. Failures are *entities.PublishStepFailedError.
func (it *PublishCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	report *entities.Report,
) (*entities.PullRequest, error) {
	vcs := it.vcsFactory(settings.WorkingDir)

	repo, provider, err := it.resolveTarget(ctx, settings, vcs)
	if err != nil {
		return nil, stepFailed(entities.StepRepository, err)
	}
	logger.Infof("Publishing to %s repository %s", provider.Name(), entities.RepositorySlug(*repo))

	if identityErr := vcs.ConfigureIdentity(ctx, settings.CommitUsername, settings.CommitEmail); identityErr != nil {
		return nil, stepFailed(entities.StepIdentity, identityErr)
	}

	branch := it.branchName(settings)
	if branchErr := vcs.CreateBranch(ctx, branch); branchErr != nil {
		return nil, stepFailed(entities.StepBranch, branchErr)
	}

	paths := []string{settings.Lockfile}
	if settings.Changelog {
		edited, changelogErr := updateChangelog(settings.WorkingDir, report.Updates())
		if changelogErr != nil {
			return nil, stepFailed(entities.StepChangelog, changelogErr)
		}
		if edited {
			paths = append(paths, changelogFile)
		}
	}

	if stageErr := vcs.Stage(ctx, paths...); stageErr != nil {
		return nil, stepFailed(entities.StepStage, stageErr)
	}

	if commitErr := vcs.Commit(ctx, settings.CommitTitle); commitErr != nil {
		return nil, stepFailed(entities.StepCommit, commitErr)
	}

	if pushErr := vcs.Push(ctx, provider.PushURL(*repo), branch); pushErr != nil {
		return nil, stepFailed(entities.StepPush, pushErr)
	}
	logger.Infof("Pushed branch %s", branch)

	pr, err := provider.CreatePullRequest(ctx, *repo, entities.PullRequestInput{
		SourceBranch: branch,
		TargetBranch: settings.BaseBranch,
		Title:        settings.CommitTitle,
		Description:  report.Markdown(),
	})
	if err != nil {
		return nil, stepFailed(entities.StepPullRequest, err)
	}
	if pr == nil {
		return nil, stepFailed(entities.StepPullRequest, errors.New("provider returned no pull request"))
	}

	return pr, nil
}

// branchName derives a unique branch from the run timestamp.
func (it *PublishCommand) branchName(settings *entities.Settings) string {
	prefix := settings.BranchPrefix
	if prefix == "" {
		prefix = entities.DefaultBranchPrefix
	}
	return fmt.Sprintf("%s/%d", prefix, it.clock().Unix())
}

// resolveTarget finds the repository to publish to: the configured slug,
// then GITHUB_REPOSITORY, then the origin remote.
func (it *PublishCommand) resolveTarget(
	ctx context.Context,
	settings *entities.Settings,
	vcs repositories.VersionControlRepository,
) (*entities.Repository, repositories.ProviderRepository, error) {
	slug := settings.Repository
	if slug == "" {
		slug = it.getenv(repositoryEnvVar)
	}

	if slug != "" {
		provider, err := it.providers.Get(settings.Provider, settings.Token)
		if err != nil {
			return nil, nil, err
		}
		repo, err := entities.ParseRepositorySlug(provider.Name(), slug)
		if err != nil {
			return nil, nil, err
		}
		return repo, provider, nil
	}

	remoteURL, err := vcs.RemoteURL(ctx, originRemote)
	if err != nil {
		return nil, nil, err
	}

	provider, err := it.providers.ForURL(remoteURL, settings.Token)
	if err != nil {
		return nil, nil, err
	}

	repo, err := parseRemoteURL(remoteURL)
	if err != nil {
		return nil, nil, err
	}
	repo.ProviderName = provider.Name()
	return repo, provider, nil
}

// updateChangelog inserts one entry per update into CHANGELOG.md. It
// reports false when there is no changelog or nothing changed.
func updateChangelog(workDir string, updates []entities.DependencyUpdate) (bool, error) {
	path := filepath.Join(workDir, changelogFile)

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debugf("No %s found, skipping changelog entry", changelogFile)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", changelogFile, err)
	}

	modified := entities.InsertChangelogEntries(string(content), entities.ChangelogEntries(updates))
	if modified == string(content) {
		return false, nil
	}

	if writeErr := os.WriteFile(path, []byte(modified), changelogFileMode); writeErr != nil {
		return false, fmt.Errorf("failed to write %s: %w", changelogFile, writeErr)
	}
	return true, nil
}

func stepFailed(step entities.PublishStep, err error) error {
	return &entities.PublishStepFailedError{Step: step, Err: err}
}
