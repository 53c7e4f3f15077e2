package commands

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/podupdate/internal/domain/entities"
	"github.com/rios0rios0/podupdate/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/podupdate/internal/infrastructure/repositories"
)

// Update is the interface for the update command.
type Update interface {
	Execute(ctx context.Context, settings *entities.Settings) (*entities.UpdateResult, error)
}

// UpdateCommand orchestrates one run:
// snapshot -> update command -> snapshot -> diff -> publish or log.
// Every step is attempted once and the first failure ends the run.
type UpdateCommand struct {
	lockfiles *infraRepos.LockfileRegistry
	runner    repositories.CommandRepository
	publisher Publish
}

// NewUpdateCommand creates a new UpdateCommand.
func NewUpdateCommand(
	lockfiles *infraRepos.LockfileRegistry,
	runner repositories.CommandRepository,
	publisher Publish,
) *UpdateCommand {
	return &UpdateCommand{
		lockfiles: lockfiles,
		runner:    runner,
		publisher: publisher,
	}
}

// Execute runs the update pipeline with the given settings.
func (it *UpdateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) (*entities.UpdateResult, error) {
	path := settings.LockfilePath()

	reader, err := it.lockfiles.ForPath(path)
	if err != nil {
		return nil, &entities.ParseError{Path: path, Err: err}
	}

	before, err := takeSnapshot(reader, path)
	if err != nil {
		return nil, err
	}
	logger.Infof("[%s] Read %d packages from %s", reader.Name(), before.Len(), path)

	if runErr := it.runUpdate(ctx, settings); runErr != nil {
		return nil, runErr
	}

	after, err := takeSnapshot(reader, path)
	if err != nil {
		return nil, err
	}

	if settings.SkipUnchanged && before.SameContent(after) {
		logger.Infof("[%s] Lockfile is unchanged, dependencies are all up-to-date", reader.Name())
		return &entities.UpdateResult{Status: entities.StatusNoChanges}, nil
	}

	updates := entities.Diff(before, after)
	if len(updates) == 0 {
		logger.Infof("[%s] Dependencies are all up-to-date", reader.Name())
		return &entities.UpdateResult{Status: entities.StatusNoChanges, Updates: updates}, nil
	}

	report := entities.NewReport(updates)
	result := &entities.UpdateResult{Updates: updates, Report: report}

	if !settings.Publish {
		logger.Infof("[%s] %d packages were updated (publishing disabled)", reader.Name(), len(updates))
		logger.Debugf("Packages were updated:\n%s", report.Markdown())
		result.Status = entities.StatusLogged
		return result, nil
	}

	logger.Info("Packages were updated:")
	logger.Info("\n" + report.Markdown())

	pr, err := it.publisher.Execute(ctx, settings, report)
	if err != nil {
		return nil, err
	}

	logger.Infof("Created PR #%d: %s", pr.ID, pr.URL)
	result.Status = entities.StatusPublished
	result.PullRequest = pr
	return result, nil
}

func (it *UpdateCommand) runUpdate(ctx context.Context, settings *entities.Settings) error {
	err := it.runner.Run(ctx, settings.WorkingDir, settings.UpdateCommand)
	if err == nil {
		return nil
	}

	var failed *entities.UpdateCommandFailedError
	if errors.As(err, &failed) {
		return err
	}
	return &entities.UpdateCommandFailedError{Command: settings.UpdateCommand, Err: err}
}

func takeSnapshot(reader repositories.LockfileRepository, path string) (*entities.Snapshot, error) {
	snapshot, err := reader.Parse(path)
	if err == nil {
		return snapshot, nil
	}

	var parseErr *entities.ParseError
	if errors.As(err, &parseErr) {
		return nil, err
	}
	return nil, &entities.ParseError{Path: path, Err: err}
}
