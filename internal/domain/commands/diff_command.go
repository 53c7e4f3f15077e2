package commands

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/podupdate/internal/domain/entities"
	infraRepos "github.com/rios0rios0/podupdate/internal/infrastructure/repositories"
)

// Diff is the interface for comparing two lockfiles offline.
type Diff interface {
	Execute(beforePath, afterPath string) (*entities.Report, error)
}

// DiffCommand compares two lockfiles of the same kind without running anything.
type DiffCommand struct {
	lockfiles *infraRepos.LockfileRegistry
}

// NewDiffCommand creates a new DiffCommand.
func NewDiffCommand(lockfiles *infraRepos.LockfileRegistry) *DiffCommand {
	return &DiffCommand{lockfiles: lockfiles}
}

// Execute parses both lockfiles and reports the packages whose version changed.
// The reader is picked from the "after" path so renamed copies still work.
func (it *DiffCommand) Execute(beforePath, afterPath string) (*entities.Report, error) {
	reader, err := it.lockfiles.ForPath(afterPath)
	if err != nil {
		return nil, &entities.ParseError{Path: afterPath, Err: err}
	}

	before, err := takeSnapshot(reader, beforePath)
	if err != nil {
		return nil, err
	}
	after, err := takeSnapshot(reader, afterPath)
	if err != nil {
		return nil, err
	}

	updates := entities.Diff(before, after)
	logger.Debugf("[%s] %d of %d packages changed", reader.Name(), len(updates), after.Len())
	return entities.NewReport(updates), nil
}
