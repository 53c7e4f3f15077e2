package shell

import (
	"context"
	"errors"
	"os/exec"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/podupdate/internal/domain/entities"
	"github.com/rios0rios0/podupdate/internal/domain/repositories"
)

const defaultShell = "sh"

// CommandRepository runs update commands through a POSIX shell, streaming
// their output into the log.
type CommandRepository struct {
	shell string
}

// NewCommandRepository creates a runner using "sh -c".
func NewCommandRepository() repositories.CommandRepository {
	return &CommandRepository{shell: defaultShell}
}

// Run executes command in dir and waits for it to finish.
func (r *CommandRepository) Run(ctx context.Context, dir, command string) error {
	logger.Infof("Running %q in %s", command, dir)

	cmd := exec.CommandContext(ctx, r.shell, "-c", command)
	cmd.Dir = dir

	stdout := logger.StandardLogger().WriterLevel(logger.InfoLevel)
	defer stdout.Close()
	stderr := logger.StandardLogger().WriterLevel(logger.WarnLevel)
	defer stderr.Close()
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		failure := &entities.UpdateCommandFailedError{Command: command, Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			failure.ExitCode = exitErr.ExitCode()
		}
		return failure
	}
	return nil
}
