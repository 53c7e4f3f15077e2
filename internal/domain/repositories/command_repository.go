package repositories

import "context"

// CommandRepository runs the caller-configured update command.
type CommandRepository interface {
	// Run executes command in dir and waits for it. A non-zero exit is
	// reported as *entities.UpdateCommandFailedError.
	Run(ctx context.Context, dir, command string) error
}
