package repositories

import "context"

// VersionControlRepository performs the git operations of a publish run
// inside one working directory.
type VersionControlRepository interface {
	ConfigureIdentity(ctx context.Context, username, email string) error
	CreateBranch(ctx context.Context, branch string) error
	Stage(ctx context.Context, paths ...string) error
	Commit(ctx context.Context, title string) error

	// Push force-pushes HEAD to refs/heads/<branch> on remoteURL.
	Push(ctx context.Context, remoteURL, branch string) error

	// RemoteURL returns the fetch URL of the named remote.
	RemoteURL(ctx context.Context, remote string) (string, error)
}

// VersionControlFactory opens a VersionControlRepository for a directory.
type VersionControlFactory func(workDir string) VersionControlRepository
