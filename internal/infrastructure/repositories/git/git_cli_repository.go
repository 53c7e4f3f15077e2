package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/podupdate/internal/domain/repositories"
)

var ErrGitCommand = errors.New("git command failed")

// CliRepository executes git commands in a specific working directory.
// Remote lookup reads the repository configuration through go-git so it
// works without spawning a process.
type CliRepository struct {
	workDir string
}

// NewVersionControlRepository creates a CliRepository for workDir.
func NewVersionControlRepository(workDir string) repositories.VersionControlRepository {
	return &CliRepository{workDir: workDir}
}

// ConfigureIdentity sets the commit author for this repository only.
func (r *CliRepository) ConfigureIdentity(ctx context.Context, username, email string) error {
	if _, err := r.runCommand(ctx, "config", "user.name", username); err != nil {
		return fmt.Errorf("couldn't set username: %w", err)
	}
	if _, err := r.runCommand(ctx, "config", "user.email", email); err != nil {
		return fmt.Errorf("couldn't set email: %w", err)
	}
	return nil
}

func (r *CliRepository) CreateBranch(ctx context.Context, branch string) error {
	_, err := r.runCommand(ctx, "checkout", "-b", branch)
	return err
}

func (r *CliRepository) Stage(ctx context.Context, paths ...string) error {
	args := append([]string{"add", "--"}, paths...)
	_, err := r.runCommand(ctx, args...)
	return err
}

func (r *CliRepository) Commit(ctx context.Context, title string) error {
	_, err := r.runCommand(ctx, "commit", "-m", title)
	return err
}

func (r *CliRepository) Push(ctx context.Context, remoteURL, branch string) error {
	_, err := r.runCommand(ctx, "push", "-f", remoteURL, "HEAD:refs/heads/"+branch)
	return err
}

// RemoteURL returns the first URL configured for the named remote.
func (r *CliRepository) RemoteURL(_ context.Context, remote string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(r.workDir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("failed to open git repository at %s: %w", r.workDir, err)
	}

	rem, err := repo.Remote(remote)
	if err != nil {
		return "", fmt.Errorf("failed to read remote %q: %w", remote, err)
	}

	urls := rem.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %q has no URL", remote)
	}
	return urls[0], nil
}

// runCommand executes a git command and returns stdout. Failures carry
// stderr with secrets masked, since push URLs embed the token.
func (r *CliRepository) runCommand(ctx context.Context, args ...string) (string, error) {
	logger.Debugf("git %s", maskCredentials(strings.Join(args, " ")))

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.workDir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if err := cmd.Run(); err != nil {
		stderr := maskCredentials(strings.TrimSpace(stderrBuf.String()))
		if stderr != "" {
			return "", errors.Join(ErrGitCommand, errors.New(stderr))
		}
		return "", errors.Join(ErrGitCommand, err)
	}

	return stdoutBuf.String(), nil
}

// maskCredentials hides the userinfo part of any https URL in s.
func maskCredentials(s string) string {
	const scheme = "https://"
	var sb strings.Builder
	for {
		start := strings.Index(s, scheme)
		if start < 0 {
			sb.WriteString(s)
			return sb.String()
		}
		sb.WriteString(s[:start+len(scheme)])
		rest := s[start+len(scheme):]

		end := strings.IndexAny(rest, " \t\n/")
		if end < 0 {
			end = len(rest)
		}
		if at := strings.LastIndex(rest[:end], "@"); at >= 0 {
			sb.WriteString("***")
			rest = rest[at:]
		}
		s = rest
	}
}
