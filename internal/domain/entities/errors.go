package entities

import (
	"fmt"
)

// PublishStep names one step of publishing an update as a pull request.
type PublishStep string

const (
	StepRepository  PublishStep = "repository"
	StepIdentity    PublishStep = "identity"
	StepBranch      PublishStep = "branch"
	StepChangelog   PublishStep = "changelog"
	StepStage       PublishStep = "stage"
	StepCommit      PublishStep = "commit"
	StepPush        PublishStep = "push"
	StepPullRequest PublishStep = "pull request"
)

//nolint:gochecknoglobals // read-only lookup table
var stepDescriptions = map[PublishStep]string{
	StepRepository:  "couldn't resolve the target repository",
	StepIdentity:    "couldn't configure the commit identity",
	StepBranch:      "couldn't create a new branch",
	StepChangelog:   "couldn't update the changelog",
	StepStage:       "couldn't stage the lockfile",
	StepCommit:      "couldn't create the commit",
	StepPush:        "couldn't push the branch",
	StepPullRequest: "couldn't create the pull request",
}

// ParseError means a lockfile could not be read or is malformed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse lockfile %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UpdateCommandFailedError means the external update command exited
// with a non-zero status or could not be started.
type UpdateCommandFailedError struct {
	Command  string
	ExitCode int
	Err      error
}

func (e *UpdateCommandFailedError) Error() string {
	if e.ExitCode > 0 {
		return fmt.Sprintf("update command %q failed with exit code %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("update command %q failed: %v", e.Command, e.Err)
}

func (e *UpdateCommandFailedError) Unwrap() error { return e.Err }

// PublishStepFailedError names the publishing step that broke.
type PublishStepFailedError struct {
	Step PublishStep
	Err  error
}

func (e *PublishStepFailedError) Error() string {
	description, ok := stepDescriptions[e.Step]
	if !ok {
		description = fmt.Sprintf("publish step %q failed", e.Step)
	}
	return fmt.Sprintf("%s: %v", description, e.Err)
}

func (e *PublishStepFailedError) Unwrap() error { return e.Err }

// ApiStatusError means the pull-request API answered with a non-2xx status.
type ApiStatusError struct { //nolint:revive // name mirrors the documented error taxonomy
	StatusCode int
	Err        error
}

func (e *ApiStatusError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("error creating pull request, status: %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("error creating pull request, status: %d", e.StatusCode)
}

func (e *ApiStatusError) Unwrap() error { return e.Err }

// IsSuccessStatus reports whether an HTTP status code is in the 2xx range.
func IsSuccessStatus(code int) bool {
	return code >= 200 && code < 300 //nolint:mnd // HTTP 2xx range
}
