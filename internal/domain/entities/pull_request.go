package entities

import (
	gitforgeEntities "github.com/rios0rios0/gitforge/domain/entities"
)

// PullRequestInput is re-exported from gitforge. SourceBranch and
// TargetBranch may carry a "refs/heads/" prefix; providers strip it.
type PullRequestInput = gitforgeEntities.PullRequestInput

// PullRequest is re-exported from gitforge.
type PullRequest = gitforgeEntities.PullRequest
