package entities

// UpdateStatus is the terminal state of a successful run.
type UpdateStatus string

const (
	StatusNoChanges UpdateStatus = "no-changes"
	StatusPublished UpdateStatus = "published"
	StatusLogged    UpdateStatus = "logged"
)

// UpdateResult is what one run produced. Report and PullRequest are nil
// when the run ended before reaching them.
type UpdateResult struct {
	Status      UpdateStatus
	Updates     []DependencyUpdate
	Report      *Report
	PullRequest *PullRequest
}
