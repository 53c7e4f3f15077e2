package commands

// ParseRemoteURL exports parseRemoteURL for testing.
var ParseRemoteURL = parseRemoteURL //nolint:gochecknoglobals // test export

// UpdateChangelog exports updateChangelog for testing.
var UpdateChangelog = updateChangelog //nolint:gochecknoglobals // test export

// SetGetenv replaces the environment lookup used to resolve the repository.
func (it *PublishCommand) SetGetenv(getenv func(string) string) {
	it.getenv = getenv
}
