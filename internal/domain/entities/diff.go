package entities

// Diff returns the packages whose resolved version changed between before
// and after, in the order they appear in before.
//
// Only drift on packages present in both snapshots is reported: additions,
// removals and packages unresolved on either side are skipped. Versions are
// compared as plain strings, so any difference counts as an update.
func Diff(before, after *Snapshot) []DependencyUpdate {
	updates := make([]DependencyUpdate, 0)

	for _, old := range before.Packages() {
		current, ok := after.Lookup(old.Name)
		if !ok {
			continue
		}
		if !old.Resolved() || !current.Resolved() {
			continue
		}
		if old.Version == current.Version {
			continue
		}
		updates = append(updates, DependencyUpdate{
			Name:       old.Name,
			OldVersion: old.Version,
			NewVersion: current.Version,
		})
	}

	return updates
}
