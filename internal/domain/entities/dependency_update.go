package entities

// DependencyUpdate is a package whose resolved version drifted between two
// snapshots. OldVersion and NewVersion are both resolved and never equal.
type DependencyUpdate struct {
	Name       string
	OldVersion string
	NewVersion string
}

// TableRow returns the update as a report row.
func (u DependencyUpdate) TableRow() []string {
	return []string{u.Name, u.OldVersion, u.NewVersion}
}
