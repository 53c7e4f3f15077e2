package entities

// PackageEntry is a single package pinned in a lockfile.
// An empty Version means the package is present but unresolved.
type PackageEntry struct {
	Name    string
	Version string
}

// Resolved reports whether the entry carries a pinned version.
func (e PackageEntry) Resolved() bool {
	return e.Version != ""
}

// Snapshot is an immutable reading of a lockfile's package-to-version
// mapping at one instant. Package order follows the lockfile.
type Snapshot struct {
	source   string
	checksum string
	packages []PackageEntry
	index    map[string]int
}

// NewSnapshot builds a snapshot from the entries in lockfile order.
// Names are unique within a snapshot: when a name repeats, the first
// occurrence wins and later ones are dropped.
func NewSnapshot(source, checksum string, entries []PackageEntry) *Snapshot {
	snapshot := &Snapshot{
		source:   source,
		checksum: checksum,
		packages: make([]PackageEntry, 0, len(entries)),
		index:    make(map[string]int, len(entries)),
	}

	for _, entry := range entries {
		if entry.Name == "" {
			continue
		}
		if _, exists := snapshot.index[entry.Name]; exists {
			continue
		}
		snapshot.index[entry.Name] = len(snapshot.packages)
		snapshot.packages = append(snapshot.packages, entry)
	}

	return snapshot
}

// Packages returns a copy of the entries in lockfile order.
func (s *Snapshot) Packages() []PackageEntry {
	if s == nil {
		return nil
	}
	result := make([]PackageEntry, len(s.packages))
	copy(result, s.packages)
	return result
}

// Lookup returns the entry with the given name.
func (s *Snapshot) Lookup(name string) (PackageEntry, bool) {
	if s == nil {
		return PackageEntry{}, false
	}
	i, ok := s.index[name]
	if !ok {
		return PackageEntry{}, false
	}
	return s.packages[i], true
}

// Len returns the number of packages in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.packages)
}

// Checksum returns the hex SHA-256 of the whole lockfile, or "" when the
// snapshot was not built from a file.
func (s *Snapshot) Checksum() string {
	if s == nil {
		return ""
	}
	return s.checksum
}

// Source returns the lockfile path the snapshot was read from.
func (s *Snapshot) Source() string {
	if s == nil {
		return ""
	}
	return s.source
}

// SameContent reports whether both snapshots carry the same non-empty
// whole-file checksum.
func (s *Snapshot) SameContent(other *Snapshot) bool {
	return s.Checksum() != "" && s.Checksum() == other.Checksum()
}
