//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/podupdate/internal/domain/entities"
)

// SnapshotBuilder helps create test snapshots with a fluent interface.
type SnapshotBuilder struct {
	*testkit.BaseBuilder
	source   string
	checksum string
	entries  []entities.PackageEntry
}

// NewSnapshotBuilder creates a new snapshot builder with sensible defaults.
func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		source:      "Podfile.lock",
		checksum:    "",
	}
}

// WithSource sets the lockfile path the snapshot came from.
func (b *SnapshotBuilder) WithSource(source string) *SnapshotBuilder {
	b.source = source
	return b
}

// WithChecksum sets the whole-file checksum.
func (b *SnapshotBuilder) WithChecksum(checksum string) *SnapshotBuilder {
	b.checksum = checksum
	return b
}

// WithPackage appends a package with the given version ("" for unresolved).
func (b *SnapshotBuilder) WithPackage(name, version string) *SnapshotBuilder {
	b.entries = append(b.entries, entities.PackageEntry{Name: name, Version: version})
	return b
}

// Build creates the snapshot (satisfies testkit.Builder interface).
func (b *SnapshotBuilder) Build() interface{} {
	return b.BuildSnapshot()
}

// BuildSnapshot creates the snapshot with a concrete return type.
func (b *SnapshotBuilder) BuildSnapshot() *entities.Snapshot {
	return entities.NewSnapshot(b.source, b.checksum, b.entries)
}

// Reset clears the builder state, allowing it to be reused.
func (b *SnapshotBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.source = "Podfile.lock"
	b.checksum = ""
	b.entries = nil
	return b
}

// Clone creates a deep copy of the SnapshotBuilder.
func (b *SnapshotBuilder) Clone() testkit.Builder {
	entries := make([]entities.PackageEntry, len(b.entries))
	copy(entries, b.entries)
	return &SnapshotBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		source:      b.source,
		checksum:    b.checksum,
		entries:     entries,
	}
}
