//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/podupdate/internal/domain/entities"
	"github.com/rios0rios0/podupdate/test/domain/entitybuilders"
)

func TestNewSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("should keep the first entry when a name repeats", func(t *testing.T) {
		t.Parallel()

		// given
		builder := entitybuilders.NewSnapshotBuilder().
			WithPackage("A", "1.0").WithPackage("B", "2.0").WithPackage("A", "9.9")

		// when
		snapshot := builder.BuildSnapshot()

		// then
		assert.Equal(t, 2, snapshot.Len())
		entry, ok := snapshot.Lookup("A")
		assert.True(t, ok)
		assert.Equal(t, "1.0", entry.Version)
	})

	t.Run("should drop entries without a name", func(t *testing.T) {
		t.Parallel()

		// given
		builder := entitybuilders.NewSnapshotBuilder().WithPackage("", "1.0").WithPackage("A", "1.0")

		// when
		snapshot := builder.BuildSnapshot()

		// then
		assert.Equal(t, []entities.PackageEntry{{Name: "A", Version: "1.0"}}, snapshot.Packages())
	})

	t.Run("should not expose its internal slice", func(t *testing.T) {
		t.Parallel()

		// given
		snapshot := entitybuilders.NewSnapshotBuilder().WithPackage("A", "1.0").BuildSnapshot()

		// when
		packages := snapshot.Packages()
		packages[0].Version = "changed"

		// then
		entry, _ := snapshot.Lookup("A")
		assert.Equal(t, "1.0", entry.Version)
	})
}

func TestSnapshotSameContent(t *testing.T) {
	t.Parallel()

	t.Run("should match when both checksums are equal", func(t *testing.T) {
		t.Parallel()

		// given
		before := entitybuilders.NewSnapshotBuilder().WithChecksum("abc").BuildSnapshot()
		after := entitybuilders.NewSnapshotBuilder().WithChecksum("abc").BuildSnapshot()

		// when
		same := before.SameContent(after)

		// then
		assert.True(t, same)
	})

	t.Run("should not match when checksums differ", func(t *testing.T) {
		t.Parallel()

		// given
		before := entitybuilders.NewSnapshotBuilder().WithChecksum("abc").BuildSnapshot()
		after := entitybuilders.NewSnapshotBuilder().WithChecksum("def").BuildSnapshot()

		// when
		same := before.SameContent(after)

		// then
		assert.False(t, same)
	})

	t.Run("should not match when no checksum is known", func(t *testing.T) {
		t.Parallel()

		// given
		before := entitybuilders.NewSnapshotBuilder().BuildSnapshot()
		after := entitybuilders.NewSnapshotBuilder().BuildSnapshot()

		// when
		same := before.SameContent(after)

		// then
		assert.False(t, same)
	})

	t.Run("should handle a nil snapshot", func(t *testing.T) {
		t.Parallel()

		// given
		before := entitybuilders.NewSnapshotBuilder().WithChecksum("abc").BuildSnapshot()
		var after *entities.Snapshot

		// when
		same := before.SameContent(after)

		// then
		assert.False(t, same)
	})
}
