//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/podupdate/internal/domain/entities"
)

func TestChangelogEntries(t *testing.T) {
	t.Parallel()

	t.Run("should render one bullet per update", func(t *testing.T) {
		t.Parallel()

		// given
		updates := []entities.DependencyUpdate{
			{Name: "Alamofire", OldVersion: "5.8.0", NewVersion: "5.9.1"},
		}

		// when
		entries := entities.ChangelogEntries(updates)

		// then
		assert.Equal(t, []string{"- changed the `Alamofire` dependency from `5.8.0` to `5.9.1`"}, entries)
	})
}

func TestInsertChangelogEntries(t *testing.T) {
	t.Parallel()

	t.Run("should append after the last bullet of an existing Changed section", func(t *testing.T) {
		t.Parallel()

		// given
		content := "# Changelog\n\n## [Unreleased]\n\n### Changed\n\n- existing entry\n\n## [1.0.0] - 2026-01-01\n\n- old\n"

		// when
		result := entities.InsertChangelogEntries(content, []string{"- new entry"})

		// then
		expected := "# Changelog\n\n## [Unreleased]\n\n### Changed\n\n- existing entry\n- new entry\n\n## [1.0.0] - 2026-01-01\n\n- old\n"
		assert.Equal(t, expected, result)
	})

	t.Run("should create the Changed section when missing", func(t *testing.T) {
		t.Parallel()

		// given
		content := "# Changelog\n\n## [Unreleased]\n\n## [1.0.0] - 2026-01-01\n"

		// when
		result := entities.InsertChangelogEntries(content, []string{"- new entry"})

		// then
		expected := "# Changelog\n\n## [Unreleased]\n\n### Changed\n\n- new entry\n\n## [1.0.0] - 2026-01-01\n"
		assert.Equal(t, expected, result)
	})

	t.Run("should leave content without an Unreleased section untouched", func(t *testing.T) {
		t.Parallel()

		// given
		content := "# Changelog\n\n## [1.0.0] - 2026-01-01\n"

		// when
		result := entities.InsertChangelogEntries(content, []string{"- new entry"})

		// then
		assert.Equal(t, content, result)
	})

	t.Run("should ignore a Changed section of a released version", func(t *testing.T) {
		t.Parallel()

		// given
		content := "## [Unreleased]\n\n## [1.0.0]\n\n### Changed\n\n- old\n"

		// when
		result := entities.InsertChangelogEntries(content, []string{"- new entry"})

		// then
		expected := "## [Unreleased]\n\n### Changed\n\n- new entry\n\n## [1.0.0]\n\n### Changed\n\n- old\n"
		assert.Equal(t, expected, result)
	})
}
