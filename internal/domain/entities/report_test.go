//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/podupdate/internal/domain/entities"
)

func TestReport(t *testing.T) {
	t.Parallel()

	t.Run("should contain only the header for an empty update list", func(t *testing.T) {
		t.Parallel()

		// given
		report := entities.NewReport(nil)

		// when
		rows := report.Rows()

		// then
		assert.Equal(t, [][]string{{"Name", "Old Version", "New Version"}}, rows)
	})

	t.Run("should add one row per update in order", func(t *testing.T) {
		t.Parallel()

		// given
		report := entities.NewReport([]entities.DependencyUpdate{
			{Name: "Alamofire", OldVersion: "5.8.0", NewVersion: "5.9.1"},
			{Name: "SnapKit", OldVersion: "5.6.0", NewVersion: "5.7.1"},
		})

		// when
		rows := report.Rows()

		// then
		assert.Equal(t, [][]string{
			{"Name", "Old Version", "New Version"},
			{"Alamofire", "5.8.0", "5.9.1"},
			{"SnapKit", "5.6.0", "5.7.1"},
		}, rows)
	})

	t.Run("should render a padded markdown table", func(t *testing.T) {
		t.Parallel()

		// given
		report := entities.NewReport([]entities.DependencyUpdate{
			{Name: "Firebase/Core", OldVersion: "10.0.0", NewVersion: "10.1.0"},
		})

		// when
		markdown := report.Markdown()

		// then
		expected := "| Name          | Old Version | New Version |\n" +
			"| ------------- | ----------- | ----------- |\n" +
			"| Firebase/Core | 10.0.0      | 10.1.0      |"
		assert.Equal(t, expected, markdown)
	})

	t.Run("should escape pipes inside cells", func(t *testing.T) {
		t.Parallel()

		// given
		report := entities.NewReport([]entities.DependencyUpdate{
			{Name: "a|b", OldVersion: "1", NewVersion: "2"},
		})

		// when
		markdown := report.Markdown()

		// then
		assert.Contains(t, markdown, `| a\|b `)
	})

	t.Run("should not be affected by changes to the input slice", func(t *testing.T) {
		t.Parallel()

		// given
		updates := []entities.DependencyUpdate{{Name: "A", OldVersion: "1", NewVersion: "2"}}
		report := entities.NewReport(updates)

		// when
		updates[0].Name = "B"

		// then
		assert.Equal(t, "A", report.Updates()[0].Name)
	})
}
