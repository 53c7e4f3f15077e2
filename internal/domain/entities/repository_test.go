//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/podupdate/internal/domain/entities"
)

func TestParseRepositorySlug(t *testing.T) {
	t.Parallel()

	t.Run("should split owner and name", func(t *testing.T) {
		t.Parallel()

		// given
		slug := "acme/ios-app.git"

		// when
		repo, err := entities.ParseRepositorySlug("github", slug)

		// then
		require.NoError(t, err)
		assert.Equal(t, "acme", repo.Organization)
		assert.Empty(t, repo.Project)
		assert.Equal(t, "ios-app", repo.Name)
		assert.Equal(t, "github", repo.ProviderName)
	})

	t.Run("should reject slugs with extra segments", func(t *testing.T) {
		t.Parallel()

		// given
		slug := "acme/team/ios-app"

		// when
		_, err := entities.ParseRepositorySlug("github", slug)

		// then
		assert.ErrorIs(t, err, entities.ErrInvalidRepository)
	})

	t.Run("should split organization, project and name for azuredevops", func(t *testing.T) {
		t.Parallel()

		// given
		slug := "contoso/mobile/ios-app"

		// when
		repo, err := entities.ParseRepositorySlug("azuredevops", slug)

		// then
		require.NoError(t, err)
		assert.Equal(t, "contoso", repo.Organization)
		assert.Equal(t, "mobile", repo.Project)
		assert.Equal(t, "ios-app", repo.Name)
		assert.Equal(t, "contoso/mobile/ios-app", entities.RepositorySlug(*repo))
	})

	t.Run("should reject an azuredevops slug without a project", func(t *testing.T) {
		t.Parallel()

		// given
		slug := "contoso/ios-app"

		// when
		_, err := entities.ParseRepositorySlug("azuredevops", slug)

		// then
		assert.ErrorIs(t, err, entities.ErrInvalidRepository)
	})

	t.Run("should reject empty segments", func(t *testing.T) {
		t.Parallel()

		// given
		slug := "contoso//ios-app"

		// when
		_, err := entities.ParseRepositorySlug("azuredevops", slug)

		// then
		assert.ErrorIs(t, err, entities.ErrInvalidRepository)
	})
}
