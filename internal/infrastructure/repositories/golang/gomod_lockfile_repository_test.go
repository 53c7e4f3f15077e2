//go:build unit

package golang_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/podupdate/internal/domain/entities"
	"github.com/rios0rios0/podupdate/internal/infrastructure/repositories/golang"
)

func writeGoMod(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "go.mod")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGoModLockfileRepository_Parse(t *testing.T) {
	t.Parallel()

	t.Run("should read required modules and honour replace directives", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeGoMod(t, `module example.com/app

go 1.22

require (
	github.com/sirupsen/logrus v1.9.3
	github.com/spf13/cobra v1.8.0
	example.com/local v0.0.0
)

require golang.org/x/sys v0.20.0 // indirect

replace github.com/spf13/cobra => github.com/spf13/cobra v1.8.1

replace example.com/local => ../local
`)
		repo := golang.NewLockfileRepository()

		// when
		snapshot, err := repo.Parse(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.PackageEntry{
			{Name: "github.com/sirupsen/logrus", Version: "v1.9.3"},
			{Name: "github.com/spf13/cobra", Version: "v1.8.1"},
			{Name: "example.com/local", Version: ""},
			{Name: "golang.org/x/sys", Version: "v0.20.0"},
		}, snapshot.Packages())
	})

	t.Run("should fail on a malformed go.mod", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeGoMod(t, "module\nrequire (\n")
		repo := golang.NewLockfileRepository()

		// when
		_, err := repo.Parse(path)

		// then
		var parseErr *entities.ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("should only support go.mod files", func(t *testing.T) {
		t.Parallel()

		repo := golang.NewLockfileRepository()

		assert.True(t, repo.Supports("/src/go.mod"))
		assert.False(t, repo.Supports("/src/go.sum"))
	})
}
