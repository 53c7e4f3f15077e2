//go:build unit

package terraform_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/podupdate/internal/domain/entities"
	"github.com/rios0rios0/podupdate/internal/infrastructure/repositories/terraform"
)

func writeLockHCL(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".terraform.lock.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestTerraformLockRepository_Parse(t *testing.T) {
	t.Parallel()

	t.Run("should read one entry per provider block", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeLockHCL(t, `# This file is maintained automatically by "terraform init".

provider "registry.terraform.io/hashicorp/aws" {
  version     = "5.40.0"
  constraints = "~> 5.0"
  hashes = [
    "h1:abc=",
  ]
}

provider "registry.terraform.io/hashicorp/random" {
  constraints = ">= 3.0"
}
`)
		repo := terraform.NewLockfileRepository()

		// when
		snapshot, err := repo.Parse(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.PackageEntry{
			{Name: "registry.terraform.io/hashicorp/aws", Version: "5.40.0"},
			{Name: "registry.terraform.io/hashicorp/random", Version: ""},
		}, snapshot.Packages())
	})

	t.Run("should fail on malformed HCL", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeLockHCL(t, `provider "x" {`)
		repo := terraform.NewLockfileRepository()

		// when
		_, err := repo.Parse(path)

		// then
		var parseErr *entities.ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("should only support the dependency lock file", func(t *testing.T) {
		t.Parallel()

		repo := terraform.NewLockfileRepository()

		assert.Equal(t, "terraform", repo.Name())
		assert.True(t, repo.Supports("infra/.terraform.lock.hcl"))
		assert.False(t, repo.Supports("infra/main.tf"))
	})
}
