package cargo

import (
	"path/filepath"

	"github.com/BurntSushi/toml"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/podupdate/internal/domain/entities"
	"github.com/rios0rios0/podupdate/internal/domain/repositories"
	"github.com/rios0rios0/podupdate/internal/infrastructure/repositories/lockfile"
)

const (
	lockfileName = "Cargo.lock"
	kindName     = "cargo"
)

type cargoLock struct {
	Version  int            `toml:"version"`
	Packages []cargoPackage `toml:"package"`
}

type cargoPackage struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Source  string `toml:"source"`
}

// CargoLockRepository reads Rust Cargo.lock files.
type CargoLockRepository struct{}

// NewLockfileRepository creates the Cargo.lock reader.
func NewLockfileRepository() repositories.LockfileRepository {
	return &CargoLockRepository{}
}

func (r *CargoLockRepository) Name() string { return kindName }

func (r *CargoLockRepository) Supports(path string) bool {
	return filepath.Base(path) == lockfileName
}

// Parse returns the [[package]] tables in file order. Crates locked at
// several versions keep only their first entry.
func (r *CargoLockRepository) Parse(path string) (*entities.Snapshot, error) {
	data, checksum, err := lockfile.Read(path)
	if err != nil {
		return nil, err
	}

	var lock cargoLock
	if _, decodeErr := toml.Decode(string(data), &lock); decodeErr != nil {
		return nil, &entities.ParseError{Path: path, Err: decodeErr}
	}

	entries := make([]entities.PackageEntry, 0, len(lock.Packages))
	for _, pkg := range lock.Packages {
		entries = append(entries, entities.PackageEntry{Name: pkg.Name, Version: pkg.Version})
	}

	logger.Debugf("[%s] Read %d crates from %s (format v%d)", kindName, len(entries), path, lock.Version)
	return entities.NewSnapshot(path, checksum, entries), nil
}
