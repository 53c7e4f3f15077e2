package golang

import (
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"

	"github.com/rios0rios0/podupdate/internal/domain/entities"
	"github.com/rios0rios0/podupdate/internal/domain/repositories"
	"github.com/rios0rios0/podupdate/internal/infrastructure/repositories/lockfile"
)

const (
	lockfileName = "go.mod"
	kindName     = "golang"
)

// GoModLockfileRepository reads the require block of a go.mod file.
type GoModLockfileRepository struct{}

// NewLockfileRepository creates the Go module reader.
func NewLockfileRepository() repositories.LockfileRepository {
	return &GoModLockfileRepository{}
}

func (r *GoModLockfileRepository) Name() string { return kindName }

func (r *GoModLockfileRepository) Supports(path string) bool {
	return filepath.Base(path) == lockfileName
}

// Parse returns one entry per required module. A replace directive pointing
// at another module version wins; one pointing at a local directory leaves
// the module unresolved.
func (r *GoModLockfileRepository) Parse(path string) (*entities.Snapshot, error) {
	data, checksum, err := lockfile.Read(path)
	if err != nil {
		return nil, err
	}

	file, parseErr := modfile.Parse(path, data, nil)
	if parseErr != nil {
		return nil, &entities.ParseError{Path: path, Err: parseErr}
	}

	entries := make([]entities.PackageEntry, 0, len(file.Require))
	for _, req := range file.Require {
		entries = append(entries, entities.PackageEntry{
			Name:    req.Mod.Path,
			Version: resolveVersion(file.Replace, req.Mod),
		})
	}

	logger.Debugf("[%s] Read %d modules from %s", kindName, len(entries), path)
	return entities.NewSnapshot(path, checksum, entries), nil
}

func resolveVersion(replaces []*modfile.Replace, mod module.Version) string {
	for _, rep := range replaces {
		if rep.Old.Path != mod.Path {
			continue
		}
		if rep.Old.Version != "" && rep.Old.Version != mod.Version {
			continue
		}
		return rep.New.Version
	}
	return mod.Version
}
