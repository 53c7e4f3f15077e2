package repositories

import (
	"fmt"

	domainRepos "github.com/rios0rios0/podupdate/internal/domain/repositories"
)

// LockfileRegistry manages all registered lockfile formats. Detection tries
// formats in registration order.
type LockfileRegistry struct {
	order     []string
	lockfiles map[string]domainRepos.LockfileRepository
}

// NewLockfileRegistry creates an empty lockfile registry.
func NewLockfileRegistry() *LockfileRegistry {
	return &LockfileRegistry{
		lockfiles: make(map[string]domainRepos.LockfileRepository),
	}
}

// Register adds a lockfile format under its name.
func (r *LockfileRegistry) Register(l domainRepos.LockfileRepository) {
	if _, exists := r.lockfiles[l.Name()]; !exists {
		r.order = append(r.order, l.Name())
	}
	r.lockfiles[l.Name()] = l
}

// ForPath returns the first registered format that supports path.
func (r *LockfileRegistry) ForPath(path string) (domainRepos.LockfileRepository, error) {
	for _, name := range r.order {
		if l := r.lockfiles[name]; l.Supports(path) {
			return l, nil
		}
	}
	return nil, fmt.Errorf("unsupported lockfile: %q (known formats: %v)", path, r.order)
}

// Names returns the registered format names in registration order.
func (r *LockfileRegistry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
