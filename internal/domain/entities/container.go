package entities

import (
	"time"

	"go.uber.org/dig"
)

// Clock returns the current time. Publishing derives branch names from it.
type Clock func() time.Time

// RegisterProviders registers all entity providers with the DIG container.
// Settings are not registered: they depend on flags parsed by the controllers.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(func() Clock { return time.Now })
}
