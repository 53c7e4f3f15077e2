package internal

import "github.com/rios0rios0/podupdate/internal/domain/entities"

// AppInternal holds every controller mounted on the CLI.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates the application from the registered controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns the controllers in mount order.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
