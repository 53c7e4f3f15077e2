package controllers

// SetGetenv replaces the environment lookup used for action inputs.
func (it *UpdateController) SetGetenv(getenv func(string) string) {
	it.getenv = getenv
}
