package presenters

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all presenter providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(NewConsolePresenter)
}
