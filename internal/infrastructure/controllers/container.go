package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	"github.com/rios0rios0/gradlehealth/internal/infrastructure/presenters"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Bind the console presenter to the interface the controllers render through
	if err := container.Provide(func(impl *presenters.ConsolePresenter) ReportPresenter {
		return impl
	}); err != nil {
		return err
	}

	// Register controller constructors
	constructors := []any{
		NewConflictsController,
		NewDependenciesController,
		NewPluginsController,
		NewDuplicatesController,
		NewBundlesController,
		NewAllController,
		NewControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	conflictsController *ConflictsController,
	dependenciesController *DependenciesController,
	pluginsController *PluginsController,
	duplicatesController *DuplicatesController,
	bundlesController *BundlesController,
	allController *AllController,
) *[]entities.Controller {
	return &[]entities.Controller{
		conflictsController,
		dependenciesController,
		pluginsController,
		duplicatesController,
		bundlesController,
		allController,
	}
}
