package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/gradlehealth/internal"
	"github.com/rios0rios0/gradlehealth/internal/infrastructure/controllers"
)

func newContainer() *dig.Container {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}
	return container
}

func injectAppContext(container *dig.Container) *internal.AppInternal {
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}

func injectAllController(container *dig.Container) *controllers.AllController {
	var allController *controllers.AllController
	if err := container.Invoke(func(ac *controllers.AllController) {
		allController = ac
	}); err != nil {
		panic(err)
	}

	return allController
}
