package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/gradlehealth/internal/domain/repositories"
	"github.com/rios0rios0/gradlehealth/internal/infrastructure/repositories/catalog"
	"github.com/rios0rios0/gradlehealth/internal/infrastructure/repositories/filesystem"
	"github.com/rios0rios0/gradlehealth/internal/infrastructure/repositories/gradle"
	"github.com/rios0rios0/gradlehealth/internal/infrastructure/repositories/report"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register repository constructors
	constructors := []any{
		filesystem.NewProjectFileRepository,
		catalog.NewTOMLCatalogRepository,
		gradle.NewDependencyExtractor,
		gradle.NewPluginExtractor,
		report.NewJSONReportRepository,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *filesystem.ProjectFileRepository) domainRepos.ProjectFileRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *catalog.TOMLCatalogRepository) domainRepos.CatalogRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *gradle.DependencyExtractor) domainRepos.DependencyExtractorRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *gradle.PluginExtractor) domainRepos.PluginExtractorRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *report.JSONReportRepository) domainRepos.ReportRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
