package repositories

import (
	"io"

	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
)

// DependencyExtractorRepository turns the text of one build file into
// dependency declarations. Implementations must be safe for concurrent use
// since files are extracted in parallel.
type DependencyExtractorRepository interface {
	Extract(path string, content io.Reader, catalogs *entities.CatalogSet) ([]entities.DependencyLocation, error)
}

// PluginExtractorRepository turns the text of one build file into plugin
// declarations. Implementations must be safe for concurrent use.
type PluginExtractorRepository interface {
	Extract(path string, content io.Reader, catalogs *entities.CatalogSet) ([]entities.PluginLocation, error)
}
