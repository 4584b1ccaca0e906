package repositories

import (
	"context"

	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
)

// CatalogRepository decodes version catalog documents.
type CatalogRepository interface {
	// Load decodes every catalog and returns them ordered by path.
	// A read or decode failure on any file aborts the load.
	Load(ctx context.Context, paths []string) (*entities.CatalogSet, error)
}
