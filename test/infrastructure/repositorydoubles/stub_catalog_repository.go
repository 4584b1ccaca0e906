//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	"github.com/rios0rios0/gradlehealth/internal/domain/repositories"
)

// StubCatalogRepository is a stub implementation of repositories.CatalogRepository.
type StubCatalogRepository struct {
	Catalogs *entities.CatalogSet
	LoadErr  error

	LastPaths []string
}

var _ repositories.CatalogRepository = (*StubCatalogRepository)(nil)

func (s *StubCatalogRepository) Load(_ context.Context, paths []string) (*entities.CatalogSet, error) {
	s.LastPaths = paths
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.Catalogs == nil {
		return entities.NewCatalogSet(), nil
	}
	return s.Catalogs, nil
}
