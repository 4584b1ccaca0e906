//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	"github.com/rios0rios0/gradlehealth/internal/domain/repositories"
)

// StubProjectFileRepository is a stub implementation of repositories.ProjectFileRepository.
type StubProjectFileRepository struct {
	Files     *entities.ProjectFiles
	LocateErr error

	LastRoot string
	LastOpts repositories.LocateOptions
}

var _ repositories.ProjectFileRepository = (*StubProjectFileRepository)(nil)

func (s *StubProjectFileRepository) Locate(
	_ context.Context,
	root string,
	opts repositories.LocateOptions,
) (*entities.ProjectFiles, error) {
	s.LastRoot = root
	s.LastOpts = opts
	if s.LocateErr != nil {
		return nil, s.LocateErr
	}
	if s.Files == nil {
		return &entities.ProjectFiles{Root: root}, nil
	}
	return s.Files, nil
}
