//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"io"
	"sync"

	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	"github.com/rios0rios0/gradlehealth/internal/domain/repositories"
)

// StubDependencyExtractor returns canned declarations keyed by file path.
// Extract may be called from several goroutines.
type StubDependencyExtractor struct {
	ByPath     map[string][]entities.DependencyLocation
	ExtractErr error

	mu        sync.Mutex
	callCount int
}

var _ repositories.DependencyExtractorRepository = (*StubDependencyExtractor)(nil)

func (s *StubDependencyExtractor) Extract(
	path string,
	_ io.Reader,
	_ *entities.CatalogSet,
) ([]entities.DependencyLocation, error) {
	s.mu.Lock()
	s.callCount++
	s.mu.Unlock()
	if s.ExtractErr != nil {
		return nil, s.ExtractErr
	}
	return s.ByPath[path], nil
}

// CallCount returns how many files were extracted.
func (s *StubDependencyExtractor) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// StubPluginExtractor returns canned plugin declarations keyed by file path.
type StubPluginExtractor struct {
	ByPath     map[string][]entities.PluginLocation
	ExtractErr error
}

var _ repositories.PluginExtractorRepository = (*StubPluginExtractor)(nil)

func (s *StubPluginExtractor) Extract(
	path string,
	_ io.Reader,
	_ *entities.CatalogSet,
) ([]entities.PluginLocation, error) {
	if s.ExtractErr != nil {
		return nil, s.ExtractErr
	}
	return s.ByPath[path], nil
}
