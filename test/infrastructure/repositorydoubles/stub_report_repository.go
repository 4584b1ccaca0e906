//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	"github.com/rios0rios0/gradlehealth/internal/domain/repositories"
)

// StubReportRepository records the reports it is asked to write.
type StubReportRepository struct {
	WriteCallCount int
	WriteErr       error
	LastPath       string
	LastAnalysis   *entities.CompleteAnalysis
}

var _ repositories.ReportRepository = (*StubReportRepository)(nil)

func (s *StubReportRepository) Write(path string, analysis *entities.CompleteAnalysis) error {
	s.WriteCallCount++
	s.LastPath = path
	s.LastAnalysis = analysis
	return s.WriteErr
}
