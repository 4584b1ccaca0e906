//go:build integration || unit || test

package presenterdoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	"github.com/rios0rios0/gradlehealth/internal/infrastructure/presenters"
)

// SpyReportPresenter records every render request.
type SpyReportPresenter struct {
	RenderCallCount int
	LastAnalysis    *entities.CompleteAnalysis
	LastSections    presenters.Sections
	LastThresholds  entities.Thresholds
}

func (s *SpyReportPresenter) Render(
	analysis *entities.CompleteAnalysis,
	sections presenters.Sections,
	thresholds entities.Thresholds,
) {
	s.RenderCallCount++
	s.LastAnalysis = analysis
	s.LastSections = sections
	s.LastThresholds = thresholds
}
