package repositories

import "github.com/rios0rios0/gradlehealth/internal/domain/entities"

// ReportRepository persists a complete analysis.
type ReportRepository interface {
	Write(path string, analysis *entities.CompleteAnalysis) error
}
