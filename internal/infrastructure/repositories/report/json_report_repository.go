package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	"github.com/rios0rios0/gradlehealth/internal/domain/repositories"
)

const (
	stdoutPath     = "-"
	reportFileMode = 0o644
	reportDirMode  = 0o755
)

// JSONReportRepository writes the complete analysis as an indented JSON
// document. Map keys come out sorted, so equal analyses produce equal files.
type JSONReportRepository struct {
	stdout io.Writer
}

// NewJSONReportRepository creates a repository that writes "-" to os.Stdout.
func NewJSONReportRepository() *JSONReportRepository {
	return &JSONReportRepository{stdout: os.Stdout}
}

// NewJSONReportRepositoryWithStdout replaces the writer used for "-".
func NewJSONReportRepositoryWithStdout(stdout io.Writer) *JSONReportRepository {
	return &JSONReportRepository{stdout: stdout}
}

var _ repositories.ReportRepository = (*JSONReportRepository)(nil)

// Write encodes analysis to path, creating parent directories as needed.
func (it *JSONReportRepository) Write(path string, analysis *entities.CompleteAnalysis) error {
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}
	data = append(data, '\n')

	if path == stdoutPath {
		if _, writeErr := it.stdout.Write(data); writeErr != nil {
			return entities.NewAnalysisError(entities.ErrorKindIO, path, writeErr)
		}
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if mkdirErr := os.MkdirAll(dir, reportDirMode); mkdirErr != nil {
			return entities.NewAnalysisError(entities.ErrorKindIO, dir, mkdirErr)
		}
	}
	if writeErr := os.WriteFile(path, data, reportFileMode); writeErr != nil {
		return entities.NewAnalysisError(entities.ErrorKindIO, path, writeErr)
	}

	logger.Infof("Analysis written to %s", path)
	return nil
}
