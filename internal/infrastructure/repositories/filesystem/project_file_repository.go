package filesystem

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	"github.com/rios0rios0/gradlehealth/internal/domain/repositories"
)

//nolint:gochecknoglobals // fixed file name tables
var (
	buildFileNames   = map[string]struct{}{"build.gradle": {}, "build.gradle.kts": {}}
	catalogFileNames = map[string]struct{}{"libs.versions.toml": {}, "versions.toml": {}}
)

// ProjectFileRepository walks a directory tree looking for Gradle build files
// and version catalogs.
type ProjectFileRepository struct{}

// NewProjectFileRepository creates a new ProjectFileRepository.
func NewProjectFileRepository() *ProjectFileRepository {
	return &ProjectFileRepository{}
}

var _ repositories.ProjectFileRepository = (*ProjectFileRepository)(nil)

// Locate walks root in lexical order. Traversal errors on the root always
// abort; errors on sub-paths abort unless opts.SkipUnreadable is set.
func (it *ProjectFileRepository) Locate(
	ctx context.Context,
	root string,
	opts repositories.LocateOptions,
) (*entities.ProjectFiles, error) {
	result := &entities.ProjectFiles{Root: root}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			traversalErr := entities.NewAnalysisError(entities.ErrorKindTraversal, path, err)
			if path == root || !opts.SkipUnreadable {
				return traversalErr
			}
			logger.Warnf("Skipping unreadable path %s: %v", path, err)
			result.Skipped = append(result.Skipped, traversalErr)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && isExcluded(root, path, opts.Exclude) {
				logger.Debugf("Pruning excluded directory %s", path)
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		name := d.Name()
		if _, ok := buildFileNames[name]; ok {
			result.BuildFiles = append(result.BuildFiles, path)
		} else if _, ok = catalogFileNames[name]; ok {
			result.CatalogFiles = append(result.CatalogFiles, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	logger.Debugf(
		"Found %d build files and %d version catalogs under %s",
		len(result.BuildFiles), len(result.CatalogFiles), root,
	)
	return result, nil
}

// isExcluded matches the root-relative, slash-separated path against the
// exclude patterns.
func isExcluded(root, path string, patterns []string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	normalized := filepath.ToSlash(rel)
	for _, pat := range patterns {
		if matched, matchErr := doublestar.Match(pat, normalized); matchErr == nil && matched {
			return true
		}
	}
	return false
}
