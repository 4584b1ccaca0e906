package commands

import (
	"bytes"
	"context"
	"os"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	"github.com/rios0rios0/gradlehealth/internal/domain/repositories"
)

// Analyze is the interface for the analyze command.
type Analyze interface {
	Execute(ctx context.Context, opts AnalyzeOptions) (*entities.CompleteAnalysis, error)
}

// AnalyzeOptions holds runtime options for one analysis run.
type AnalyzeOptions struct {
	Root     string
	Settings *entities.Settings
}

// fileDeclarations is what one build file contributes to the run.
type fileDeclarations struct {
	dependencies []entities.DependencyLocation
	plugins      []entities.PluginLocation
}

// AnalyzeCommand discovers the project files, extracts every declaration and
// runs the duplicate, plugin and bundle analyses over them.
type AnalyzeCommand struct {
	files        repositories.ProjectFileRepository
	catalogs     repositories.CatalogRepository
	dependencies repositories.DependencyExtractorRepository
	plugins      repositories.PluginExtractorRepository
}

// NewAnalyzeCommand creates a new AnalyzeCommand.
func NewAnalyzeCommand(
	files repositories.ProjectFileRepository,
	catalogs repositories.CatalogRepository,
	dependencies repositories.DependencyExtractorRepository,
	plugins repositories.PluginExtractorRepository,
) *AnalyzeCommand {
	return &AnalyzeCommand{
		files:        files,
		catalogs:     catalogs,
		dependencies: dependencies,
		plugins:      plugins,
	}
}

// Execute runs the analysis. The first read or decode failure aborts it.
func (it *AnalyzeCommand) Execute(ctx context.Context, opts AnalyzeOptions) (*entities.CompleteAnalysis, error) {
	settings := opts.Settings
	if settings == nil {
		settings = entities.NewSettings()
	}

	projectFiles, err := it.files.Locate(ctx, opts.Root, repositories.LocateOptions{
		Exclude:        settings.Exclude,
		SkipUnreadable: settings.SkipUnreadable,
	})
	if err != nil {
		return nil, err
	}
	if len(projectFiles.Skipped) > 0 {
		logger.Warnf("Skipped %d unreadable paths", len(projectFiles.Skipped))
	}

	catalogSet, err := it.catalogs.Load(ctx, projectFiles.CatalogFiles)
	if err != nil {
		return nil, err
	}

	perFile, err := it.extractAll(ctx, projectFiles.BuildFiles, catalogSet, settings.Workers)
	if err != nil {
		return nil, err
	}

	var dependencies []entities.DependencyLocation
	var plugins []entities.PluginLocation
	for _, declarations := range perFile {
		dependencies = append(dependencies, declarations.dependencies...)
		plugins = append(plugins, declarations.plugins...)
	}
	logger.Debugf("Extracted %d dependencies and %d plugins", len(dependencies), len(plugins))

	return &entities.CompleteAnalysis{
		DuplicateAnalysis: entities.AnalyzeDuplicates(dependencies),
		PluginAnalysis:    entities.AnalyzePlugins(plugins),
		BundleAnalysis:    entities.FindBundles(dependencies, settings.BundleOptions()),
		FilesScanned:      len(projectFiles.BuildFiles),
		CatalogsLoaded:    catalogSet.Len(),
	}, nil
}

// extractAll reads and extracts the build files with at most workers files in
// flight. Results keep the order of paths regardless of completion order.
func (it *AnalyzeCommand) extractAll(
	ctx context.Context,
	paths []string,
	catalogSet *entities.CatalogSet,
	workers int,
) ([]fileDeclarations, error) {
	results := make([]fileDeclarations, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(workers, 1))
	for i, path := range paths {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			declarations, err := it.extractFile(path, catalogSet)
			if err != nil {
				return err
			}
			results[i] = declarations
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (it *AnalyzeCommand) extractFile(path string, catalogSet *entities.CatalogSet) (fileDeclarations, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return fileDeclarations{}, entities.NewAnalysisError(entities.ErrorKindIO, path, err)
	}

	dependencies, err := it.dependencies.Extract(path, bytes.NewReader(content), catalogSet)
	if err != nil {
		return fileDeclarations{}, err
	}
	plugins, err := it.plugins.Extract(path, bytes.NewReader(content), catalogSet)
	if err != nil {
		return fileDeclarations{}, err
	}

	logger.Debugf("%s: %d dependencies, %d plugins", path, len(dependencies), len(plugins))
	return fileDeclarations{dependencies: dependencies, plugins: plugins}, nil
}
