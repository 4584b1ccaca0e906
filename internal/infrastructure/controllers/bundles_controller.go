package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gradlehealth/internal/domain/commands"
	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	"github.com/rios0rios0/gradlehealth/internal/domain/repositories"
	"github.com/rios0rios0/gradlehealth/internal/infrastructure/presenters"
)

// BundlesController handles the "bundles" subcommand.
type BundlesController struct {
	runner analysisRunner
}

// NewBundlesController creates a new BundlesController.
func NewBundlesController(
	command commands.Analyze,
	reports repositories.ReportRepository,
	presenter ReportPresenter,
) *BundlesController {
	return &BundlesController{runner: newAnalysisRunner(command, reports, presenter)}
}

// GetBind returns the Cobra command metadata for the bundles controller.
func (it *BundlesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "bundles",
		Short: "Recommend dependency bundles shared by several modules",
		Long: `Find sets of libraries that several modules declare together and rank
them as candidates for a shared dependency bundle. Bundles that are a strict
subset of a larger bundle used by the same modules are not reported.`,
	}
}

// AddFlags adds the bundles-specific flags to the given Cobra command.
func (it *BundlesController) AddFlags(cmd *cobra.Command) {
	addThresholdFlags(cmd, FlagMinBundleSize, FlagMinBundleModules, FlagMaxBundleRecommendations)
}

// Execute analyzes the project and reports bundle recommendations.
func (it *BundlesController) Execute(cmd *cobra.Command, _ []string) error {
	return it.runner.run(cmd, presenters.Sections{Bundles: true})
}
