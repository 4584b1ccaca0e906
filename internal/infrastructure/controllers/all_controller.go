package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gradlehealth/internal/domain/commands"
	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	"github.com/rios0rios0/gradlehealth/internal/domain/repositories"
	"github.com/rios0rios0/gradlehealth/internal/infrastructure/presenters"
)

// AllController handles the "all" subcommand. The root command runs it
// when no subcommand is given.
type AllController struct {
	runner analysisRunner
}

// NewAllController creates a new AllController.
func NewAllController(
	command commands.Analyze,
	reports repositories.ReportRepository,
	presenter ReportPresenter,
) *AllController {
	return &AllController{runner: newAnalysisRunner(command, reports, presenter)}
}

// GetBind returns the Cobra command metadata for the all controller.
func (it *AllController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "all",
		Short: "Run every analysis",
		Long: `Run every analysis: version conflicts, duplicate dependencies,
duplicate plugins and bundle recommendations.`,
	}
}

// AddFlags adds the all-specific flags to the given Cobra command.
func (it *AllController) AddFlags(cmd *cobra.Command) {
	addThresholdFlags(
		cmd,
		FlagMinVersionConflicts,
		FlagMinDuplicateDependencies,
		FlagMinDuplicatePlugins,
		FlagMinBundleSize,
		FlagMinBundleModules,
		FlagMaxBundleRecommendations,
	)
}

// Execute analyzes the project and reports all findings.
func (it *AllController) Execute(cmd *cobra.Command, _ []string) error {
	return it.runner.run(cmd, presenters.AllSections())
}
