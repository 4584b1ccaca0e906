package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gradlehealth/internal/domain/commands"
	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	"github.com/rios0rios0/gradlehealth/internal/domain/repositories"
	"github.com/rios0rios0/gradlehealth/internal/infrastructure/presenters"
)

// DuplicatesController handles the "duplicates" subcommand.
type DuplicatesController struct {
	runner analysisRunner
}

// NewDuplicatesController creates a new DuplicatesController.
func NewDuplicatesController(
	command commands.Analyze,
	reports repositories.ReportRepository,
	presenter ReportPresenter,
) *DuplicatesController {
	return &DuplicatesController{runner: newAnalysisRunner(command, reports, presenter)}
}

// GetBind returns the Cobra command metadata for the duplicates controller.
func (it *DuplicatesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "duplicates",
		Short: "Find version conflicts, duplicate dependencies and plugins",
		Long: `Run the conflict, duplicate dependency and duplicate plugin checks
together, without bundle recommendations.`,
	}
}

// AddFlags adds the duplicates-specific flags to the given Cobra command.
func (it *DuplicatesController) AddFlags(cmd *cobra.Command) {
	addThresholdFlags(cmd, FlagMinVersionConflicts, FlagMinDuplicateDependencies, FlagMinDuplicatePlugins)
}

// Execute analyzes the project and reports every kind of duplicate.
func (it *DuplicatesController) Execute(cmd *cobra.Command, _ []string) error {
	return it.runner.run(cmd, presenters.Sections{Conflicts: true, Dependencies: true, Plugins: true})
}
