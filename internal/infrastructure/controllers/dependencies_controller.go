package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gradlehealth/internal/domain/commands"
	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	"github.com/rios0rios0/gradlehealth/internal/domain/repositories"
	"github.com/rios0rios0/gradlehealth/internal/infrastructure/presenters"
)

// DependenciesController handles the "dependencies" subcommand.
type DependenciesController struct {
	runner analysisRunner
}

// NewDependenciesController creates a new DependenciesController.
func NewDependenciesController(
	command commands.Analyze,
	reports repositories.ReportRepository,
	presenter ReportPresenter,
) *DependenciesController {
	return &DependenciesController{runner: newAnalysisRunner(command, reports, presenter)}
}

// GetBind returns the Cobra command metadata for the dependencies controller.
func (it *DependenciesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "dependencies",
		Short: "Find dependencies duplicated across modules",
		Long: `Find libraries declared with the same version in more than one module.
These are candidates for a version catalog entry or a shared module.`,
	}
}

// AddFlags adds the dependencies-specific flags to the given Cobra command.
func (it *DependenciesController) AddFlags(cmd *cobra.Command) {
	addThresholdFlags(cmd, FlagMinDuplicateDependencies)
}

// Execute analyzes the project and reports duplicate dependencies.
func (it *DependenciesController) Execute(cmd *cobra.Command, _ []string) error {
	return it.runner.run(cmd, presenters.Sections{Dependencies: true})
}
