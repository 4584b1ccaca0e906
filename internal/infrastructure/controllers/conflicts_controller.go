package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gradlehealth/internal/domain/commands"
	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	"github.com/rios0rios0/gradlehealth/internal/domain/repositories"
	"github.com/rios0rios0/gradlehealth/internal/infrastructure/presenters"
)

// ConflictsController handles the "conflicts" subcommand.
type ConflictsController struct {
	runner analysisRunner
}

// NewConflictsController creates a new ConflictsController.
func NewConflictsController(
	command commands.Analyze,
	reports repositories.ReportRepository,
	presenter ReportPresenter,
) *ConflictsController {
	return &ConflictsController{runner: newAnalysisRunner(command, reports, presenter)}
}

// GetBind returns the Cobra command metadata for the conflicts controller.
func (it *ConflictsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "conflicts",
		Short: "Find dependencies declared with different versions",
		Long: `Find libraries declared with different versions across modules.
A version conflict is reported for every group:artifact whose declarations
span more than one build file and carry more than one distinct version.`,
	}
}

// AddFlags adds the conflicts-specific flags to the given Cobra command.
func (it *ConflictsController) AddFlags(cmd *cobra.Command) {
	addThresholdFlags(cmd, FlagMinVersionConflicts)
}

// Execute analyzes the project and reports version conflicts.
func (it *ConflictsController) Execute(cmd *cobra.Command, _ []string) error {
	return it.runner.run(cmd, presenters.Sections{Conflicts: true})
}
