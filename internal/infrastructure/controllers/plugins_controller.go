package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gradlehealth/internal/domain/commands"
	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	"github.com/rios0rios0/gradlehealth/internal/domain/repositories"
	"github.com/rios0rios0/gradlehealth/internal/infrastructure/presenters"
)

// PluginsController handles the "plugins" subcommand.
type PluginsController struct {
	runner analysisRunner
}

// NewPluginsController creates a new PluginsController.
func NewPluginsController(
	command commands.Analyze,
	reports repositories.ReportRepository,
	presenter ReportPresenter,
) *PluginsController {
	return &PluginsController{runner: newAnalysisRunner(command, reports, presenter)}
}

// GetBind returns the Cobra command metadata for the plugins controller.
func (it *PluginsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "plugins",
		Short: "Find plugins applied in more than one module",
		Long: `Find plugins applied in more than one build file, through a plugins block,
an apply statement or a version catalog alias. The threshold counts plugin
declarations, not plugin ids.`,
	}
}

// AddFlags adds the plugins-specific flags to the given Cobra command.
func (it *PluginsController) AddFlags(cmd *cobra.Command) {
	addThresholdFlags(cmd, FlagMinDuplicatePlugins)
}

// Execute analyzes the project and reports duplicate plugins.
func (it *PluginsController) Execute(cmd *cobra.Command, _ []string) error {
	return it.runner.run(cmd, presenters.Sections{Plugins: true})
}
