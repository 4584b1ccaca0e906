package controllers

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rios0rios0/gradlehealth/internal/domain/commands"
	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	"github.com/rios0rios0/gradlehealth/internal/domain/repositories"
	"github.com/rios0rios0/gradlehealth/internal/infrastructure/presenters"
)

// Global flag names, registered as persistent flags on the root command.
const (
	FlagPath    = "path"
	FlagOutput  = "output"
	FlagSilent  = "silent"
	FlagConfig  = "config"
	FlagVerbose = "verbose"
)

// Threshold flag names.
const (
	FlagMinVersionConflicts      = "min-version-conflicts"
	FlagMinDuplicateDependencies = "min-duplicate-dependencies"
	FlagMinDuplicatePlugins      = "min-duplicate-plugins"
	FlagMinBundleSize            = "min-bundle-size"
	FlagMinBundleModules         = "min-bundle-modules"
	FlagMaxBundleRecommendations = "max-bundle-recommendations"
)

// ReportPresenter renders an analysis on the console.
type ReportPresenter interface {
	Render(analysis *entities.CompleteAnalysis, sections presenters.Sections, thresholds entities.Thresholds)
}

type thresholdFlag struct {
	name  string
	usage string
	value int
	field func(*entities.Thresholds) *int
}

//nolint:gochecknoglobals // read-only flag table
var thresholdFlags = []thresholdFlag{
	{
		name:  FlagMinVersionConflicts,
		usage: "Minimum number of version conflicts to report",
		value: entities.DefaultMinThreshold,
		field: func(t *entities.Thresholds) *int { return &t.MinVersionConflicts },
	},
	{
		name:  FlagMinDuplicateDependencies,
		usage: "Minimum number of duplicate dependencies to report",
		value: entities.DefaultMinThreshold,
		field: func(t *entities.Thresholds) *int { return &t.MinDuplicateDependencies },
	},
	{
		name:  FlagMinDuplicatePlugins,
		usage: "Minimum number of duplicate plugin declarations to report",
		value: entities.DefaultMinThreshold,
		field: func(t *entities.Thresholds) *int { return &t.MinDuplicatePlugins },
	},
	{
		name:  FlagMinBundleSize,
		usage: "Minimum number of dependencies in a recommended bundle",
		value: entities.DefaultMinThreshold,
		field: func(t *entities.Thresholds) *int { return &t.MinBundleSize },
	},
	{
		name:  FlagMinBundleModules,
		usage: "Minimum number of modules sharing a recommended bundle",
		value: entities.DefaultMinThreshold,
		field: func(t *entities.Thresholds) *int { return &t.MinBundleModules },
	},
	{
		name:  FlagMaxBundleRecommendations,
		usage: "Maximum number of bundle recommendations to show",
		value: entities.DefaultMaxBundleRecommendations,
		field: func(t *entities.Thresholds) *int { return &t.MaxBundleRecommendations },
	},
}

// analysisRunner is shared by every subcommand. Subcommands only differ in
// the threshold flags they accept and the sections they print.
type analysisRunner struct {
	command   commands.Analyze
	reports   repositories.ReportRepository
	presenter ReportPresenter
}

func newAnalysisRunner(
	command commands.Analyze,
	reports repositories.ReportRepository,
	presenter ReportPresenter,
) analysisRunner {
	return analysisRunner{command: command, reports: reports, presenter: presenter}
}

// run loads the settings, applies the flags, analyzes the project and writes
// the requested outputs. The JSON report always holds the whole analysis.
func (it *analysisRunner) run(cmd *cobra.Command, sections presenters.Sections) error {
	flags := cmd.Flags()
	root, _ := flags.GetString(FlagPath)
	output, _ := flags.GetString(FlagOutput)
	silent, _ := flags.GetBool(FlagSilent)
	configPath, _ := flags.GetString(FlagConfig)
	if root == "" {
		root = "."
	}

	settings, err := loadSettings(configPath, root)
	if err != nil {
		return err
	}
	applyThresholdFlags(flags, &settings.Thresholds)
	if err = settings.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger.Debugf("Analyzing Gradle project at %s", root)
	analysis, err := it.command.Execute(ctx, commands.AnalyzeOptions{Root: root, Settings: settings})
	if err != nil {
		return err
	}

	if output != "" {
		if err = it.reports.Write(output, analysis); err != nil {
			return err
		}
	}
	if !silent {
		it.presenter.Render(analysis, sections, settings.Thresholds)
	}
	return nil
}

// loadSettings prefers an explicit --config, then a settings file found next
// to the project, then the built-in defaults.
func loadSettings(configPath, root string) (*entities.Settings, error) {
	if configPath == "" {
		found, err := entities.FindSettingsFile(root)
		if errors.Is(err, entities.ErrSettingsNotFound) {
			logger.Debug("No settings file found, using defaults")
			return entities.NewSettings(), nil
		}
		if err != nil {
			return nil, err
		}
		configPath = found
	}

	logger.Infof("Using settings file: %s", configPath)
	return entities.LoadSettings(configPath)
}

// addThresholdFlags registers the named threshold flags on cmd.
func addThresholdFlags(cmd *cobra.Command, names ...string) {
	for _, flag := range thresholdFlags {
		for _, name := range names {
			if flag.name == name {
				cmd.Flags().Int(flag.name, flag.value, flag.usage)
			}
		}
	}
}

// applyThresholdFlags copies the threshold flags the user actually set over
// the loaded settings.
func applyThresholdFlags(flags *pflag.FlagSet, thresholds *entities.Thresholds) {
	for _, flag := range thresholdFlags {
		if flags.Lookup(flag.name) == nil || !flags.Changed(flag.name) {
			continue
		}
		value, err := flags.GetInt(flag.name)
		if err != nil {
			continue
		}
		*flag.field(thresholds) = value
	}
}
