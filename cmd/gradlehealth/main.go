package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gradlehealth/internal"
	"github.com/rios0rios0/gradlehealth/internal/infrastructure/controllers"
)

// flagBinder is implemented by controllers that accept their own flags.
type flagBinder interface {
	AddFlags(cmd *cobra.Command)
}

func buildRootCommand(allController *controllers.AllController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "gradlehealth",
		Short: "Dependency health checker for Gradle multi-module projects",
		Long: `Scan the build.gradle and build.gradle.kts files of a Gradle project,
resolve version catalog aliases, and report:

  - version conflicts between modules
  - dependencies and plugins duplicated across modules
  - sets of dependencies worth extracting into a shared bundle

Build scripts are never executed; declarations are read line by line.

Usage modes:
  gradlehealth                 Run every analysis on the current directory
  gradlehealth -p ./project    Run every analysis on another project
  gradlehealth conflicts       Only report version conflicts`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(command *cobra.Command, _ []string) {
			if verbose, _ := command.Flags().GetBool(controllers.FlagVerbose); verbose {
				logger.SetLevel(logger.DebugLevel)
			}
		},
		RunE: allController.Execute,
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP(controllers.FlagPath, "p", ".",
		"Path to the Gradle project root")
	cmd.PersistentFlags().StringP(controllers.FlagOutput, "o", "",
		"Write the complete analysis as JSON to this file (\"-\" for stdout)")
	cmd.PersistentFlags().BoolP(controllers.FlagSilent, "s", false,
		"Do not print the console report")
	cmd.PersistentFlags().StringP(controllers.FlagConfig, "c", "",
		"Path to settings file (default: auto-detect)")
	cmd.PersistentFlags().BoolP(controllers.FlagVerbose, "v", false,
		"Enable verbose output")

	// The root command runs every analysis, so it takes every threshold flag
	allController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			RunE:  controller.Execute,
		}

		// Add controller-specific flags
		if binder, ok := controller.(flagBinder); ok {
			binder.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	container := newContainer()
	cobraRoot := buildRootCommand(injectAllController(container))

	// Add all subcommands
	addSubcommands(cobraRoot, injectAppContext(container))

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("❌ Error: %s", err)
	}
}
