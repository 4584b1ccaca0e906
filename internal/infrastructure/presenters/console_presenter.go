package presenters

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
)

// Sections selects which findings a subcommand reports.
type Sections struct {
	Conflicts    bool
	Dependencies bool
	Plugins      bool
	Bundles      bool
}

// AllSections reports every finding.
func AllSections() Sections {
	return Sections{Conflicts: true, Dependencies: true, Plugins: true, Bundles: true}
}

// ConsolePresenter renders an analysis for humans.
type ConsolePresenter struct {
	out    io.Writer
	styles styles
}

// NewConsolePresenter creates a presenter that writes to os.Stdout.
func NewConsolePresenter() *ConsolePresenter {
	return NewConsolePresenterWithWriter(os.Stdout)
}

// NewConsolePresenterWithWriter creates a presenter that writes to out.
func NewConsolePresenterWithWriter(out io.Writer) *ConsolePresenter {
	return &ConsolePresenter{out: out, styles: newStyles(out)}
}

// Render prints the selected sections whose counts reach their threshold.
// Duplicate plugins are counted by declarations, not by plugin ids.
func (it *ConsolePresenter) Render(
	analysis *entities.CompleteAnalysis,
	sections Sections,
	thresholds entities.Thresholds,
) {
	conflicts := len(analysis.DuplicateAnalysis.VersionConflicts)
	duplicates := len(analysis.DuplicateAnalysis.RegularDuplicates)
	plugins := analysis.PluginAnalysis.TotalLocations()
	bundles := len(analysis.BundleAnalysis.RecommendedBundles)

	showConflicts := sections.Conflicts && conflicts >= thresholds.MinVersionConflicts
	showDuplicates := sections.Dependencies && duplicates >= thresholds.MinDuplicateDependencies
	showPlugins := sections.Plugins && plugins >= thresholds.MinDuplicatePlugins
	showBundles := sections.Bundles && bundles > 0 && thresholds.MaxBundleRecommendations > 0

	if !showConflicts && !showDuplicates && !showPlugins && !showBundles {
		it.printf("%s\n", it.styles.success.Render("✅ No issues found above the specified thresholds."))
		if conflicts > 0 || duplicates > 0 || plugins > 0 {
			it.printf(
				"   (Found %d version conflicts, %d duplicate dependencies, and %d duplicate plugins below thresholds)\n",
				conflicts, duplicates, plugins,
			)
		}
		return
	}

	separate := false
	if showConflicts {
		it.printf("🚨 %s:\n", it.styles.errorText.Render(fmt.Sprintf("Found %d version conflicts", conflicts)))
		it.renderConflicts(analysis.DuplicateAnalysis.VersionConflicts)
		separate = true
	}
	if showDuplicates {
		if separate {
			it.printf("\n")
		}
		it.printf("⚠️  %s:\n", it.styles.warning.Render(fmt.Sprintf("Found %d duplicate dependencies", duplicates)))
		it.renderDuplicates(analysis.DuplicateAnalysis.RegularDuplicates)
		separate = true
	}
	if showPlugins {
		if separate {
			it.printf("\n")
		}
		it.printf("🔌 %s:\n", it.styles.title.Render(fmt.Sprintf("Found %d duplicate plugins", plugins)))
		it.renderPlugins(analysis.PluginAnalysis.DuplicatePlugins)
	}
	if showBundles {
		it.renderBundles(analysis.BundleAnalysis, thresholds.MaxBundleRecommendations)
	}
}

func (it *ConsolePresenter) renderConflicts(conflicts map[string][]entities.DependencyLocation) {
	for _, key := range sortedKeys(conflicts) {
		locations := conflicts[key]
		it.printf("\n🚨 %s\n", it.styles.errorText.Render("Dependency: "+key))
		for _, location := range locations {
			it.printf("  ⚠️ %s\n", it.dependencyLine(location, it.styles.errorText))
		}
		if version, ok := entities.AlignmentVersion(locations); ok {
			it.printf("  💡 %s\n", it.styles.muted.Render("Consider aligning on version "+version))
		}
	}
}

func (it *ConsolePresenter) renderDuplicates(duplicates map[string][]entities.DependencyLocation) {
	for _, key := range sortedKeys(duplicates) {
		it.printf("\n📦 Dependency: %s\n", key)
		for _, location := range duplicates[key] {
			it.printf("  📍 %s\n", it.dependencyLine(location, it.styles.label))
		}
	}
}

func (it *ConsolePresenter) renderPlugins(plugins map[string][]entities.PluginLocation) {
	for _, id := range sortedKeys(plugins) {
		it.printf("\n🔌 Plugin: %s\n", id)
		for _, location := range plugins[id] {
			line := fmt.Sprintf("%s:%d", location.FilePath, location.LineNumber)
			if location.Plugin.Version != nil {
				line += fmt.Sprintf(" (version: %s)", it.styles.label.Render(*location.Plugin.Version))
			}
			if location.Source.Alias != "" {
				line += it.styles.muted.Render(fmt.Sprintf(" [via %s]", location.Source.Alias))
			}
			it.printf("  📍 %s\n", line)
		}
	}
}

func (it *ConsolePresenter) renderBundles(analysis entities.BundleAnalysis, maxRecommendations int) {
	shown := min(len(analysis.RecommendedBundles), maxRecommendations)
	it.printf(
		"\n💡 %s %s:\n",
		it.styles.warning.Render("Bundle recommendations"),
		it.styles.muted.Render(fmt.Sprintf("(showing %d of %d)", shown, analysis.TotalBundlesFound)),
	)

	for index, bundle := range analysis.RecommendedBundles[:shown] {
		it.printf(
			"\n📎 %d. %s (%s dependencies × %s modules)\n",
			index+1,
			it.styles.title.Render("Recommended Bundle"),
			it.styles.highlight.Render(fmt.Sprint(bundle.BundleSize)),
			it.styles.highlight.Render(fmt.Sprint(bundle.ModuleCount)),
		)

		it.printf("   %s\n", it.styles.label.Render("Dependencies:"))
		it.renderTree(bundle.Dependencies, func(dep string) string { return dep })

		if len(bundle.Configurations) > 0 {
			it.printf(
				"   %s: %s\n",
				it.styles.label.Render("Configurations"),
				it.styles.muted.Render(strings.Join(bundle.Configurations, ", ")),
			)
		}

		it.printf("   %s\n", it.styles.label.Render("Used by modules:"))
		it.renderTree(bundle.Modules, moduleName)

		it.printf("   💭 Consider creating a shared module: %s\n", it.styles.success.Render(bundle.SuggestedName))
	}
}

func (it *ConsolePresenter) renderTree(items []string, label func(string) string) {
	for i, item := range items {
		prefix := "├─"
		if i == len(items)-1 {
			prefix = "└─"
		}
		it.printf("     %s %s\n", it.styles.muted.Render(prefix), label(item))
	}
}

// dependencyLine formats "<file>:<line> - <configuration> configuration" with
// the version and catalog alias when present.
func (it *ConsolePresenter) dependencyLine(location entities.DependencyLocation, versionStyle styleRenderer) string {
	line := fmt.Sprintf("%s:%d - %s configuration", location.FilePath, location.LineNumber, location.Configuration)
	if location.Dependency.Version != nil {
		line += fmt.Sprintf(" (version: %s)", versionStyle.Render(*location.Dependency.Version))
	}
	if location.Source.IsCatalog() {
		line += it.styles.muted.Render(fmt.Sprintf(" [via %s]", location.Source.Alias))
	}
	return line
}

func (it *ConsolePresenter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(it.out, format, args...)
}

type styleRenderer interface {
	Render(strs ...string) string
}

// moduleName shortens a build file path to "<parent>/<file>".
func moduleName(path string) string {
	parent := filepath.Base(filepath.Dir(path))
	if parent == "." || parent == string(filepath.Separator) {
		return filepath.Base(path)
	}
	return parent + "/" + filepath.Base(path)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
