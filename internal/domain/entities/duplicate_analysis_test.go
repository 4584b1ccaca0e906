//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	"github.com/rios0rios0/gradlehealth/test/domain/entitybuilders"
)

func TestAnalyzeDuplicates(t *testing.T) {
	t.Parallel()

	t.Run("should report a regular duplicate when two files declare the same version", func(t *testing.T) {
		t.Parallel()

		// given
		locations := []entities.DependencyLocation{
			entitybuilders.NewDependencyLocationBuilder().WithFilePath("app/build.gradle").BuildLocation(),
			entitybuilders.NewDependencyLocationBuilder().WithFilePath("lib/build.gradle").BuildLocation(),
		}

		// when
		analysis := entities.AnalyzeDuplicates(locations)

		// then
		require.Len(t, analysis.RegularDuplicates, 1)
		assert.Len(t, analysis.RegularDuplicates["com.squareup.okhttp3:okhttp"], 2)
		assert.Empty(t, analysis.VersionConflicts)
	})

	t.Run("should report a version conflict when two files declare different versions", func(t *testing.T) {
		t.Parallel()

		// given
		locations := []entities.DependencyLocation{
			entitybuilders.NewDependencyLocationBuilder().
				WithFilePath("app/build.gradle").WithVersion("4.9.0").BuildLocation(),
			entitybuilders.NewDependencyLocationBuilder().
				WithFilePath("lib/build.gradle").WithVersion("4.10.0").BuildLocation(),
		}

		// when
		analysis := entities.AnalyzeDuplicates(locations)

		// then
		require.Len(t, analysis.VersionConflicts, 1)
		assert.Len(t, analysis.VersionConflicts["com.squareup.okhttp3:okhttp"], 2)
		assert.Empty(t, analysis.RegularDuplicates)
	})

	t.Run("should ignore repeats confined to a single file", func(t *testing.T) {
		t.Parallel()

		// given
		locations := []entities.DependencyLocation{
			entitybuilders.NewDependencyLocationBuilder().
				WithConfiguration("implementation").WithVersion("1.0").BuildLocation(),
			entitybuilders.NewDependencyLocationBuilder().
				WithConfiguration("testImplementation").WithVersion("2.0").WithLine(9).BuildLocation(),
		}

		// when
		analysis := entities.AnalyzeDuplicates(locations)

		// then
		assert.Empty(t, analysis.RegularDuplicates)
		assert.Empty(t, analysis.VersionConflicts)
	})

	t.Run("should treat an unversioned declaration as agreeing with any version", func(t *testing.T) {
		t.Parallel()

		// given
		locations := []entities.DependencyLocation{
			entitybuilders.NewDependencyLocationBuilder().WithFilePath("a/build.gradle").BuildLocation(),
			entitybuilders.NewDependencyLocationBuilder().WithFilePath("b/build.gradle").WithoutVersion().BuildLocation(),
		}

		// when
		analysis := entities.AnalyzeDuplicates(locations)

		// then
		assert.Len(t, analysis.RegularDuplicates, 1)
		assert.Empty(t, analysis.VersionConflicts)
	})

	t.Run("should keep every location in input order", func(t *testing.T) {
		t.Parallel()

		// given
		builder := entitybuilders.NewDependencyLocationBuilder().WithCoordinates("com.google.code.gson", "gson")
		locations := []entities.DependencyLocation{
			builder.WithFilePath("c/build.gradle").WithLine(3).BuildLocation(),
			builder.WithFilePath("a/build.gradle").WithLine(7).BuildLocation(),
			builder.WithFilePath("b/build.gradle").WithLine(5).BuildLocation(),
		}

		// when
		analysis := entities.AnalyzeDuplicates(locations)

		// then
		group := analysis.RegularDuplicates["com.google.code.gson:gson"]
		require.Len(t, group, 3)
		assert.Equal(t, "c/build.gradle", group[0].FilePath)
		assert.Equal(t, "a/build.gradle", group[1].FilePath)
		assert.Equal(t, "b/build.gradle", group[2].FilePath)
	})

	t.Run("should group catalog and literal declarations under one key", func(t *testing.T) {
		t.Parallel()

		// given
		locations := []entities.DependencyLocation{
			entitybuilders.NewDependencyLocationBuilder().
				WithFilePath("app/build.gradle.kts").WithVersion("4.10.0").BuildLocation(),
			entitybuilders.NewDependencyLocationBuilder().
				WithFilePath("core/build.gradle.kts").WithVersion("4.12.0").WithCatalogAlias("libs.okhttp").BuildLocation(),
			entitybuilders.NewDependencyLocationBuilder().
				WithFilePath("data/build.gradle.kts").WithVersion("4.11.0").BuildLocation(),
		}

		// when
		analysis := entities.AnalyzeDuplicates(locations)

		// then
		group := analysis.VersionConflicts["com.squareup.okhttp3:okhttp"]
		require.Len(t, group, 3)
		assert.True(t, group[1].Source.IsCatalog())
		assert.Equal(t, "libs.okhttp", group[1].Source.Alias)
	})
}

func TestAnalyzePlugins(t *testing.T) {
	t.Parallel()

	t.Run("should report a plugin applied in more than one file", func(t *testing.T) {
		t.Parallel()

		// given
		locations := []entities.PluginLocation{
			entitybuilders.NewPluginLocationBuilder().WithID("jacoco").WithFilePath("a/build.gradle").BuildLocation(),
			entitybuilders.NewPluginLocationBuilder().
				WithID("jacoco").WithFilePath("b/build.gradle").
				WithSource(entities.ApplyStatementSource()).BuildLocation(),
			entitybuilders.NewPluginLocationBuilder().WithID("java").WithFilePath("a/build.gradle").BuildLocation(),
		}

		// when
		analysis := entities.AnalyzePlugins(locations)

		// then
		require.Len(t, analysis.DuplicatePlugins, 1)
		assert.Len(t, analysis.DuplicatePlugins["jacoco"], 2)
		assert.Equal(t, 2, analysis.TotalLocations())
	})

	t.Run("should ignore a plugin applied twice in the same file", func(t *testing.T) {
		t.Parallel()

		// given
		locations := []entities.PluginLocation{
			entitybuilders.NewPluginLocationBuilder().WithID("jacoco").WithLine(2).BuildLocation(),
			entitybuilders.NewPluginLocationBuilder().
				WithID("jacoco").WithLine(20).WithSource(entities.ApplyStatementSource()).BuildLocation(),
		}

		// when
		analysis := entities.AnalyzePlugins(locations)

		// then
		assert.Empty(t, analysis.DuplicatePlugins)
		assert.Zero(t, analysis.TotalLocations())
	})
}
