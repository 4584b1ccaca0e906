//go:build unit

package gradle_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	"github.com/rios0rios0/gradlehealth/internal/infrastructure/repositories/gradle"
)

func extractPlugins(t *testing.T, content string, catalogs *entities.CatalogSet) []entities.PluginLocation {
	t.Helper()
	extractor, err := gradle.NewPluginExtractor()
	require.NoError(t, err)
	locations, err := extractor.Extract("app/build.gradle", strings.NewReader(content), catalogs)
	require.NoError(t, err)
	return locations
}

func pluginVersions(locations []entities.PluginLocation) map[string]string {
	versions := make(map[string]string, len(locations))
	for _, location := range locations {
		version := ""
		if location.Plugin.Version != nil {
			version = *location.Plugin.Version
		}
		versions[location.Plugin.ID] = version
	}
	return versions
}

func TestPluginExtractorExtract(t *testing.T) {
	t.Parallel()

	t.Run("should read a Groovy plugins block and apply statements", func(t *testing.T) {
		t.Parallel()

		// given
		content := `
plugins {
    id 'java'
    id 'org.springframework.boot' version '2.7.0'
    id("kotlin-jvm") version "1.8.0"
    id("application")
}

apply plugin: 'jacoco'

dependencies {
    implementation 'org.springframework:spring-core:5.3.0'
}
`

		// when
		locations := extractPlugins(t, content, entities.NewCatalogSet())

		// then
		require.Len(t, locations, 5)
		assert.Equal(t, map[string]string{
			"java":                     "",
			"org.springframework.boot": "2.7.0",
			"kotlin-jvm":               "1.8.0",
			"application":              "",
			"jacoco":                   "",
		}, pluginVersions(locations))
		assert.Equal(t, 3, locations[0].LineNumber)
		assert.Equal(t, entities.ApplyStatementSource(), locations[4].Source)
		assert.Equal(t, 9, locations[4].LineNumber)
	})

	t.Run("should read a Kotlin plugins block with core plugin shorthands", func(t *testing.T) {
		t.Parallel()

		// given
		content := `
plugins {
    id("org.springframework.boot") version "2.7.0"
    id("java-library")
    application
}

apply(plugin = "jacoco")

dependencies {
    implementation("org.springframework:spring-core:5.3.0")
}
`

		// when
		locations := extractPlugins(t, content, entities.NewCatalogSet())

		// then
		require.Len(t, locations, 4)
		assert.Equal(t, map[string]string{
			"org.springframework.boot": "2.7.0",
			"java-library":             "",
			"application":              "",
			"jacoco":                   "",
		}, pluginVersions(locations))
	})

	t.Run("should resolve catalog plugin aliases", func(t *testing.T) {
		t.Parallel()

		// given
		catalogs := decodeCatalogs(t, `
[versions]
kotlin = "1.8.0"
spring = "2.7.0"

[plugins]
kotlinJvm = { id = "org.jetbrains.kotlin.jvm", version.ref = "kotlin" }
springBoot = { id = "org.springframework.boot", version.ref = "spring" }
javaLibrary = { id = "java-library" }
`)
		content := `
plugins {
    alias(libs.plugins.kotlinJvm)
    alias(libs.plugins.springBoot)
    alias(libs.plugins.javaLibrary)
    alias(libs.plugins.unknown)
}
`

		// when
		locations := extractPlugins(t, content, catalogs)

		// then
		require.Len(t, locations, 3)
		assert.Equal(t, map[string]string{
			"org.jetbrains.kotlin.jvm": "1.8.0",
			"org.springframework.boot": "2.7.0",
			"java-library":             "",
		}, pluginVersions(locations))
		assert.Equal(t, entities.PluginCatalogSource("libs.plugins.kotlinJvm"), locations[0].Source)
	})

	t.Run("should expand the kotlin shorthand", func(t *testing.T) {
		t.Parallel()

		// given
		content := `plugins {
    kotlin("jvm") version "1.9.22"
    kotlin("plugin.serialization")
    id("com.android.application") apply false
}`

		// when
		locations := extractPlugins(t, content, entities.NewCatalogSet())

		// then
		assert.Equal(t, map[string]string{
			"org.jetbrains.kotlin.jvm":                  "1.9.22",
			"org.jetbrains.kotlin.plugin.serialization": "",
			"com.android.application":                   "",
		}, pluginVersions(locations))
	})

	t.Run("should ignore bare names that are not core plugins", func(t *testing.T) {
		t.Parallel()

		// given
		content := `plugins {
    java
    somethingElse
    ` + "`maven-publish`" + `
}`

		// when
		locations := extractPlugins(t, content, entities.NewCatalogSet())

		// then
		assert.Equal(t, map[string]string{"java": "", "maven-publish": ""}, pluginVersions(locations))
	})

	t.Run("should ignore ids outside the plugins block", func(t *testing.T) {
		t.Parallel()

		// given
		content := `id("com.example.before")
plugins {
    id("java")
}
dependencies {
    id("com.example.after")
}`

		// when
		locations := extractPlugins(t, content, entities.NewCatalogSet())

		// then
		assert.Equal(t, map[string]string{"java": ""}, pluginVersions(locations))
	})
}
