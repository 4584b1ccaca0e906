//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencyLocationBuilder helps create test declarations with a fluent interface.
type DependencyLocationBuilder struct {
	*testkit.BaseBuilder
	group         string
	artifact      string
	version       *string
	filePath      string
	line          int
	configuration string
	source        entities.DependencySource
}

// NewDependencyLocationBuilder creates a new builder with sensible defaults.
func NewDependencyLocationBuilder() *DependencyLocationBuilder {
	return &DependencyLocationBuilder{
		BaseBuilder:   testkit.NewBaseBuilder(),
		group:         "com.squareup.okhttp3",
		artifact:      "okhttp",
		version:       entities.StringPtr("4.9.0"),
		filePath:      "app/build.gradle",
		line:          1,
		configuration: "implementation",
		source:        entities.DirectSource(),
	}
}

// WithCoordinates sets the group and artifact.
func (b *DependencyLocationBuilder) WithCoordinates(group, artifact string) *DependencyLocationBuilder {
	b.group = group
	b.artifact = artifact
	return b
}

// WithVersion sets the declared version.
func (b *DependencyLocationBuilder) WithVersion(version string) *DependencyLocationBuilder {
	b.version = entities.StringPtr(version)
	return b
}

// WithoutVersion marks the dependency as managed elsewhere.
func (b *DependencyLocationBuilder) WithoutVersion() *DependencyLocationBuilder {
	b.version = nil
	return b
}

// WithFilePath sets the build file path.
func (b *DependencyLocationBuilder) WithFilePath(path string) *DependencyLocationBuilder {
	b.filePath = path
	return b
}

// WithLine sets the line number.
func (b *DependencyLocationBuilder) WithLine(line int) *DependencyLocationBuilder {
	b.line = line
	return b
}

// WithConfiguration sets the Gradle configuration.
func (b *DependencyLocationBuilder) WithConfiguration(configuration string) *DependencyLocationBuilder {
	b.configuration = configuration
	return b
}

// WithCatalogAlias marks the declaration as resolved through a catalog accessor.
func (b *DependencyLocationBuilder) WithCatalogAlias(alias string) *DependencyLocationBuilder {
	b.source = entities.CatalogSource(alias)
	return b
}

// Build creates the declaration (satisfies testkit.Builder interface).
func (b *DependencyLocationBuilder) Build() interface{} {
	return b.BuildLocation()
}

// BuildLocation creates the declaration with a concrete return type.
func (b *DependencyLocationBuilder) BuildLocation() entities.DependencyLocation {
	var version *string
	if b.version != nil {
		version = entities.StringPtr(*b.version)
	}
	return entities.DependencyLocation{
		Dependency: entities.Dependency{
			Group:    b.group,
			Artifact: b.artifact,
			Version:  version,
		},
		FilePath:      b.filePath,
		LineNumber:    b.line,
		Configuration: b.configuration,
		Source:        b.source,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyLocationBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.group = "com.squareup.okhttp3"
	b.artifact = "okhttp"
	b.version = entities.StringPtr("4.9.0")
	b.filePath = "app/build.gradle"
	b.line = 1
	b.configuration = "implementation"
	b.source = entities.DirectSource()
	return b
}

// Clone creates a deep copy of the DependencyLocationBuilder.
func (b *DependencyLocationBuilder) Clone() testkit.Builder {
	var version *string
	if b.version != nil {
		version = entities.StringPtr(*b.version)
	}
	return &DependencyLocationBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		group:         b.group,
		artifact:      b.artifact,
		version:       version,
		filePath:      b.filePath,
		line:          b.line,
		configuration: b.configuration,
		source:        b.source,
	}
}
