//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// PluginLocationBuilder helps create test plugin declarations.
type PluginLocationBuilder struct {
	*testkit.BaseBuilder
	id       string
	version  *string
	filePath string
	line     int
	source   entities.PluginSource
}

// NewPluginLocationBuilder creates a new builder with sensible defaults.
func NewPluginLocationBuilder() *PluginLocationBuilder {
	return &PluginLocationBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		id:          "java",
		filePath:    "app/build.gradle",
		line:        1,
		source:      entities.PluginsBlockSource(),
	}
}

// WithID sets the plugin id.
func (b *PluginLocationBuilder) WithID(id string) *PluginLocationBuilder {
	b.id = id
	return b
}

// WithVersion sets the plugin version.
func (b *PluginLocationBuilder) WithVersion(version string) *PluginLocationBuilder {
	b.version = entities.StringPtr(version)
	return b
}

// WithFilePath sets the build file path.
func (b *PluginLocationBuilder) WithFilePath(path string) *PluginLocationBuilder {
	b.filePath = path
	return b
}

// WithLine sets the line number.
func (b *PluginLocationBuilder) WithLine(line int) *PluginLocationBuilder {
	b.line = line
	return b
}

// WithSource sets how the plugin was applied.
func (b *PluginLocationBuilder) WithSource(source entities.PluginSource) *PluginLocationBuilder {
	b.source = source
	return b
}

// Build creates the plugin declaration (satisfies testkit.Builder interface).
func (b *PluginLocationBuilder) Build() interface{} {
	return b.BuildLocation()
}

// BuildLocation creates the plugin declaration with a concrete return type.
func (b *PluginLocationBuilder) BuildLocation() entities.PluginLocation {
	var version *string
	if b.version != nil {
		version = entities.StringPtr(*b.version)
	}
	return entities.PluginLocation{
		Plugin:     entities.Plugin{ID: b.id, Version: version},
		FilePath:   b.filePath,
		LineNumber: b.line,
		Source:     b.source,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *PluginLocationBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.id = "java"
	b.version = nil
	b.filePath = "app/build.gradle"
	b.line = 1
	b.source = entities.PluginsBlockSource()
	return b
}

// Clone creates a deep copy of the PluginLocationBuilder.
func (b *PluginLocationBuilder) Clone() testkit.Builder {
	clone := &PluginLocationBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:          b.id,
		filePath:    b.filePath,
		line:        b.line,
		source:      b.source,
	}
	if b.version != nil {
		clone.version = entities.StringPtr(*b.version)
	}
	return clone
}
