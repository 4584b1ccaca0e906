package entities

// PluginSourceKind tells how a plugin was applied.
type PluginSourceKind string

const (
	// PluginSourcePluginsBlock is an entry inside a plugins { } block.
	PluginSourcePluginsBlock PluginSourceKind = "plugins_block"
	// PluginSourceApplyStatement is an `apply plugin:` or `apply(plugin = ...)` statement.
	PluginSourceApplyStatement PluginSourceKind = "apply_statement"
	// PluginSourceVersionCatalog is an alias(libs.plugins.x) entry resolved through a catalog.
	PluginSourceVersionCatalog PluginSourceKind = "version_catalog"
)

// Plugin is a Gradle plugin id with its optional version.
type Plugin struct {
	ID      string  `json:"id"`
	Version *string `json:"version,omitempty"`
}

// PluginSource tags the origin of a plugin declaration.
type PluginSource struct {
	Kind  PluginSourceKind `json:"kind"`
	Alias string           `json:"alias,omitempty"`
}

// PluginsBlockSource returns the source tag for plugins block entries.
func PluginsBlockSource() PluginSource {
	return PluginSource{Kind: PluginSourcePluginsBlock}
}

// ApplyStatementSource returns the source tag for apply statements.
func ApplyStatementSource() PluginSource {
	return PluginSource{Kind: PluginSourceApplyStatement}
}

// PluginCatalogSource returns the source tag for catalog plugin aliases.
func PluginCatalogSource(alias string) PluginSource {
	return PluginSource{Kind: PluginSourceVersionCatalog, Alias: alias}
}

// PluginLocation is a plugin plus where it was declared.
type PluginLocation struct {
	Plugin     Plugin       `json:"plugin"`
	FilePath   string       `json:"file_path"`
	LineNumber int          `json:"line_number"`
	Source     PluginSource `json:"source_type"`
}
