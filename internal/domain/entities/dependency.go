package entities

// DependencySourceKind tells how a dependency declaration was written.
type DependencySourceKind string

const (
	// SourceDirect is a literal "group:artifact:version" or map-style declaration.
	SourceDirect DependencySourceKind = "direct"
	// SourceVersionCatalog is a declaration resolved through a catalog accessor.
	SourceVersionCatalog DependencySourceKind = "version_catalog"
)

// Dependency represents an external library coordinate. Version is nil when
// the version is managed elsewhere (a BOM or an umbrella plugin).
type Dependency struct {
	Group    string  `json:"group"`
	Artifact string  `json:"artifact"`
	Version  *string `json:"version,omitempty"`
}

// Key returns the identity key used for grouping, ignoring the version.
func (d Dependency) Key() string {
	return DependencyKey(d.Group, d.Artifact)
}

// VersionOrEmpty returns the declared version or an empty string when absent.
func (d Dependency) VersionOrEmpty() string {
	if d.Version == nil {
		return ""
	}
	return *d.Version
}

// DependencyKey builds the "group:artifact" identity key.
func DependencyKey(group, artifact string) string {
	return group + ":" + artifact
}

// DependencySource tags the origin of a declaration. Alias is only set for
// catalog declarations and holds the accessor text (e.g. "libs.okhttp").
type DependencySource struct {
	Kind  DependencySourceKind `json:"kind"`
	Alias string               `json:"alias,omitempty"`
}

// DirectSource returns the source tag for literal declarations.
func DirectSource() DependencySource {
	return DependencySource{Kind: SourceDirect}
}

// CatalogSource returns the source tag for a catalog accessor.
func CatalogSource(alias string) DependencySource {
	return DependencySource{Kind: SourceVersionCatalog, Alias: alias}
}

// IsCatalog reports whether the declaration came from a version catalog.
func (s DependencySource) IsCatalog() bool {
	return s.Kind == SourceVersionCatalog
}

// DependencyLocation is a dependency plus where and how it was declared.
type DependencyLocation struct {
	Dependency    Dependency       `json:"dependency"`
	FilePath      string           `json:"file_path"`
	LineNumber    int              `json:"line_number"`
	Configuration string           `json:"configuration"`
	Source        DependencySource `json:"source_type"`
}

// Key returns the identity key of the declared dependency.
func (l DependencyLocation) Key() string {
	return l.Dependency.Key()
}

// StringPtr returns a pointer to a copy of s.
func StringPtr(s string) *string {
	return &s
}
