package entities

import (
	"errors"
	"strings"
)

const (
	composeAccessorRoot   = "compose"
	composeSyntheticGroup = "org.jetbrains.compose"
	projectsAccessorRoot  = "projects"
)

var (
	// ErrAliasNotFound means the catalog has no entry for the alias.
	ErrAliasNotFound = errors.New("catalog alias not found")
	// ErrMalformedEntry means the entry lacks a group or a name.
	ErrMalformedEntry = errors.New("catalog entry is missing group or name")
	// ErrVersionNotFound means the entry references a version alias that does not exist.
	ErrVersionNotFound = errors.New("catalog version reference not found")
	// ErrUnversioned means the entry declares no version at all. The returned
	// coordinates are still valid and may be treated as BOM-managed.
	ErrUnversioned = errors.New("catalog entry declares no version")
)

type versionSpecKind int

const (
	versionAbsent versionSpecKind = iota
	versionLiteral
	versionReference
)

// VersionSpec is either a literal version string or a reference into the
// catalog's [versions] table.
type VersionSpec struct {
	kind  versionSpecKind
	value string
}

// LiteralVersion returns a spec holding a concrete version.
func LiteralVersion(version string) VersionSpec {
	return VersionSpec{kind: versionLiteral, value: version}
}

// ReferenceVersion returns a spec pointing at a [versions] alias.
func ReferenceVersion(ref string) VersionSpec {
	return VersionSpec{kind: versionReference, value: ref}
}

// IsAbsent reports whether no version was declared.
func (s VersionSpec) IsAbsent() bool {
	return s.kind == versionAbsent
}

// IsReference reports whether the spec points at a [versions] alias.
func (s VersionSpec) IsReference() bool {
	return s.kind == versionReference
}

// Value returns the literal version or the referenced alias name.
func (s VersionSpec) Value() string {
	return s.value
}

// LibraryDefinition is one entry of the [libraries] table.
type LibraryDefinition struct {
	Group   string
	Name    string
	Version VersionSpec
}

// PluginDefinition is one entry of the [plugins] table.
type PluginDefinition struct {
	ID      string
	Version VersionSpec
}

// VersionCatalog is a parsed version catalog document. It is read-only after
// construction; aliases are stored under their normalized form.
type VersionCatalog struct {
	Path      string
	Versions  map[string]string
	Libraries map[string]LibraryDefinition
	Plugins   map[string]PluginDefinition
}

// NewVersionCatalog builds a catalog, normalizing library and plugin aliases
// so that lookups behave like Gradle's generated accessors.
func NewVersionCatalog(
	path string,
	versions map[string]string,
	libraries map[string]LibraryDefinition,
	plugins map[string]PluginDefinition,
) *VersionCatalog {
	catalog := &VersionCatalog{
		Path:      path,
		Versions:  make(map[string]string, len(versions)),
		Libraries: make(map[string]LibraryDefinition, len(libraries)),
		Plugins:   make(map[string]PluginDefinition, len(plugins)),
	}
	for name, version := range versions {
		catalog.Versions[name] = version
	}
	for alias, def := range libraries {
		catalog.Libraries[NormalizeAlias(alias)] = def
	}
	for alias, def := range plugins {
		catalog.Plugins[NormalizeAlias(alias)] = def
	}
	return catalog
}

// NormalizeAlias maps an alias or accessor path to its lookup form: ".", "_"
// and "-" are equivalent separators in Gradle catalogs.
func NormalizeAlias(alias string) string {
	return strings.NewReplacer(".", "-", "_", "-").Replace(alias)
}

// resolveVersion is the single lookup for the literal/reference union.
func (c *VersionCatalog) resolveVersion(spec VersionSpec) (string, error) {
	switch spec.kind {
	case versionLiteral:
		return spec.value, nil
	case versionReference:
		version, ok := c.Versions[spec.value]
		if !ok {
			return "", ErrVersionNotFound
		}
		return version, nil
	default:
		return "", ErrUnversioned
	}
}

// ResolveLibrary resolves a library alias to concrete coordinates.
// On ErrUnversioned the returned dependency carries the coordinates with a
// nil version.
func (c *VersionCatalog) ResolveLibrary(alias string) (Dependency, error) {
	def, ok := c.Libraries[NormalizeAlias(alias)]
	if !ok {
		return Dependency{}, ErrAliasNotFound
	}
	if def.Group == "" || def.Name == "" {
		return Dependency{}, ErrMalformedEntry
	}

	dep := Dependency{Group: def.Group, Artifact: def.Name}
	version, err := c.resolveVersion(def.Version)
	if err != nil {
		if errors.Is(err, ErrUnversioned) {
			return dep, err
		}
		return Dependency{}, err
	}
	dep.Version = StringPtr(version)
	return dep, nil
}

// ResolvePlugin resolves a plugin alias. Plugins may legitimately have no
// version, so an absent or dangling version only leaves Version nil.
func (c *VersionCatalog) ResolvePlugin(alias string) (Plugin, error) {
	def, ok := c.Plugins[NormalizeAlias(alias)]
	if !ok || def.ID == "" {
		return Plugin{}, ErrAliasNotFound
	}

	plugin := Plugin{ID: def.ID}
	if version, err := c.resolveVersion(def.Version); err == nil {
		plugin.Version = StringPtr(version)
	}
	return plugin, nil
}

// CatalogSet is the ordered collection of catalogs found in a project.
// The first catalog that resolves an alias wins.
type CatalogSet struct {
	catalogs []*VersionCatalog
}

// NewCatalogSet keeps the catalogs in the given order.
func NewCatalogSet(catalogs ...*VersionCatalog) *CatalogSet {
	return &CatalogSet{catalogs: catalogs}
}

// Len returns the number of catalogs in the set.
func (s *CatalogSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.catalogs)
}

// ResolveLibrary walks the catalogs in order. Unversioned entries are only
// returned when no catalog has a fully versioned match.
func (s *CatalogSet) ResolveLibrary(alias string) (Dependency, error) {
	if s == nil {
		return Dependency{}, ErrAliasNotFound
	}

	var unversioned *Dependency
	for _, catalog := range s.catalogs {
		dep, err := catalog.ResolveLibrary(alias)
		if err == nil {
			return dep, nil
		}
		if errors.Is(err, ErrUnversioned) && unversioned == nil {
			unversioned = &dep
		}
	}
	if unversioned != nil {
		return *unversioned, ErrUnversioned
	}
	return Dependency{}, ErrAliasNotFound
}

// ResolvePlugin walks the catalogs in order.
func (s *CatalogSet) ResolvePlugin(alias string) (Plugin, error) {
	if s == nil {
		return Plugin{}, ErrAliasNotFound
	}
	for _, catalog := range s.catalogs {
		if plugin, err := catalog.ResolvePlugin(alias); err == nil {
			return plugin, nil
		}
	}
	return Plugin{}, ErrAliasNotFound
}

// ResolveAccessor resolves an accessor such as libs.okhttp or
// compose.runtime, given its root ("libs") and dotted path ("okhttp").
//
// The compose root is a narrow heuristic for the Compose Multiplatform
// accessor: it first looks for a "compose-<path>" catalog entry and
// otherwise synthesizes an org.jetbrains.compose artifact with no version,
// since that version comes from the Compose plugin. No other root gets this
// treatment. The projects root never resolves.
func (s *CatalogSet) ResolveAccessor(root, path string) (Dependency, bool) {
	if root == projectsAccessorRoot {
		return Dependency{}, false
	}

	lookup := path
	if root == composeAccessorRoot {
		lookup = composeAccessorRoot + "-" + path
	}

	dep, err := s.ResolveLibrary(lookup)
	if err == nil || errors.Is(err, ErrUnversioned) {
		return dep, true
	}

	if root == composeAccessorRoot {
		return Dependency{
			Group:    composeSyntheticGroup,
			Artifact: NormalizeAlias(path),
		}, true
	}
	return Dependency{}, false
}
