package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	"github.com/rios0rios0/gradlehealth/internal/domain/repositories"
)

// catalogDocument mirrors the top-level tables of a Gradle version catalog.
// Entries stay untyped because each one may be a string or a table.
type catalogDocument struct {
	Versions  map[string]any `toml:"versions"`
	Libraries map[string]any `toml:"libraries"`
	Plugins   map[string]any `toml:"plugins"`
}

// TOMLCatalogRepository decodes libs.versions.toml style documents.
type TOMLCatalogRepository struct{}

// NewTOMLCatalogRepository creates a new TOMLCatalogRepository.
func NewTOMLCatalogRepository() *TOMLCatalogRepository {
	return &TOMLCatalogRepository{}
}

var _ repositories.CatalogRepository = (*TOMLCatalogRepository)(nil)

// Load decodes every path, ordered lexically so the first-match rule of the
// returned set is stable between runs.
func (it *TOMLCatalogRepository) Load(ctx context.Context, paths []string) (*entities.CatalogSet, error) {
	sorted := append([]string{}, paths...)
	sort.Strings(sorted)

	catalogs := make([]*entities.VersionCatalog, 0, len(sorted))
	for _, path := range sorted {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, entities.NewAnalysisError(entities.ErrorKindIO, path, err)
		}

		catalog, err := Decode(path, data)
		if err != nil {
			return nil, err
		}
		logger.Debugf(
			"Loaded catalog %s: %d versions, %d libraries, %d plugins",
			path, len(catalog.Versions), len(catalog.Libraries), len(catalog.Plugins),
		)
		catalogs = append(catalogs, catalog)
	}

	return entities.NewCatalogSet(catalogs...), nil
}

// Decode parses one catalog document. Entries with an unexpected shape are
// skipped with a debug log; only a document-level failure is an error.
func Decode(path string, data []byte) (*entities.VersionCatalog, error) {
	var doc catalogDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, column := decodeErr.Position()
			err = fmt.Errorf("line %d, column %d: %w", row, column, err)
		}
		return nil, entities.NewAnalysisError(entities.ErrorKindCatalogDecode, path, err)
	}

	versions := make(map[string]string, len(doc.Versions))
	for name, raw := range doc.Versions {
		spec := decodeVersion(raw)
		if spec.IsAbsent() || spec.IsReference() {
			logger.Debugf("Ignoring version %q in %s: unsupported value", name, path)
			continue
		}
		versions[name] = spec.Value()
	}

	libraries := make(map[string]entities.LibraryDefinition, len(doc.Libraries))
	for alias, raw := range doc.Libraries {
		def, ok := decodeLibrary(raw)
		if !ok {
			logger.Debugf("Ignoring library %q in %s: unsupported value", alias, path)
			continue
		}
		libraries[alias] = def
	}

	plugins := make(map[string]entities.PluginDefinition, len(doc.Plugins))
	for alias, raw := range doc.Plugins {
		def, ok := decodePlugin(raw)
		if !ok {
			logger.Debugf("Ignoring plugin %q in %s: unsupported value", alias, path)
			continue
		}
		plugins[alias] = def
	}

	return entities.NewVersionCatalog(path, versions, libraries, plugins), nil
}

// decodeLibrary accepts "group:name[:version]" strings and tables using
// group+name or module, with an optional version.
func decodeLibrary(raw any) (entities.LibraryDefinition, bool) {
	switch value := raw.(type) {
	case string:
		parts := strings.Split(value, ":")
		if len(parts) < 2 || len(parts) > 3 { //nolint:mnd // group:name[:version]
			return entities.LibraryDefinition{}, false
		}
		def := entities.LibraryDefinition{Group: parts[0], Name: parts[1]}
		if len(parts) == 3 && parts[2] != "" { //nolint:mnd // version present
			def.Version = entities.LiteralVersion(parts[2])
		}
		return def, true

	case map[string]any:
		def := entities.LibraryDefinition{
			Group: stringField(value, "group"),
			Name:  stringField(value, "name"),
		}
		if module := stringField(value, "module"); module != "" {
			if group, name, found := strings.Cut(module, ":"); found {
				def.Group, def.Name = group, name
			}
		}
		def.Version = tableVersion(value)
		return def, true

	default:
		return entities.LibraryDefinition{}, false
	}
}

// decodePlugin accepts "id[:version]" strings and tables with an id.
func decodePlugin(raw any) (entities.PluginDefinition, bool) {
	switch value := raw.(type) {
	case string:
		id, version, found := strings.Cut(value, ":")
		def := entities.PluginDefinition{ID: id}
		if found && version != "" {
			def.Version = entities.LiteralVersion(version)
		}
		return def, id != ""

	case map[string]any:
		def := entities.PluginDefinition{ID: stringField(value, "id")}
		def.Version = tableVersion(value)
		return def, def.ID != ""

	default:
		return entities.PluginDefinition{}, false
	}
}

// tableVersion reads the version of a library or plugin table. A dotted
// `version.ref = "x"` key decodes as a nested table; a quoted "version.ref"
// key is accepted as well.
func tableVersion(table map[string]any) entities.VersionSpec {
	if ref := stringField(table, "version.ref"); ref != "" {
		return entities.ReferenceVersion(ref)
	}
	return decodeVersion(table["version"])
}

// decodeVersion handles literal strings, { ref = "x" } and rich versions.
func decodeVersion(raw any) entities.VersionSpec {
	switch value := raw.(type) {
	case string:
		if value == "" {
			return entities.VersionSpec{}
		}
		return entities.LiteralVersion(value)
	case map[string]any:
		if ref := stringField(value, "ref"); ref != "" {
			return entities.ReferenceVersion(ref)
		}
		for _, key := range []string{"strictly", "require", "prefer"} {
			if literal := stringField(value, key); literal != "" {
				return entities.LiteralVersion(literal)
			}
		}
	}
	return entities.VersionSpec{}
}

func stringField(table map[string]any, key string) string {
	if value, ok := table[key].(string); ok {
		return value
	}
	return ""
}
