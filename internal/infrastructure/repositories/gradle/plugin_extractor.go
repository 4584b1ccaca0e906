package gradle

import (
	"io"
	"regexp"
	"strings"

	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	"github.com/rios0rios0/gradlehealth/internal/domain/repositories"
)

// corePlugins are the bare names accepted inside a plugins block. Anything
// else written as a bare identifier is ignored.
//
//nolint:gochecknoglobals // read-only lookup table
var corePlugins = map[string]struct{}{
	"application":        {},
	"base":               {},
	"distribution":       {},
	"eclipse":            {},
	"groovy":             {},
	"idea":               {},
	"ivy-publish":        {},
	"jacoco":             {},
	"java":               {},
	"java-gradle-plugin": {},
	"java-library":       {},
	"java-platform":      {},
	"java-test-fixtures": {},
	"kotlin-dsl":         {},
	"maven-publish":      {},
	"scala":              {},
	"signing":            {},
	"version-catalog":    {},
	"war":                {},
}

// PluginExtractor reads plugin declarations out of Gradle build files. It is
// safe for concurrent use.
type PluginExtractor struct {
	patterns *pluginPatterns
}

// NewPluginExtractor compiles the plugin patterns.
func NewPluginExtractor() (*PluginExtractor, error) {
	patterns, err := newPluginPatterns()
	if err != nil {
		return nil, err
	}
	return &PluginExtractor{patterns: patterns}, nil
}

var _ repositories.PluginExtractorRepository = (*PluginExtractor)(nil)

// Extract finds entries of the plugins block and apply statements anywhere in
// the file.
func (it *PluginExtractor) Extract(
	path string,
	content io.Reader,
	catalogs *entities.CatalogSet,
) ([]entities.PluginLocation, error) {
	var locations []entities.PluginLocation
	p := it.patterns

	inBlock := false
	depth := 0
	lineNumber := 0
	err := scanLines(content, func(line string) {
		lineNumber++
		trimmed := strings.TrimSpace(line)
		delta := braceDelta(trimmed)

		emit := func(plugin entities.Plugin, source entities.PluginSource) {
			locations = append(locations, entities.PluginLocation{
				Plugin:     plugin,
				FilePath:   path,
				LineNumber: lineNumber,
				Source:     source,
			})
		}

		if !inBlock && opens(p.pluginsOpener, trimmed, delta) {
			inBlock = true
			depth = delta
			return
		}

		if id, ok := firstGroup(trimmed, p.applyKotlin, p.applyGroovy); ok {
			emit(entities.Plugin{ID: id}, entities.ApplyStatementSource())
		}

		if !inBlock {
			return
		}
		depth += delta
		if depth <= 0 {
			inBlock = false
			return
		}

		if plugin, source, ok := it.parseBlockEntry(trimmed, catalogs); ok {
			emit(plugin, source)
		}
	})
	if err != nil {
		return nil, entities.NewAnalysisError(entities.ErrorKindIO, path, err)
	}

	return locations, nil
}

// parseBlockEntry matches versioned ids first, then id-only forms, then core
// plugin names, then catalog aliases.
func (it *PluginExtractor) parseBlockEntry(
	line string,
	catalogs *entities.CatalogSet,
) (entities.Plugin, entities.PluginSource, bool) {
	p := it.patterns
	block := entities.PluginsBlockSource()

	for _, re := range []*regexp.Regexp{p.idVersion, p.callIDVersion} {
		if m := re.FindStringSubmatch(line); m != nil {
			return entities.Plugin{ID: m[1], Version: entities.StringPtr(m[2])}, block, true
		}
	}
	if m := p.kotlinVersion.FindStringSubmatch(line); m != nil {
		return entities.Plugin{ID: kotlinPluginIDPrefix + m[1], Version: entities.StringPtr(m[2])}, block, true
	}
	if id, ok := firstGroup(line, p.idOnly, p.callIDOnly); ok {
		return entities.Plugin{ID: id}, block, true
	}
	if m := p.kotlinOnly.FindStringSubmatch(line); m != nil {
		return entities.Plugin{ID: kotlinPluginIDPrefix + m[1]}, block, true
	}
	if m := p.shorthand.FindStringSubmatch(line); m != nil {
		if _, ok := corePlugins[m[1]]; ok {
			return entities.Plugin{ID: m[1]}, block, true
		}
		return entities.Plugin{}, entities.PluginSource{}, false
	}
	if m := p.catalogAlias.FindStringSubmatch(line); m != nil {
		plugin, err := catalogs.ResolvePlugin(m[1])
		if err != nil {
			return entities.Plugin{}, entities.PluginSource{}, false
		}
		return plugin, entities.PluginCatalogSource(pluginCatalogAccessorPrefix + m[1]), true
	}

	return entities.Plugin{}, entities.PluginSource{}, false
}

func firstGroup(line string, patterns ...*regexp.Regexp) (string, bool) {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
	}
	return "", false
}
