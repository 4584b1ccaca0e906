package gradle

import (
	"regexp"

	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
)

// All patterns run against trimmed lines.
const (
	kotlinOpenerPattern        = `^kotlin\s*\{`
	sourceSetsOpenerPattern    = `^sourceSets\s*\{`
	dependenciesOpenerPattern  = `^dependencies\s*\{`
	pluginsOpenerPattern       = `^plugins\s*\{`
	sourceSetDependencyPattern = `^([A-Za-z0-9]+)\.dependencies\s*\{\s*$`
	sourceSetBlockPattern      = `^([A-Za-z0-9]+)\s*\{\s*$`
	sourceSetDelegatePattern   = `^val\s+([A-Za-z0-9]+)\s+by\s+(?:getting|creating)\s*\{\s*$`
	sourceSetLookupPattern     = `^(?:getByName|create|named|maybeCreate)\s*\(\s*["']([A-Za-z0-9]+)["']\s*\)\s*\{\s*$`

	projectReferencePattern = `(?:^|[\s(,])(?:project\s*\(|projects\.)`

	platformWrapper = `(?:(?:platform|enforcedPlatform)\s*\(\s*)?`

	stringDeclarationPattern = `^(\w+)\s*[(\s]?\s*` + platformWrapper +
		`["']([^"':\s]+):([^"':\s]+)(?::([^"']+))?["']`
	mapGroupFirstPattern = `^(\w+)\s*\(?\s*group\s*[:=]\s*["']([^"']+)["']\s*,\s*` +
		`name\s*[:=]\s*["']([^"']+)["']` +
		`(?:\s*,\s*version\s*[:=]\s*["']([^"']+)["'])?`
	mapNameFirstPattern = `^(\w+)\s*\(?\s*name\s*[:=]\s*["']([^"']+)["']\s*,\s*` +
		`group\s*[:=]\s*["']([^"']+)["']` +
		`(?:\s*,\s*version\s*[:=]\s*["']([^"']+)["'])?`
	groovyCatalogPattern   = `^(\w+)\s+libs\.([A-Za-z0-9._\-]+)`
	catalogAccessorPattern = `^(\w+)\s*\(\s*` + platformWrapper + `([A-Za-z_]\w*)\.([A-Za-z0-9._\-]+)\s*\)`

	pluginIDVersionPattern     = `^id\s+["']([^"']+)["']\s+version\s+["']([^"']+)["']`
	pluginCallIDVersionPattern = `^id\s*\(\s*["']([^"']+)["']\s*\)\s+version\s*\(?\s*["']([^"']+)["']`
	pluginKotlinVersionPattern = `^kotlin\s*\(\s*["']([^"']+)["']\s*\)\s+version\s*\(?\s*["']([^"']+)["']`
	pluginIDOnlyPattern        = `^id\s+["']([^"']+)["']\s*(?:apply\s+false)?$`
	pluginCallIDOnlyPattern    = `^id\s*\(\s*["']([^"']+)["']\s*\)\s*(?:apply\s*\(?\s*false\s*\)?)?$`
	pluginKotlinOnlyPattern    = `^kotlin\s*\(\s*["']([^"']+)["']\s*\)\s*(?:apply\s*\(?\s*false\s*\)?)?$`
	pluginShorthandPattern     = "^`?([A-Za-z][A-Za-z\\-]*)`?\\s*$"
	pluginCatalogAliasPattern  = `^alias\s*\(\s*libs\.plugins\.([A-Za-z0-9._\-]+)\s*\)`
	applyPluginKotlinPattern   = `^apply\s*\(\s*plugin\s*=\s*["']([^"']+)["']\s*\)`
	applyPluginGroovyPattern   = `^apply\s+plugin\s*:\s*["']([^"']+)["']`
)

const (
	kotlinPluginIDPrefix        = "org.jetbrains.kotlin."
	mainSourceSet               = "main"
	catalogAccessorRoot         = "libs"
	pluginCatalogAccessorPrefix = "libs.plugins."
	sourceSetSuffixSeparator    = "-"
)

// dependencyPatterns is compiled once per extractor and only read afterwards.
type dependencyPatterns struct {
	kotlinOpener        *regexp.Regexp
	sourceSetsOpener    *regexp.Regexp
	dependenciesOpener  *regexp.Regexp
	sourceSetDependency *regexp.Regexp
	sourceSetBlock      *regexp.Regexp
	sourceSetDelegate   *regexp.Regexp
	sourceSetLookup     *regexp.Regexp
	projectReference    *regexp.Regexp
	stringDeclaration   *regexp.Regexp
	mapGroupFirst       *regexp.Regexp
	mapNameFirst        *regexp.Regexp
	groovyCatalog       *regexp.Regexp
	catalogAccessor     *regexp.Regexp
}

type pluginPatterns struct {
	pluginsOpener *regexp.Regexp
	idVersion     *regexp.Regexp
	callIDVersion *regexp.Regexp
	kotlinVersion *regexp.Regexp
	idOnly        *regexp.Regexp
	callIDOnly    *regexp.Regexp
	kotlinOnly    *regexp.Regexp
	shorthand     *regexp.Regexp
	catalogAlias  *regexp.Regexp
	applyKotlin   *regexp.Regexp
	applyGroovy   *regexp.Regexp
}

// patternCompiler collects the first compilation failure so constructors can
// compile a whole table and check once.
type patternCompiler struct {
	err error
}

func (c *patternCompiler) compile(expr string) *regexp.Regexp {
	if c.err != nil {
		return nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		c.err = entities.NewAnalysisError(entities.ErrorKindPattern, expr, err)
		return nil
	}
	return re
}

func newDependencyPatterns() (*dependencyPatterns, error) {
	c := &patternCompiler{}
	patterns := &dependencyPatterns{
		kotlinOpener:        c.compile(kotlinOpenerPattern),
		sourceSetsOpener:    c.compile(sourceSetsOpenerPattern),
		dependenciesOpener:  c.compile(dependenciesOpenerPattern),
		sourceSetDependency: c.compile(sourceSetDependencyPattern),
		sourceSetBlock:      c.compile(sourceSetBlockPattern),
		sourceSetDelegate:   c.compile(sourceSetDelegatePattern),
		sourceSetLookup:     c.compile(sourceSetLookupPattern),
		projectReference:    c.compile(projectReferencePattern),
		stringDeclaration:   c.compile(stringDeclarationPattern),
		mapGroupFirst:       c.compile(mapGroupFirstPattern),
		mapNameFirst:        c.compile(mapNameFirstPattern),
		groovyCatalog:       c.compile(groovyCatalogPattern),
		catalogAccessor:     c.compile(catalogAccessorPattern),
	}
	if c.err != nil {
		return nil, c.err
	}
	return patterns, nil
}

func newPluginPatterns() (*pluginPatterns, error) {
	c := &patternCompiler{}
	patterns := &pluginPatterns{
		pluginsOpener: c.compile(pluginsOpenerPattern),
		idVersion:     c.compile(pluginIDVersionPattern),
		callIDVersion: c.compile(pluginCallIDVersionPattern),
		kotlinVersion: c.compile(pluginKotlinVersionPattern),
		idOnly:        c.compile(pluginIDOnlyPattern),
		callIDOnly:    c.compile(pluginCallIDOnlyPattern),
		kotlinOnly:    c.compile(pluginKotlinOnlyPattern),
		shorthand:     c.compile(pluginShorthandPattern),
		catalogAlias:  c.compile(pluginCatalogAliasPattern),
		applyKotlin:   c.compile(applyPluginKotlinPattern),
		applyGroovy:   c.compile(applyPluginGroovyPattern),
	}
	if c.err != nil {
		return nil, c.err
	}
	return patterns, nil
}
