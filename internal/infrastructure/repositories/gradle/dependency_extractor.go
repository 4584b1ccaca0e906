package gradle

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	"github.com/rios0rios0/gradlehealth/internal/domain/repositories"
)

const maxLineBytes = 1024 * 1024

// DependencyExtractor reads dependency declarations out of build.gradle and
// build.gradle.kts files. It holds only compiled patterns and is safe for
// concurrent use.
type DependencyExtractor struct {
	patterns *dependencyPatterns
}

// NewDependencyExtractor compiles the declaration patterns. A compilation
// failure is returned as a pattern AnalysisError.
func NewDependencyExtractor() (*DependencyExtractor, error) {
	patterns, err := newDependencyPatterns()
	if err != nil {
		return nil, err
	}
	return &DependencyExtractor{patterns: patterns}, nil
}

var _ repositories.DependencyExtractorRepository = (*DependencyExtractor)(nil)

// Extract scans content line by line. Lines that match no declaration shape
// are skipped; only a read failure is an error.
func (it *DependencyExtractor) Extract(
	path string,
	content io.Reader,
	catalogs *entities.CatalogSet,
) ([]entities.DependencyLocation, error) {
	var locations []entities.DependencyLocation

	state := normalState()
	lineNumber := 0
	err := scanLines(content, func(line string) {
		lineNumber++
		trimmed := strings.TrimSpace(line)

		next := it.transition(state, trimmed)
		if next != state {
			logger.Tracef("%s:%d %s -> %s", path, lineNumber, state.kind, next.kind)
			state = next
			return
		}

		if state.kind != blockDependencies {
			return
		}
		if location, ok := it.parseDeclaration(trimmed, catalogs); ok {
			location.FilePath = path
			location.LineNumber = lineNumber
			location.Configuration += state.configurationSuffix()
			locations = append(locations, location)
		}
	})
	if err != nil {
		return nil, entities.NewAnalysisError(entities.ErrorKindIO, path, err)
	}

	return locations, nil
}

// transition returns the state after the line. The same pointer means the line
// stayed inside the current block and, for a dependencies block, still needs
// to be parsed.
func (it *DependencyExtractor) transition(state *blockState, line string) *blockState {
	delta := braceDelta(line)
	p := it.patterns

	switch state.kind {
	case blockNormal:
		switch {
		case opens(p.kotlinOpener, line, delta):
			return state.enter(blockKotlin, "", delta)
		case opens(p.sourceSetsOpener, line, delta):
			return state.enter(blockSourceSets, "", delta)
		case opens(p.dependenciesOpener, line, delta):
			return state.enter(blockDependencies, mainSourceSet, delta)
		}
		return state

	case blockKotlin:
		if opens(p.sourceSetsOpener, line, delta) {
			return state.enter(blockSourceSets, "", delta)
		}
		return state.advance(delta)

	case blockSourceSets:
		if delta > 0 {
			if m := p.sourceSetDependency.FindStringSubmatch(line); m != nil {
				return state.enter(blockDependencies, m[1], delta)
			}
			if name, ok := it.sourceSetName(line); ok {
				return state.enter(blockSourceSet, name, delta)
			}
		}
		return state.advance(delta)

	case blockSourceSet:
		if opens(p.dependenciesOpener, line, delta) {
			return state.enter(blockDependencies, state.sourceSet, delta)
		}
		return state.advance(delta)

	case blockDependencies:
		return state.advance(delta)
	}

	return state
}

// sourceSetName recognizes a bare `<name> {` with a known source set name,
// `val <name> by getting {` and `getByName("<name>") {`.
func (it *DependencyExtractor) sourceSetName(line string) (string, bool) {
	p := it.patterns
	if m := p.sourceSetBlock.FindStringSubmatch(line); m != nil && isKnownSourceSetName(m[1]) {
		return m[1], true
	}
	if m := p.sourceSetDelegate.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	if m := p.sourceSetLookup.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	return "", false
}

// parseDeclaration tries the declaration shapes in priority order. Project
// references are rejected before any shape is tried.
func (it *DependencyExtractor) parseDeclaration(
	line string,
	catalogs *entities.CatalogSet,
) (entities.DependencyLocation, bool) {
	p := it.patterns
	if p.projectReference.MatchString(line) {
		return entities.DependencyLocation{}, false
	}

	if m := p.stringDeclaration.FindStringSubmatch(line); m != nil {
		return directLocation(m[1], m[2], m[3], m[4]), true
	}
	if m := p.mapGroupFirst.FindStringSubmatch(line); m != nil {
		return directLocation(m[1], m[2], m[3], m[4]), true
	}
	if m := p.mapNameFirst.FindStringSubmatch(line); m != nil {
		return directLocation(m[1], m[3], m[2], m[4]), true
	}
	if m := p.groovyCatalog.FindStringSubmatch(line); m != nil {
		return catalogLocation(m[1], catalogAccessorRoot, m[2], catalogs)
	}
	if m := p.catalogAccessor.FindStringSubmatch(line); m != nil {
		return catalogLocation(m[1], m[2], m[3], catalogs)
	}

	return entities.DependencyLocation{}, false
}

func directLocation(configuration, group, artifact, version string) entities.DependencyLocation {
	dependency := entities.Dependency{Group: group, Artifact: artifact}
	if version != "" {
		dependency.Version = entities.StringPtr(version)
	}
	return entities.DependencyLocation{
		Dependency:    dependency,
		Configuration: configuration,
		Source:        entities.DirectSource(),
	}
}

func catalogLocation(
	configuration, root, path string,
	catalogs *entities.CatalogSet,
) (entities.DependencyLocation, bool) {
	dependency, ok := catalogs.ResolveAccessor(root, path)
	if !ok {
		return entities.DependencyLocation{}, false
	}
	return entities.DependencyLocation{
		Dependency:    dependency,
		Configuration: configuration,
		Source:        entities.CatalogSource(root + "." + path),
	}, true
}

// opens reports whether the line is a block opener that leaves a block open.
func opens(opener *regexp.Regexp, line string, delta int) bool {
	return delta > 0 && opener.MatchString(line)
}

// scanLines feeds every line of r to visit. Lines longer than maxLineBytes
// fail the scan.
func scanLines(r io.Reader, visit func(line string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
	for scanner.Scan() {
		visit(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return errors.New("line exceeds the maximum supported length")
		}
		return err
	}
	return nil
}
