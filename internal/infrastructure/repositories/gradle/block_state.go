package gradle

import "strings"

type blockKind int

const (
	blockNormal blockKind = iota
	blockKotlin
	blockSourceSets
	blockSourceSet
	blockDependencies
)

func (k blockKind) String() string {
	switch k {
	case blockKotlin:
		return "kotlin"
	case blockSourceSets:
		return "sourceSets"
	case blockSourceSet:
		return "sourceSet"
	case blockDependencies:
		return "dependencies"
	default:
		return "normal"
	}
}

// blockState is one level of the block nesting the dependency extractor
// tracks. Each level owns its depth counter; a child opened from a level
// does not touch the parent's counter, so closing the child returns to the
// parent exactly as it was.
type blockState struct {
	kind      blockKind
	sourceSet string
	depth     int
	outer     *blockState
}

func normalState() *blockState {
	return &blockState{kind: blockNormal}
}

// enter opens a child level on an opener line carrying delta unmatched braces.
func (s *blockState) enter(kind blockKind, sourceSet string, delta int) *blockState {
	return &blockState{kind: kind, sourceSet: sourceSet, depth: delta, outer: s}
}

// advance applies a line's brace delta and returns the level that is current
// afterwards, which is the enclosing one once the depth drops to zero.
func (s *blockState) advance(delta int) *blockState {
	if s.kind == blockNormal {
		return s
	}
	s.depth += delta
	if s.depth <= 0 {
		return s.outer
	}
	return s
}

// configurationSuffix is appended to configurations declared inside a named
// non-main source set.
func (s *blockState) configurationSuffix() string {
	if s.sourceSet == "" || s.sourceSet == mainSourceSet {
		return ""
	}
	return sourceSetSuffixSeparator + s.sourceSet
}

// braceDelta counts opening minus closing braces on the line. Braces inside
// string literals or comments are counted too.
func braceDelta(line string) int {
	return strings.Count(line, "{") - strings.Count(line, "}")
}

// isKnownSourceSetName limits bare `<name> {` openers to the usual
// multiplatform source set names.
func isKnownSourceSetName(name string) bool {
	switch name {
	case "common", "android", "ios", "jvm", "js":
		return true
	}
	return strings.HasSuffix(name, "Main") || strings.HasSuffix(name, "Test")
}
