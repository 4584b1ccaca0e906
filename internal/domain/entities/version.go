package entities

import (
	"strings"

	"golang.org/x/mod/semver"
)

// AlignmentVersion returns the highest declared version among the locations,
// to suggest a version every module could align on. Versions are compared
// semantically when all of them are valid semver, lexically otherwise.
// It returns false when no location declares a version.
func AlignmentVersion(locations []DependencyLocation) (string, bool) {
	var versions []string
	for _, location := range locations {
		if location.Dependency.Version != nil {
			versions = append(versions, *location.Dependency.Version)
		}
	}
	if len(versions) == 0 {
		return "", false
	}

	useSemver := true
	for _, version := range versions {
		if !semver.IsValid(normalizeVersion(version)) {
			useSemver = false
			break
		}
	}

	highest := versions[0]
	for _, version := range versions[1:] {
		if isNewer(version, highest, useSemver) {
			highest = version
		}
	}
	return highest, true
}

func isNewer(candidate, current string, useSemver bool) bool {
	if useSemver {
		return semver.Compare(normalizeVersion(candidate), normalizeVersion(current)) > 0
	}
	return candidate > current
}

func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
