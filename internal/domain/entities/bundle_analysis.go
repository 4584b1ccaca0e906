package entities

import (
	"sort"
	"strings"
)

const bundleKeySeparator = "|"

// BundleOptions parameterizes FindBundles. Configurations missing from the
// score table get DefaultConfigurationScore.
type BundleOptions struct {
	MinBundleSize             int
	MinModuleCount            int
	BundleSizeWeight          float64
	ModuleCountWeight         float64
	ConfigurationScores       map[string]float64
	DefaultConfigurationScore float64
}

// DefaultBundleOptions returns the built-in thresholds and weights.
func DefaultBundleOptions() BundleOptions {
	return BundleOptions{
		MinBundleSize:             DefaultMinThreshold,
		MinModuleCount:            DefaultMinThreshold,
		BundleSizeWeight:          DefaultBundleSizeWeight,
		ModuleCountWeight:         DefaultModuleCountWeight,
		ConfigurationScores:       DefaultConfigurationScores(),
		DefaultConfigurationScore: DefaultConfigurationScore,
	}
}

// ConfigurationScore looks the configuration up as-is and then without its
// source-set suffix, so implementation-commonMain scores like implementation.
func (o BundleOptions) ConfigurationScore(configuration string) float64 {
	if score, ok := o.ConfigurationScores[configuration]; ok {
		return score
	}
	if base, _, found := strings.Cut(configuration, "-"); found {
		if score, ok := o.ConfigurationScores[base]; ok {
			return score
		}
	}
	return o.DefaultConfigurationScore
}

// FindBundles discovers sets of libraries that recur together across modules.
// A module is a build file. Subsets of every pairwise intersection are
// enumerated exhaustively, which is exponential in the intersection size but
// intersections between real modules stay small.
func FindBundles(locations []DependencyLocation, opts BundleOptions) BundleAnalysis {
	modules, moduleSets := moduleDependencySets(locations)

	candidates := make(map[string][]string)
	seen := make(map[string]struct{})
	for i := range modules {
		for j := i + 1; j < len(modules); j++ {
			common := intersect(moduleSets[modules[i]], moduleSets[modules[j]])
			if len(common) < opts.MinBundleSize {
				continue
			}

			forEachSubset(common, opts.MinBundleSize, func(subset []string) {
				key := strings.Join(subset, bundleKeySeparator)
				if _, done := seen[key]; done {
					return
				}
				seen[key] = struct{}{}

				holders := modulesContaining(modules, moduleSets, subset)
				if len(holders) >= opts.MinModuleCount {
					candidates[key] = holders
				}
			})
		}
	}

	bundles := make([]DependencyBundle, 0, len(candidates))
	for key, holders := range candidates {
		deps := strings.Split(key, bundleKeySeparator)
		configurations := bundleConfigurations(deps, locations)
		bundles = append(bundles, DependencyBundle{
			Dependencies:   deps,
			Modules:        holders,
			BundleSize:     len(deps),
			ModuleCount:    len(holders),
			Configurations: configurations,
			PriorityScore:  priorityScore(len(deps), len(holders), configurations, opts),
			SuggestedName:  SuggestBundleName(deps),
		})
	}

	bundles = removeSubsetBundles(bundles)
	sort.SliceStable(bundles, func(a, b int) bool {
		if bundles[a].PriorityScore != bundles[b].PriorityScore {
			return bundles[a].PriorityScore > bundles[b].PriorityScore
		}
		return canonicalKey(bundles[a].Dependencies) < canonicalKey(bundles[b].Dependencies)
	})

	return BundleAnalysis{
		RecommendedBundles: bundles,
		TotalBundlesFound:  len(bundles),
	}
}

// moduleDependencySets returns the sorted module paths and each module's key set.
func moduleDependencySets(locations []DependencyLocation) ([]string, map[string]map[string]struct{}) {
	sets := make(map[string]map[string]struct{})
	for _, location := range locations {
		set, ok := sets[location.FilePath]
		if !ok {
			set = make(map[string]struct{})
			sets[location.FilePath] = set
		}
		set[location.Key()] = struct{}{}
	}

	modules := make([]string, 0, len(sets))
	for module := range sets {
		modules = append(modules, module)
	}
	sort.Strings(modules)
	return modules, sets
}

// intersect returns the sorted keys present in both sets.
func intersect(left, right map[string]struct{}) []string {
	var common []string
	for key := range left {
		if _, ok := right[key]; ok {
			common = append(common, key)
		}
	}
	sort.Strings(common)
	return common
}

// forEachSubset calls visit with every sorted subset of items having at least
// minSize elements. The slice passed to visit is reused between calls.
func forEachSubset(items []string, minSize int, visit func([]string)) {
	subset := make([]string, 0, len(items))
	var walk func(start int)
	walk = func(start int) {
		if len(subset) >= minSize {
			visit(subset)
		}
		for i := start; i < len(items); i++ {
			subset = append(subset, items[i])
			walk(i + 1)
			subset = subset[:len(subset)-1]
		}
	}
	walk(0)
}

func modulesContaining(modules []string, sets map[string]map[string]struct{}, subset []string) []string {
	var holders []string
	for _, module := range modules {
		set := sets[module]
		all := true
		for _, key := range subset {
			if _, ok := set[key]; !ok {
				all = false
				break
			}
		}
		if all {
			holders = append(holders, module)
		}
	}
	return holders
}

// bundleConfigurations collects the distinct configurations used by any
// declaration of a bundled key, across all modules.
func bundleConfigurations(deps []string, locations []DependencyLocation) []string {
	wanted := make(map[string]struct{}, len(deps))
	for _, dep := range deps {
		wanted[dep] = struct{}{}
	}

	distinct := make(map[string]struct{})
	for _, location := range locations {
		if _, ok := wanted[location.Key()]; ok {
			distinct[location.Configuration] = struct{}{}
		}
	}

	configurations := make([]string, 0, len(distinct))
	for configuration := range distinct {
		configurations = append(configurations, configuration)
	}
	sort.Strings(configurations)
	return configurations
}

func priorityScore(bundleSize, moduleCount int, configurations []string, opts BundleOptions) float64 {
	score := opts.BundleSizeWeight*float64(bundleSize) + opts.ModuleCountWeight*float64(moduleCount)
	for _, configuration := range configurations {
		score += opts.ConfigurationScore(configuration)
	}
	return score
}

// removeSubsetBundles drops a bundle when a strictly larger retained bundle
// serving the identical module set contains all of its dependencies.
func removeSubsetBundles(bundles []DependencyBundle) []DependencyBundle {
	sort.SliceStable(bundles, func(a, b int) bool {
		if bundles[a].BundleSize != bundles[b].BundleSize {
			return bundles[a].BundleSize > bundles[b].BundleSize
		}
		return canonicalKey(bundles[a].Dependencies) < canonicalKey(bundles[b].Dependencies)
	})

	filtered := make([]DependencyBundle, 0, len(bundles))
	for _, bundle := range bundles {
		redundant := false
		for _, kept := range filtered {
			if kept.BundleSize > bundle.BundleSize &&
				canonicalKey(kept.Modules) == canonicalKey(bundle.Modules) &&
				containsAll(kept.Dependencies, bundle.Dependencies) {
				redundant = true
				break
			}
		}
		if !redundant {
			filtered = append(filtered, bundle)
		}
	}
	return filtered
}

func containsAll(superset, subset []string) bool {
	members := make(map[string]struct{}, len(superset))
	for _, item := range superset {
		members[item] = struct{}{}
	}
	for _, item := range subset {
		if _, ok := members[item]; !ok {
			return false
		}
	}
	return true
}

func canonicalKey(items []string) string {
	return strings.Join(items, bundleKeySeparator)
}

// bundleNamePatterns is checked in order against the most common group.
var bundleNamePatterns = []struct { //nolint:gochecknoglobals // read-only lookup table
	fragment string
	name     string
}{
	{"androidx", "androidx-bundle"},
	{"kotlin", "kotlin-bundle"},
	{"jetbrains", "kotlin-bundle"},
	{"test", "testing-bundle"},
	{"junit", "testing-bundle"},
	{"retrofit", "networking-bundle"},
	{"okhttp", "networking-bundle"},
	{"jackson", "json-bundle"},
	{"gson", "json-bundle"},
}

// SuggestBundleName derives a shared-module name from the most common group
// among the given "group:artifact" keys. Ties pick the lexically smallest group.
func SuggestBundleName(deps []string) string {
	counts := make(map[string]int)
	for _, dep := range deps {
		group, _, _ := strings.Cut(dep, ":")
		counts[group]++
	}

	best := ""
	bestCount := 0
	for group, count := range counts {
		if count > bestCount || (count == bestCount && group < best) {
			best, bestCount = group, count
		}
	}
	if best == "" {
		best = "common"
	}

	for _, pattern := range bundleNamePatterns {
		if strings.Contains(best, pattern.fragment) {
			return pattern.name
		}
	}
	return best[strings.LastIndex(best, ".")+1:] + "-bundle"
}
