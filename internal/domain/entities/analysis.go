package entities

// ProjectFiles is the result of walking a project tree. No file is opened
// while building it.
type ProjectFiles struct {
	Root         string
	BuildFiles   []string
	CatalogFiles []string
	// Skipped holds entries that failed traversal when skipping is enabled.
	Skipped []*AnalysisError
}

// DuplicateAnalysis maps identity keys to the full location lists.
type DuplicateAnalysis struct {
	RegularDuplicates map[string][]DependencyLocation `json:"regular_duplicates"`
	VersionConflicts  map[string][]DependencyLocation `json:"version_conflicts"`
}

// PluginAnalysis maps plugin ids applied in more than one file to their locations.
type PluginAnalysis struct {
	DuplicatePlugins map[string][]PluginLocation `json:"duplicate_plugins"`
}

// TotalLocations returns the number of declarations across all duplicate plugins.
func (a PluginAnalysis) TotalLocations() int {
	total := 0
	for _, locations := range a.DuplicatePlugins {
		total += len(locations)
	}
	return total
}

// DependencyBundle is a recommendation to extract co-declared libraries into
// one shared declaration.
type DependencyBundle struct {
	Dependencies   []string `json:"dependencies"`
	Modules        []string `json:"modules"`
	BundleSize     int      `json:"bundle_size"`
	ModuleCount    int      `json:"module_count"`
	Configurations []string `json:"configurations"`
	PriorityScore  float64  `json:"priority_score"`
	SuggestedName  string   `json:"suggested_name"`
}

// BundleAnalysis holds the ranked recommendations.
type BundleAnalysis struct {
	RecommendedBundles []DependencyBundle `json:"recommended_bundles"`
	TotalBundlesFound  int                `json:"total_bundles_found"`
}

// CompleteAnalysis is the aggregate output of one run.
type CompleteAnalysis struct {
	DuplicateAnalysis DuplicateAnalysis `json:"duplicate_analysis"`
	PluginAnalysis    PluginAnalysis    `json:"plugin_analysis"`
	BundleAnalysis    BundleAnalysis    `json:"bundle_analysis"`
	FilesScanned      int               `json:"files_scanned"`
	CatalogsLoaded    int               `json:"catalogs_loaded"`
}
