package entities

// AnalyzeDuplicates groups declarations by identity key and splits the groups
// that span more than one file into same-version duplicates and version
// conflicts. Location lists keep the input order.
func AnalyzeDuplicates(locations []DependencyLocation) DuplicateAnalysis {
	analysis := DuplicateAnalysis{
		RegularDuplicates: make(map[string][]DependencyLocation),
		VersionConflicts:  make(map[string][]DependencyLocation),
	}

	keys, groups := groupDependencies(locations)
	for _, key := range keys {
		group := groups[key]
		if len(group) <= 1 {
			continue
		}

		files := make(map[string]struct{})
		versions := make(map[string]struct{})
		for _, location := range group {
			files[location.FilePath] = struct{}{}
			if location.Dependency.Version != nil {
				versions[*location.Dependency.Version] = struct{}{}
			}
		}

		// repeated within one file (e.g. under different configurations)
		if len(files) <= 1 {
			continue
		}

		if len(versions) > 1 {
			analysis.VersionConflicts[key] = group
		} else {
			analysis.RegularDuplicates[key] = group
		}
	}

	return analysis
}

// AnalyzePlugins groups plugin declarations by id and keeps the ids applied in
// more than one file.
func AnalyzePlugins(locations []PluginLocation) PluginAnalysis {
	analysis := PluginAnalysis{DuplicatePlugins: make(map[string][]PluginLocation)}

	var order []string
	groups := make(map[string][]PluginLocation)
	for _, location := range locations {
		id := location.Plugin.ID
		if _, ok := groups[id]; !ok {
			order = append(order, id)
		}
		groups[id] = append(groups[id], location)
	}

	for _, id := range order {
		group := groups[id]
		if len(group) <= 1 {
			continue
		}
		files := make(map[string]struct{})
		for _, location := range group {
			files[location.FilePath] = struct{}{}
		}
		if len(files) > 1 {
			analysis.DuplicatePlugins[id] = group
		}
	}

	return analysis
}

func groupDependencies(locations []DependencyLocation) ([]string, map[string][]DependencyLocation) {
	var order []string
	groups := make(map[string][]DependencyLocation)
	for _, location := range locations {
		key := location.Key()
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], location)
	}
	return order, groups
}
