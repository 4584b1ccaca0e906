package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultMinThreshold is both the default and the lowest accepted value
	// of every occurrence threshold.
	DefaultMinThreshold = 2
	// DefaultMaxBundleRecommendations caps the bundles shown on the console.
	DefaultMaxBundleRecommendations = 5
	DefaultBundleSizeWeight         = 10.0
	DefaultModuleCountWeight        = 5.0
	DefaultConfigurationScore       = 1.0
	DefaultWorkers                  = 4
)

// ErrSettingsNotFound is returned when no settings file exists in any searched location.
var ErrSettingsNotFound = errors.New("settings file not found in default locations")

// Thresholds controls which findings are reported and how bundles are searched.
type Thresholds struct {
	MinVersionConflicts      int `yaml:"min_version_conflicts"`
	MinDuplicateDependencies int `yaml:"min_duplicate_dependencies"`
	MinDuplicatePlugins      int `yaml:"min_duplicate_plugins"`
	MinBundleSize            int `yaml:"min_bundle_size"`
	MinBundleModules         int `yaml:"min_bundle_modules"`
	MaxBundleRecommendations int `yaml:"max_bundle_recommendations"`
}

// PriorityWeights scales the bundle size and module count in a bundle score.
type PriorityWeights struct {
	BundleSize  float64 `yaml:"bundle_size"`
	ModuleCount float64 `yaml:"module_count"`
}

// Settings is the optional YAML configuration. Flags given on the command
// line override the values read from the file.
type Settings struct {
	Thresholds                Thresholds         `yaml:"thresholds"`
	PriorityWeights           PriorityWeights    `yaml:"priority_weights"`
	ConfigurationScores       map[string]float64 `yaml:"configuration_scores"`
	DefaultConfigurationScore float64            `yaml:"default_configuration_score"`
	Exclude                   []string           `yaml:"exclude"`
	SkipUnreadable            bool               `yaml:"skip_unreadable"`
	Workers                   int                `yaml:"workers"`
}

// DefaultConfigurationScores ranks configurations by how valuable a shared
// bundle of them is.
func DefaultConfigurationScores() map[string]float64 {
	return map[string]float64{
		"api":                3.0,
		"implementation":     2.5,
		"compileOnly":        2.0,
		"runtimeOnly":        1.5,
		"testImplementation": 1.0,
		"testCompileOnly":    0.5,
	}
}

// NewSettings returns the built-in defaults.
func NewSettings() *Settings {
	return &Settings{
		Thresholds: Thresholds{
			MinVersionConflicts:      DefaultMinThreshold,
			MinDuplicateDependencies: DefaultMinThreshold,
			MinDuplicatePlugins:      DefaultMinThreshold,
			MinBundleSize:            DefaultMinThreshold,
			MinBundleModules:         DefaultMinThreshold,
			MaxBundleRecommendations: DefaultMaxBundleRecommendations,
		},
		PriorityWeights: PriorityWeights{
			BundleSize:  DefaultBundleSizeWeight,
			ModuleCount: DefaultModuleCountWeight,
		},
		ConfigurationScores:       DefaultConfigurationScores(),
		DefaultConfigurationScore: DefaultConfigurationScore,
		Exclude:                   []string{"**/.git", "**/.gradle"},
		Workers:                   DefaultWorkers,
	}
}

// LoadSettings reads a YAML settings file over the defaults and validates it.
// Configuration scores in the file are merged into the default table.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewAnalysisError(ErrorKindIO, path, fmt.Errorf("failed to read settings file: %w", err))
	}

	settings := NewSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, NewAnalysisError(
			ErrorKindValidation, path, fmt.Errorf("failed to parse settings file: %w", unmarshalErr),
		)
	}

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	logger.Debugf("Loaded settings from %s", path)
	return settings, nil
}

// FindSettingsFile searches the given directories first, then the standard
// locations, and returns the first settings file found.
func FindSettingsFile(dirs ...string) (string, error) {
	locations := append([]string{}, dirs...)
	locations = append(locations, ".", ".config", "configs")
	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}

	patterns := []string{
		".gradle-health.yaml",
		".gradle-health.yml",
		"gradle-health.yaml",
		"gradle-health.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if info, statErr := os.Stat(p); statErr == nil && !info.IsDir() {
				return p, nil
			}
		}
	}

	return "", ErrSettingsNotFound
}

// Validate checks thresholds, weights and exclude patterns.
func (it *Settings) Validate() error {
	checks := []struct {
		value int
		flag  string
		what  string
	}{
		{it.Thresholds.MinVersionConflicts, "--min-version-conflicts", "conflicts require at least %d occurrences"},
		{
			it.Thresholds.MinDuplicateDependencies, "--min-duplicate-dependencies",
			"duplicates require at least %d occurrences",
		},
		{
			it.Thresholds.MinDuplicatePlugins, "--min-duplicate-plugins",
			"duplicate plugins require at least %d occurrences",
		},
		{it.Thresholds.MinBundleSize, "--min-bundle-size", "bundles require at least %d dependencies"},
		{it.Thresholds.MinBundleModules, "--min-bundle-modules", "bundles require at least %d modules"},
	}
	for _, check := range checks {
		if check.value < DefaultMinThreshold {
			reason := fmt.Sprintf(check.what, DefaultMinThreshold)
			return validationError(fmt.Errorf("%s must be at least %d (%s)", check.flag, DefaultMinThreshold, reason))
		}
	}

	if it.Thresholds.MaxBundleRecommendations < 1 {
		return validationError(errors.New("--max-bundle-recommendations must be at least 1"))
	}
	if it.Workers < 1 {
		return validationError(errors.New("workers must be at least 1"))
	}
	if it.PriorityWeights.BundleSize < 0 || it.PriorityWeights.ModuleCount < 0 {
		return validationError(errors.New("priority weights must not be negative"))
	}
	for _, pattern := range it.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return validationError(fmt.Errorf("invalid exclude pattern %q", pattern))
		}
	}

	return nil
}

// BundleOptions converts the settings into bundle analyzer options.
func (it *Settings) BundleOptions() BundleOptions {
	scores := DefaultConfigurationScores()
	for name, score := range it.ConfigurationScores {
		scores[name] = score
	}
	return BundleOptions{
		MinBundleSize:             it.Thresholds.MinBundleSize,
		MinModuleCount:            it.Thresholds.MinBundleModules,
		BundleSizeWeight:          it.PriorityWeights.BundleSize,
		ModuleCountWeight:         it.PriorityWeights.ModuleCount,
		ConfigurationScores:       scores,
		DefaultConfigurationScore: it.DefaultConfigurationScore,
	}
}

func validationError(err error) error {
	return NewAnalysisError(ErrorKindValidation, "", err)
}
