package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Default output settings
const (
	// DefaultTopFiles is the number of per-file entries kept per axis
	DefaultTopFiles = 10

	// DefaultSortMetric is the per-file metric used to order file lists.
	// Empty keeps the order the measuring tool produced.
	DefaultSortMetric = ""

	// DefaultOutputFormat is used when no format is configured
	DefaultOutputFormat = "text"
)

// Config represents the main configuration structure
type Config struct {
	// Axes lists the axes to measure; empty means all known axes
	Axes []string `json:"axes" mapstructure:"axes" yaml:"axes"`

	// Output holds output formatting configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Analysis holds general measurement configuration
	Analysis AnalysisConfig `json:"analysis,omitempty" mapstructure:"analysis" yaml:"analysis"`

	// Progress controls progress bar display
	Progress ProgressConfig `json:"progress,omitempty" mapstructure:"progress" yaml:"progress"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml
	Format string `json:"format" mapstructure:"format" yaml:"format"`

	// SortBy names the per-file metric to sort file lists by
	SortBy string `json:"sort_by" mapstructure:"sort_by" yaml:"sort_by"`

	// TopFiles truncates per-file lists to the top N entries; 0 keeps all
	TopFiles int `json:"top_files" mapstructure:"top_files" yaml:"top_files"`
}

// AnalysisConfig holds general measurement configuration
type AnalysisConfig struct {
	// ExcludePatterns specifies gitignore-style patterns the builtin
	// adapters skip in addition to .gitignore
	ExcludePatterns []string `json:"exclude_patterns" mapstructure:"exclude_patterns" yaml:"exclude_patterns"`
}

// ProgressConfig controls progress bar display
type ProgressConfig struct {
	// Enabled controls whether progress bars are shown on a TTY
	Enabled bool `json:"enabled" mapstructure:"enabled" yaml:"enabled"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Axes: []string{},
		Output: OutputConfig{
			Format:   DefaultOutputFormat,
			SortBy:   DefaultSortMetric,
			TopFiles: DefaultTopFiles,
		},
		Analysis: AnalysisConfig{
			ExcludePatterns: []string{"node_modules/", "dist/", "build/"},
		},
		Progress: ProgressConfig{
			Enabled: true,
		},
	}
}

// configFileNames lists recognized config files in order of preference.
var configFileNames = []string{
	"qscan.yaml",
	"qscan.yml",
	".qscan.yaml",
	".qscan.yml",
}

// FindConfigFile searches the current directory and its parents for a
// recognized config file. Returns "" when none exists.
func FindConfigFile() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		for _, name := range configFileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// LoadConfig loads configuration from the given path. When path is
// empty, recognized config files are searched for; if none is found the
// defaults are returned.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = FindConfigFile()
		if path == "" {
			return DefaultConfig(), nil
		}
	}

	v := viper.New()
	v.SetConfigFile(path)

	defaults := DefaultConfig()
	v.SetDefault("axes", defaults.Axes)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("output.sort_by", defaults.Output.SortBy)
	v.SetDefault("output.top_files", defaults.Output.TopFiles)
	v.SetDefault("analysis.exclude_patterns", defaults.Analysis.ExcludePatterns)
	v.SetDefault("progress.enabled", defaults.Progress.Enabled)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
