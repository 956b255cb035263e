package service

import (
	"github.com/ludo-technologies/qscan/domain"
	"github.com/ludo-technologies/qscan/internal/config"
)

// ConfigurationLoaderImpl implements the ConfigurationLoader interface
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader service
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from the specified path
func (c *ConfigurationLoaderImpl) LoadConfig(path string) (*domain.MeasureRequest, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}
	return c.toRequest(cfg)
}

// LoadDefaultConfig loads configuration from discovered config files,
// falling back to built-in defaults.
func (c *ConfigurationLoaderImpl) LoadDefaultConfig() *domain.MeasureRequest {
	cfg, err := config.LoadConfig("")
	if err == nil {
		if req, convErr := c.toRequest(cfg); convErr == nil {
			return req
		}
	}
	req, _ := c.toRequest(config.DefaultConfig())
	return req
}

// MergeConfig merges CLI flags over a base configuration. Paths and
// writers always come from the override when set; scalar fields override
// only when they differ from the zero value.
func (c *ConfigurationLoaderImpl) MergeConfig(base *domain.MeasureRequest, override *domain.MeasureRequest) *domain.MeasureRequest {
	merged := *base

	if override.Target != "" {
		merged.Target = override.Target
	}
	if len(override.Axes) > 0 {
		merged.Axes = override.Axes
	}
	if override.OutputFormat != "" {
		merged.OutputFormat = override.OutputFormat
	}
	if override.OutputWriter != nil {
		merged.OutputWriter = override.OutputWriter
	}
	if override.SortBy != "" {
		merged.SortBy = override.SortBy
	}
	if override.TopFiles != 0 {
		merged.TopFiles = override.TopFiles
	}
	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}
	if override.NoProgress {
		merged.NoProgress = override.NoProgress
	}

	return &merged
}

// toRequest converts a Config to a MeasureRequest
func (c *ConfigurationLoaderImpl) toRequest(cfg *config.Config) (*domain.MeasureRequest, error) {
	axes, err := domain.ParseAxes(cfg.Axes)
	if err != nil {
		return nil, err
	}

	format := domain.OutputFormat(cfg.Output.Format)
	if format == "" {
		format = domain.OutputFormatText
	}

	return &domain.MeasureRequest{
		Axes:         axes,
		OutputFormat: format,
		SortBy:       cfg.Output.SortBy,
		TopFiles:     cfg.Output.TopFiles,
		NoProgress:   !cfg.Progress.Enabled,
	}, nil
}
