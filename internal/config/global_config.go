package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"serprank/internal/errorwrapper"
	"serprank/internal/logger"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	FetcherConfig    FetcherConfig        `json:"fetcher_config,omitempty" yaml:"fetcher_config,omitempty"`
	ExtractorConfig  ExtractorConfig      `json:"extractor_config,omitempty" yaml:"extractor_config,omitempty"`
	NormalizerConfig NormalizerConfig     `json:"normalizer_config,omitempty" yaml:"normalizer_config,omitempty"`
	ComparerConfig   ComparerConfig       `json:"comparer_config,omitempty" yaml:"comparer_config,omitempty"`
	ReporterConfig   ReporterConfig       `json:"reporter_config,omitempty" yaml:"reporter_config,omitempty"`
	LogConfig        logger.FileLogConfig `json:"log_config,omitempty" yaml:"log_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		FetcherConfig:    NewDefaultFetcherConfig(),
		ExtractorConfig:  NewDefaultExtractorConfig(),
		NormalizerConfig: NewDefaultNormalizerConfig(),
		ComparerConfig:   NewDefaultComparerConfig(),
		ReporterConfig:   NewDefaultReporterConfig(),
		LogConfig:        logger.NewDefaultFileLogConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default
// locations. YAML is assumed for .yaml/.yml extensions, JSON otherwise.
// When no config file exists anywhere, defaults are returned.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		if providedPath != "" {
			return nil, errorwrapper.NewValidationError("config_file", providedPath, "config file does not exist")
		}
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read config file '"+filePath+"'")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	if isYAMLFile(filepath.Ext(filePath)) {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return errorwrapper.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
		}
		return nil
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}

// isYAMLFile checks if the file extension indicates a YAML file
func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}
