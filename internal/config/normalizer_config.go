package config

import "serprank/internal/urlhandler"

// NormalizerConfig holds settings for deduplication-facing URL
// normalization. The comparison-facing normalizer is deliberately not
// configurable: its rules define matching semantics and changing them
// would silently change every overlap and correlation figure.
type NormalizerConfig struct {
	StripTrackingParams bool     `json:"strip_tracking_params,omitempty" yaml:"strip_tracking_params,omitempty"`
	TrackingParams      []string `json:"tracking_params,omitempty" yaml:"tracking_params,omitempty"`
}

// NewDefaultNormalizerConfig creates normalizer configuration with defaults
func NewDefaultNormalizerConfig() NormalizerConfig {
	defaults := urlhandler.DefaultNormalizationConfig()
	return NormalizerConfig{
		StripTrackingParams: defaults.StripTrackingParams,
		TrackingParams:      defaults.TrackingParams,
	}
}

// ToNormalizationConfig converts file configuration into the
// urlhandler's construction-time config
func (nc NormalizerConfig) ToNormalizationConfig() urlhandler.NormalizationConfig {
	return urlhandler.NormalizationConfig{
		StripTrackingParams: nc.StripTrackingParams,
		TrackingParams:      nc.TrackingParams,
	}
}
