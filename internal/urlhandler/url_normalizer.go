package urlhandler

import (
	"net/url"
	"strings"
)

// NormalizationConfig configures deduplication-facing URL normalization
type NormalizationConfig struct {
	// Strip common tracking parameters from the query string
	StripTrackingParams bool
	// Parameters to strip; compared case-insensitively
	TrackingParams []string
}

// DefaultNormalizationConfig returns the default configuration
func DefaultNormalizationConfig() NormalizationConfig {
	return NormalizationConfig{
		StripTrackingParams: true,
		TrackingParams: []string{
			"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content",
			"fbclid", "gclid", "ref", "source", "campaign", "medium",
			"_ga", "_gid", "mc_cid", "mc_eid", "affiliate_id",
		},
	}
}

// URLNormalizer performs the aggressive normalization used to collapse
// duplicate URLs extracted from the same source (e.g. across paginated
// SERP documents). Its output is NOT interchangeable with ComparisonKey:
// this normalizer lowercases the whole URL and strips tracking
// parameters, which would change cross-engine matching semantics.
type URLNormalizer struct {
	config         NormalizationConfig
	trackingParams map[string]bool
}

// NewURLNormalizer creates a new URL normalizer. The tracking-parameter
// set is taken from the config rather than a package-level constant so
// tests and callers can substitute fixed policies.
func NewURLNormalizer(config NormalizationConfig) *URLNormalizer {
	trackingParams := make(map[string]bool, len(config.TrackingParams))
	if config.StripTrackingParams {
		for _, param := range config.TrackingParams {
			trackingParams[strings.ToLower(param)] = true
		}
	}

	return &URLNormalizer{
		config:         config,
		trackingParams: trackingParams,
	}
}

// Normalize canonicalizes a URL for duplicate detection. The whole URL is
// lowercased, the scheme forced to https, a leading "www." label and the
// trailing slash removed, the fragment dropped, and configured tracking
// parameters stripped. On parse failure the input is returned unchanged.
func (un *URLNormalizer) Normalize(rawURL string) string {
	if rawURL == "" {
		return rawURL
	}

	parsed, err := url.Parse(strings.ToLower(strings.TrimSpace(rawURL)))
	if err != nil {
		return rawURL
	}

	parsed.Scheme = "https"

	if strings.HasPrefix(parsed.Host, "www.") {
		parsed.Host = parsed.Host[4:]
	}

	if strings.HasSuffix(parsed.Path, "/") && parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
		parsed.RawPath = ""
	}

	un.stripQueryParameters(parsed)
	parsed.Fragment = ""

	return parsed.String()
}

// stripQueryParameters removes configured tracking parameters
func (un *URLNormalizer) stripQueryParameters(parsed *url.URL) {
	if parsed.RawQuery == "" || len(un.trackingParams) == 0 {
		return
	}

	values := parsed.Query()
	modified := false

	for param := range values {
		if un.trackingParams[strings.ToLower(param)] {
			values.Del(param)
			modified = true
		}
	}

	if modified {
		parsed.RawQuery = values.Encode()
	}
}
