package urlhandler

import (
	"net/url"
	"strings"
)

// OrganicFilterConfig configures which URLs count as organic results
type OrganicFilterConfig struct {
	// Substring patterns that disqualify a URL (matched case-insensitively)
	ExcludePatterns []string
}

// DefaultOrganicFilterConfig returns the default exclusion list: the
// search engine's own properties plus non-navigational schemes
func DefaultOrganicFilterConfig() OrganicFilterConfig {
	return OrganicFilterConfig{
		ExcludePatterns: []string{
			// Yahoo domains and Yahoo-owned properties
			"yahoo.com",
			"yahooapis.com",
			"yimg.com",
			"flickr.com",
			"tumblr.com",
			"aol.com",
			"engadget.com",
			"techcrunch.com",
			"uservoice.com",
			// Non-navigational schemes and fragment-only links
			"javascript:",
			"mailto:",
			"tel:",
			"ftp:",
			"#",
		},
	}
}

// OrganicFilter decides whether an extracted URL is an organic search
// result rather than an ad, an engine-internal link, or junk
type OrganicFilter struct {
	patterns []string
}

// NewOrganicFilter creates a filter from configuration
func NewOrganicFilter(config OrganicFilterConfig) *OrganicFilter {
	patterns := make([]string, len(config.ExcludePatterns))
	for i, p := range config.ExcludePatterns {
		patterns[i] = strings.ToLower(p)
	}
	return &OrganicFilter{patterns: patterns}
}

// IsOrganic reports whether the URL points at an external website.
// The URL must be http(s), must not contain any excluded pattern, and
// must have a dotted host.
func (of *OrganicFilter) IsOrganic(rawURL string) bool {
	if rawURL == "" {
		return false
	}

	lowered := strings.ToLower(rawURL)
	if !strings.HasPrefix(lowered, "http://") && !strings.HasPrefix(lowered, "https://") {
		return false
	}

	for _, pattern := range of.patterns {
		if strings.Contains(lowered, pattern) {
			return false
		}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return parsed.Host != "" && strings.Contains(parsed.Host, ".")
}
