package urlhandler

import (
	"net/url"
	"strings"
)

// ComparisonKey reduces a URL to the key used for cross-engine matching.
// Two URLs that differ only in scheme (http/https), a leading "www." host
// label, or a single trailing path slash produce the same key. Everything
// else, including case, stays significant.
//
// The function never fails: a URL that cannot be parsed is returned
// trimmed but otherwise unchanged, so identically-malformed strings can
// still match each other. An empty input yields an empty key, which the
// matcher treats as "never matches".
func ComparisonKey(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return ""
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return trimmed
	}

	// Scheme is dropped entirely so http and https collapse
	host := parsed.Host
	if strings.HasPrefix(strings.ToLower(host), "www.") {
		host = host[4:]
	}

	path := parsed.EscapedPath()
	if strings.HasSuffix(path, "/") && len(path) > 1 {
		path = path[:len(path)-1]
	}

	key := host + path
	if parsed.RawQuery != "" {
		key += "?" + parsed.RawQuery
	}
	if fragment := parsed.EscapedFragment(); fragment != "" {
		key += "#" + fragment
	}

	return key
}
