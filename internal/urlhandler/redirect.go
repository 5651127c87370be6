package urlhandler

import (
	"net/url"
	"strings"
)

// RedirectHost is the host Yahoo routes result clicks through
const RedirectHost = "r.search.yahoo.com"

// ruPrefixes are the ways the RU parameter appears inside a redirect URL:
// as a path segment or as a query parameter
var ruPrefixes = []string{"/RU=", "&RU=", "?RU="}

// DecodeRedirectURL extracts the destination URL from a Yahoo redirect
// link by percent-decoding its RU parameter. URLs that are not redirect
// links, or that cannot be decoded, are returned unchanged.
//
// Redirect links look like:
//
//	https://r.search.yahoo.com/_ylt=...;_ylv=3/RU=https%3a%2f%2fexample.com%2f/RK=...
func DecodeRedirectURL(rawURL string) string {
	if !strings.Contains(rawURL, RedirectHost) {
		return rawURL
	}

	for _, prefix := range ruPrefixes {
		idx := strings.Index(rawURL, prefix)
		if idx == -1 {
			continue
		}

		start := idx + len(prefix)
		end := len(rawURL)
		for _, delim := range []byte{'&', '/'} {
			if pos := strings.IndexByte(rawURL[start:], delim); pos != -1 && start+pos < end {
				end = start + pos
			}
		}

		decoded, err := url.PathUnescape(rawURL[start:end])
		if err != nil {
			return rawURL
		}
		return decoded
	}

	return rawURL
}
