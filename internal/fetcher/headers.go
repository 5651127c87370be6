package fetcher

import (
	"math/rand"
	"net/http"
)

// Header variants rotated across requests. Values mirror what current
// browser builds actually send.
var (
	defaultAcceptValues = []string{
		"text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,image/apng,*/*;q=0.8",
		"text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8",
		"text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
	}

	defaultAcceptLanguages = []string{
		"en-US,en;q=0.9",
		"en-GB,en;q=0.9,en-US;q=0.8",
		"en-US,en;q=0.8,es;q=0.7,fr;q=0.6",
		"en-CA,en;q=0.9,fr;q=0.8",
		"en-AU,en;q=0.9,en-GB;q=0.8",
	}

	// Only encodings the response reader can actually decode are
	// advertised. Setting Accept-Encoding by hand disables the
	// transport's transparent gzip handling, so decompression happens
	// in the fetcher.
	defaultAcceptEncodings = []string{
		"gzip, deflate",
		"gzip",
	}

	defaultCacheControls = []string{"no-cache", "max-age=0", "no-store", "private"}

	secFetchSites = []string{"none", "same-origin", "cross-site"}
)

// HeaderFactory builds randomized request headers from a configured
// user-agent pool. Randomness comes from the injected source so tests
// can seed it.
type HeaderFactory struct {
	userAgents []string
	rng        *rand.Rand
}

// NewHeaderFactory creates a header factory over the given user-agent pool
func NewHeaderFactory(userAgents []string, rng *rand.Rand) *HeaderFactory {
	return &HeaderFactory{
		userAgents: userAgents,
		rng:        rng,
	}
}

// UserAgent picks a random user agent from the pool
func (hf *HeaderFactory) UserAgent() string {
	if len(hf.userAgents) == 0 {
		return ""
	}
	return hf.userAgents[hf.rng.Intn(len(hf.userAgents))]
}

// Build creates a randomized header set mimicking a real browser
// navigation request
func (hf *HeaderFactory) Build() http.Header {
	headers := http.Header{}
	headers.Set("User-Agent", hf.UserAgent())
	headers.Set("Accept", defaultAcceptValues[hf.rng.Intn(len(defaultAcceptValues))])
	headers.Set("Accept-Language", defaultAcceptLanguages[hf.rng.Intn(len(defaultAcceptLanguages))])
	headers.Set("Accept-Encoding", defaultAcceptEncodings[hf.rng.Intn(len(defaultAcceptEncodings))])
	headers.Set("Connection", "keep-alive")
	headers.Set("Upgrade-Insecure-Requests", "1")

	// Optional headers show up probabilistically, as across real browsers
	if hf.rng.Float64() < 0.7 {
		headers.Set("Cache-Control", defaultCacheControls[hf.rng.Intn(len(defaultCacheControls))])
	}
	if hf.rng.Float64() < 0.6 {
		headers.Set("DNT", "1")
	}
	if hf.rng.Float64() < 0.8 {
		headers.Set("Sec-Fetch-Dest", "document")
		headers.Set("Sec-Fetch-Mode", "navigate")
		headers.Set("Sec-Fetch-Site", secFetchSites[hf.rng.Intn(len(secFetchSites))])
		headers.Set("Sec-Fetch-User", "?1")
	}
	if hf.rng.Float64() < 0.3 {
		headers.Set("Pragma", "no-cache")
	}

	return headers
}
