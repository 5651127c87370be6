package fetcher

import (
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"serprank/internal/config"
	"serprank/internal/errorwrapper"
)

// NewHTTPClient creates an HTTP client for SERP fetching: pooled
// transport, optional per-request proxy rotation, and retry handling
// for rate-limit and transient upstream status codes.
func NewHTTPClient(cfg config.FetcherConfig, rng *rand.Rand, logger zerolog.Logger) (*http.Client, error) {
	proxies, err := parseProxies(cfg.Proxies)
	if err != nil {
		return nil, err
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	if len(proxies) > 0 {
		// A nil entry in the rotation means a direct connection
		transport.Proxy = func(*http.Request) (*url.URL, error) {
			return proxies[rng.Intn(len(proxies))], nil
		}
	}

	policy := RetryPolicy{
		MaxRetries:       cfg.MaxRetries,
		BaseDelay:        10 * time.Second,
		MaxDelay:         60 * time.Second,
		RetryStatusCodes: cfg.RetryStatusCodes,
	}

	return &http.Client{
		Transport: NewRetryTransport(transport, policy, logger),
		Timeout:   time.Duration(cfg.TimeoutSecs) * time.Second,
	}, nil
}

// parseProxies validates configured proxy URLs up front. An empty list
// means direct connections only; a nil slot is kept in the rotation so
// direct connections stay in the mix alongside proxies.
func parseProxies(raw []string) ([]*url.URL, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	proxies := make([]*url.URL, 0, len(raw)+1)
	proxies = append(proxies, nil)
	for _, p := range raw {
		parsed, err := url.Parse(p)
		if err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse proxy URL '"+p+"'")
		}
		proxies = append(proxies, parsed)
	}

	return proxies, nil
}
