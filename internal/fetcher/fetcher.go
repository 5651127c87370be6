package fetcher

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"serprank/internal/config"
	"serprank/internal/errorwrapper"
	"serprank/internal/models"
)

// Fetcher downloads SERP pages for a list of queries and stores the raw
// HTML on disk. Queries are fetched strictly sequentially with
// randomized pacing between requests to avoid tripping bot detection.
type Fetcher struct {
	config  config.FetcherConfig
	client  *http.Client
	headers *HeaderFactory
	rng     *rand.Rand
	logger  zerolog.Logger
}

// FetchSummary reports the outcome of a fetch run
type FetchSummary struct {
	SuccessfulQueries int
	FailedQueries     int
	PagesFetched      int
}

// NewFetcher creates a fetcher from configuration
func NewFetcher(cfg config.FetcherConfig, logger zerolog.Logger) (*Fetcher, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	client, err := NewHTTPClient(cfg, rng, logger)
	if err != nil {
		return nil, err
	}

	return &Fetcher{
		config:  cfg,
		client:  client,
		headers: NewHeaderFactory(cfg.UserAgents, rng),
		rng:     rng,
		logger:  logger.With().Str("component", "Fetcher").Logger(),
	}, nil
}

// Run fetches all configured pages for every query, starting from the
// configured start position (1-based). Individual query failures are
// logged and counted, not fatal; the run stops early only on context
// cancellation.
func (f *Fetcher) Run(ctx context.Context, queries []string) (FetchSummary, error) {
	summary := FetchSummary{}

	start := f.config.StartQuery
	if start < 1 {
		start = 1
	}

	for queryID := start; queryID <= len(queries); queryID++ {
		query := queries[queryID-1]
		f.logger.Info().Int("query_id", queryID).Str("query", query).Msg("Fetching query")

		pages, err := f.FetchQueryPages(ctx, query, queryID)
		if err != nil {
			return summary, err
		}

		summary.PagesFetched += pages
		if pages > 0 {
			summary.SuccessfulQueries++
		} else {
			summary.FailedQueries++
			f.logger.Warn().Int("query_id", queryID).Msg("No pages collected for query")
		}

		if queryID < len(queries) {
			if err := f.sleepBetweenQueries(ctx); err != nil {
				return summary, err
			}
		}
	}

	return summary, nil
}

// FetchQueryPages fetches every configured page of one query and
// returns how many were stored. Page-level failures are logged and
// skipped; only context cancellation aborts.
func (f *Fetcher) FetchQueryPages(ctx context.Context, query string, queryID int) (int, error) {
	fetched := 0
	for page := 1; page <= f.config.PagesPerQuery; page++ {
		if err := f.FetchQueryPage(ctx, query, queryID, page); err != nil {
			if ctx.Err() != nil {
				return fetched, ctx.Err()
			}
			f.logger.Error().
				Err(err).
				Int("query_id", queryID).
				Int("page", page).
				Msg("Failed to fetch SERP page")
			continue
		}
		fetched++
	}
	return fetched, nil
}

// FetchQueryPage fetches a single SERP page and writes the raw HTML to
// the configured directory
func (f *Fetcher) FetchQueryPage(ctx context.Context, query string, queryID, page int) error {
	if err := f.preRequestDelay(ctx); err != nil {
		return err
	}

	req, err := f.buildRequest(ctx, query, page)
	if err != nil {
		return err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return errorwrapper.WrapError(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errorwrapper.NewError("unexpected status %d fetching page %d for query %d", resp.StatusCode, page, queryID)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return err
	}

	return f.saveHTML(queryID, page, body)
}

// readResponseBody reads the response, decompressing per
// Content-Encoding. The header factory sets Accept-Encoding explicitly,
// which turns off the transport's transparent gzip handling, so the
// stored HTML would otherwise be compressed bytes.
func readResponseBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader = resp.Body

	switch strings.ToLower(resp.Header.Get("Content-Encoding")) {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, errorwrapper.WrapError(err, "failed to open gzip response body")
		}
		defer gz.Close()
		reader = gz
	case "deflate":
		fr := flate.NewReader(resp.Body)
		defer fr.Close()
		reader = fr
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read response body")
	}
	return body, nil
}

// buildRequest assembles the paginated search request with randomized
// browser headers. Pagination uses the engine's offset parameter:
// page 1 -> b=0, page 2 -> b=10, and so on.
func (f *Fetcher) buildRequest(ctx context.Context, query string, page int) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.config.BaseURL, nil)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to build request")
	}

	params := url.Values{}
	params.Set("p", query)
	params.Set("n", strconv.Itoa(f.config.ResultsPerRequest))
	params.Set("b", strconv.Itoa((page-1)*f.config.ResultsPerPage))
	req.URL.RawQuery = params.Encode()

	req.Header = f.headers.Build()

	return req, nil
}

// saveHTML writes a fetched page under the raw HTML directory
func (f *Fetcher) saveHTML(queryID, page int, body []byte) error {
	if err := os.MkdirAll(f.config.RawHTMLDir, 0755); err != nil {
		return errorwrapper.WrapError(err, "failed to create raw HTML directory")
	}

	path := filepath.Join(f.config.RawHTMLDir, models.RawHTMLFileName(queryID, page))
	if err := os.WriteFile(path, body, 0644); err != nil {
		return errorwrapper.WrapError(err, "failed to write '"+path+"'")
	}

	f.logger.Debug().Str("path", path).Int("bytes", len(body)).Msg("SERP page stored")
	return nil
}

// preRequestDelay pauses briefly before each request
func (f *Fetcher) preRequestDelay(ctx context.Context) error {
	return f.randomSleep(ctx, f.config.PreRequestDelayMinSecs, f.config.PreRequestDelayMaxSecs)
}

// sleepBetweenQueries applies the long inter-query delay
func (f *Fetcher) sleepBetweenQueries(ctx context.Context) error {
	f.logger.Info().Msg("Sleeping before next query")
	return f.randomSleep(ctx, f.config.QueryDelayMinSecs, f.config.QueryDelayMaxSecs)
}

// randomSleep sleeps for a uniformly random duration within [min, max]
// seconds, honoring context cancellation
func (f *Fetcher) randomSleep(ctx context.Context, minSecs, maxSecs int) error {
	if maxSecs <= 0 {
		return nil
	}
	secs := minSecs
	if maxSecs > minSecs {
		secs += f.rng.Intn(maxSecs - minSecs + 1)
	}
	if secs <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(time.Duration(secs) * time.Second):
		return nil
	}
}
