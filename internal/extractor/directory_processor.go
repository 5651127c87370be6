package extractor

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"serprank/internal/models"
)

// DirectoryProcessor walks a directory of stored SERP pages and builds a
// ResultSet keyed by query text
type DirectoryProcessor struct {
	extractor     *SERPExtractor
	rawHTMLDir    string
	pagesPerQuery int
	topK          int
	logger        zerolog.Logger
}

// NewDirectoryProcessor creates a processor over a raw HTML directory
func NewDirectoryProcessor(
	extractor *SERPExtractor,
	rawHTMLDir string,
	pagesPerQuery int,
	topK int,
	logger zerolog.Logger,
) *DirectoryProcessor {
	return &DirectoryProcessor{
		extractor:     extractor,
		rawHTMLDir:    rawHTMLDir,
		pagesPerQuery: pagesPerQuery,
		topK:          topK,
		logger:        logger.With().Str("component", "DirectoryProcessor").Logger(),
	}
}

// Process extracts the top-k organic URLs for each query that has at
// least one stored page. Query IDs are 1-based positions in the queries
// slice, matching the fetcher's file naming. Queries without any stored
// page are omitted from the result set.
func (dp *DirectoryProcessor) Process(queries []string) (*models.ResultSet, error) {
	results := models.NewResultSet()

	for queryID := 1; queryID <= len(queries); queryID++ {
		pages := dp.loadPages(queryID)
		if len(pages) == 0 {
			dp.logger.Warn().Int("query_id", queryID).Msg("No stored pages for query")
			continue
		}

		urls, err := dp.extractor.ExtractTopK(pages, dp.topK)
		if err != nil {
			return nil, err
		}

		query := queries[queryID-1]
		results.Add(query, urls)

		dp.logger.Info().
			Int("query_id", queryID).
			Int("url_count", len(urls)).
			Str("query", query).
			Msg("Query processed")
	}

	return results, nil
}

// loadPages reads the stored pages of one query in page order, skipping
// pages that were never fetched
func (dp *DirectoryProcessor) loadPages(queryID int) [][]byte {
	var pages [][]byte
	for page := 1; page <= dp.pagesPerQuery; page++ {
		path := filepath.Join(dp.rawHTMLDir, models.RawHTMLFileName(queryID, page))
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		pages = append(pages, content)
	}
	return pages
}
