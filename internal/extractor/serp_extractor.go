package extractor

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"serprank/internal/errorwrapper"
	"serprank/internal/urlhandler"
)

// SERPExtractor pulls organic result URLs out of raw SERP HTML. It works
// for every Yahoo layout by collecting ALL redirect links and decoding
// their RU parameter instead of detecting the page structure.
type SERPExtractor struct {
	organicFilter *urlhandler.OrganicFilter
	normalizer    *urlhandler.URLNormalizer
	logger        zerolog.Logger
}

// NewSERPExtractor creates an extractor using the given organic filter
// and deduplication normalizer
func NewSERPExtractor(
	organicFilter *urlhandler.OrganicFilter,
	normalizer *urlhandler.URLNormalizer,
	logger zerolog.Logger,
) *SERPExtractor {
	return &SERPExtractor{
		organicFilter: organicFilter,
		normalizer:    normalizer,
		logger:        logger.With().Str("component", "SERPExtractor").Logger(),
	}
}

// ExtractFromHTML returns the organic result URLs of one SERP document
// in page order, deduplicated by normalized form. The stored URLs are
// the decoded originals, not the normalized keys.
func (se *SERPExtractor) ExtractFromHTML(htmlContent []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlContent))
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse SERP HTML")
	}

	var urls []string
	seen := make(map[string]bool)

	doc.Find("a[href*='" + urlhandler.RedirectHost + "']").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}

		decoded := urlhandler.DecodeRedirectURL(href)
		if !se.organicFilter.IsOrganic(decoded) {
			return
		}

		normalized := se.normalizer.Normalize(decoded)
		if seen[normalized] {
			return
		}
		seen[normalized] = true
		urls = append(urls, decoded)
	})

	return urls, nil
}

// ExtractTopK flattens the organic URLs of consecutive result pages into
// a single ranked list of at most k entries, deduplicating across pages
func (se *SERPExtractor) ExtractTopK(pages [][]byte, k int) ([]string, error) {
	var urls []string
	seen := make(map[string]bool)

	for pageIdx, page := range pages {
		pageURLs, err := se.ExtractFromHTML(page)
		if err != nil {
			se.logger.Warn().Err(err).Int("page", pageIdx+1).Msg("Skipping unparsable SERP page")
			continue
		}

		for _, u := range pageURLs {
			normalized := se.normalizer.Normalize(u)
			if seen[normalized] {
				continue
			}
			seen[normalized] = true
			urls = append(urls, u)

			if len(urls) >= k {
				return urls, nil
			}
		}
	}

	return urls, nil
}
