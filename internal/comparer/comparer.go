package comparer

import (
	"github.com/rs/zerolog"

	"serprank/internal/models"
)

// Comparer evaluates agreement between a reference and a candidate
// result set under a configured correlation policy. It holds no mutable
// state; every comparison is independent.
type Comparer struct {
	mode   CorrelationMode
	logger zerolog.Logger
}

// NewComparer creates a comparer for the given correlation mode
func NewComparer(mode CorrelationMode, logger zerolog.Logger) (*Comparer, error) {
	validated, err := ParseCorrelationMode(string(mode))
	if err != nil {
		return nil, err
	}

	return &Comparer{
		mode:   validated,
		logger: logger.With().Str("component", "Comparer").Logger(),
	}, nil
}

// Mode returns the configured correlation mode
func (c *Comparer) Mode() CorrelationMode {
	return c.mode
}

// CompareAll produces one ComparisonResult per query present in both
// sets, in the reference set's query order. Queries that appear only in
// the candidate set are ignored. Returns ErrNoCommonQueries when the
// retained set is empty. Performs no I/O.
func (c *Comparer) CompareAll(reference, candidate *models.ResultSet) ([]ComparisonResult, error) {
	if reference == nil || candidate == nil {
		return nil, ErrNoCommonQueries
	}

	var results []ComparisonResult
	for _, query := range reference.Queries() {
		candidateURLs, ok := candidate.Get(query)
		if !ok {
			c.logger.Debug().Str("query", query).Msg("Query missing from candidate results, skipping")
			continue
		}
		referenceURLs, _ := reference.Get(query)

		results = append(results, c.compareQuery(query, referenceURLs, candidateURLs))
	}

	if len(results) == 0 {
		return nil, ErrNoCommonQueries
	}

	c.logger.Info().
		Int("common_queries", len(results)).
		Str("mode", string(c.mode)).
		Msg("Comparison completed")

	return results, nil
}

// compareQuery builds the metrics record for a single query
func (c *Comparer) compareQuery(query string, referenceURLs, candidateURLs []string) ComparisonResult {
	matches := FindMatches(referenceURLs, candidateURLs)

	var correlation float64
	if c.mode == ModeRerank {
		correlation = SpearmanRerank(referenceURLs, candidateURLs)
	} else {
		correlation = SpearmanGlobal(referenceURLs, candidateURLs)
	}

	result := ComparisonResult{
		Query:          query,
		MatchCount:     len(matches),
		PercentOverlap: PercentOverlap(referenceURLs, candidateURLs),
		Correlation:    correlation,
		ReferenceCount: len(referenceURLs),
		CandidateCount: len(candidateURLs),
	}

	c.logger.Debug().
		Str("query", query).
		Int("match_count", result.MatchCount).
		Float64("percent_overlap", result.PercentOverlap).
		Float64("correlation", result.Correlation).
		Msg("Query compared")

	return result
}
