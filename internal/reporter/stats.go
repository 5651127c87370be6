package reporter

import "serprank/internal/comparer"

// Overlap distribution and interpretation thresholds
const (
	highOverlapThreshold   = 50.0
	mediumOverlapThreshold = 20.0

	strongSimilarityThreshold   = 40.0
	moderateSimilarityThreshold = 25.0

	moderateCorrelationThreshold = 0.3
)

// reportStats aggregates per-query results into report-level figures
type reportStats struct {
	TotalQueries   int
	AvgMatchCount  float64
	AvgOverlap     float64
	AvgCorrelation float64

	HighOverlap   int // >= 50%
	MediumOverlap int // 20-49%
	LowOverlap    int // < 20%

	PositiveCorrelations int
	NegativeCorrelations int
	ZeroCorrelations     int
}

// computeStats derives aggregate statistics from comparison results
func computeStats(results []comparer.ComparisonResult) reportStats {
	stats := reportStats{TotalQueries: len(results)}
	if len(results) == 0 {
		return stats
	}

	var sumMatches, sumOverlap, sumCorrelation float64
	for _, r := range results {
		sumMatches += float64(r.MatchCount)
		sumOverlap += r.PercentOverlap
		sumCorrelation += r.Correlation

		switch {
		case r.PercentOverlap >= highOverlapThreshold:
			stats.HighOverlap++
		case r.PercentOverlap >= mediumOverlapThreshold:
			stats.MediumOverlap++
		default:
			stats.LowOverlap++
		}

		switch {
		case r.Correlation > 0:
			stats.PositiveCorrelations++
		case r.Correlation < 0:
			stats.NegativeCorrelations++
		default:
			stats.ZeroCorrelations++
		}
	}

	n := float64(len(results))
	stats.AvgMatchCount = sumMatches / n
	stats.AvgOverlap = sumOverlap / n
	stats.AvgCorrelation = sumCorrelation / n

	return stats
}
