package reporter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"serprank/internal/comparer"
	"serprank/internal/errorwrapper"
)

// CSVReportGenerator writes the tabular comparison report: one row per
// query plus a trailing Averages row
type CSVReportGenerator struct {
	logger zerolog.Logger
}

// NewCSVReportGenerator creates a CSV report generator
func NewCSVReportGenerator(logger zerolog.Logger) *CSVReportGenerator {
	return &CSVReportGenerator{
		logger: logger.With().Str("component", "CSVReportGenerator").Logger(),
	}
}

// Generate writes the CSV report for the given results
func (g *CSVReportGenerator) Generate(results []comparer.ComparisonResult, w io.Writer) error {
	stats := computeStats(results)

	writer := csv.NewWriter(w)

	header := []string{"Queries", "Number of Overlapping Results", "Percent Overlap", "Spearman Coefficient"}
	if err := writer.Write(header); err != nil {
		return errorwrapper.WrapError(err, "failed to write CSV header")
	}

	for i, result := range results {
		row := []string{
			fmt.Sprintf("Query %d", i+1),
			fmt.Sprintf("%d", result.MatchCount),
			fmt.Sprintf("%.1f", result.PercentOverlap),
			fmt.Sprintf("%.2f", result.Correlation),
		}
		if err := writer.Write(row); err != nil {
			return errorwrapper.WrapError(err, "failed to write CSV row")
		}
	}

	// The averages row uses one decimal across all columns, unlike the
	// two-decimal per-query correlation cells
	averages := []string{
		"Averages",
		fmt.Sprintf("%.1f", stats.AvgMatchCount),
		fmt.Sprintf("%.1f", stats.AvgOverlap),
		fmt.Sprintf("%.1f", stats.AvgCorrelation),
	}
	if err := writer.Write(averages); err != nil {
		return errorwrapper.WrapError(err, "failed to write CSV averages row")
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errorwrapper.WrapError(err, "failed to flush CSV report")
	}

	g.logger.Debug().Int("rows", len(results)).Msg("CSV report generated")
	return nil
}
