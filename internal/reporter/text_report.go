package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"serprank/internal/comparer"
	"serprank/internal/errorwrapper"
)

// detailedQueryLimit caps the per-query breakdown at the end of the report
const detailedQueryLimit = 10

// TextReportGenerator writes the free-text analysis report: totals,
// distribution buckets, and a qualitative interpretation of the figures
type TextReportGenerator struct {
	logger zerolog.Logger
}

// NewTextReportGenerator creates a text report generator
func NewTextReportGenerator(logger zerolog.Logger) *TextReportGenerator {
	return &TextReportGenerator{
		logger: logger.With().Str("component", "TextReportGenerator").Logger(),
	}
}

// Generate writes the text report for the given results
func (g *TextReportGenerator) Generate(results []comparer.ComparisonResult, mode comparer.CorrelationMode, w io.Writer) error {
	stats := computeStats(results)

	var b strings.Builder

	b.WriteString("Search Engine Result Comparison Report\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	g.writeMethodology(&b, mode)
	g.writeOverallAnalysis(&b, stats)
	g.writeOverlapDistribution(&b, stats)
	g.writeCorrelationAnalysis(&b, stats)
	g.writeInterpretation(&b, stats)
	g.writeDetailedBreakdown(&b, results)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errorwrapper.WrapError(err, "failed to write text report")
	}

	g.logger.Debug().Int("queries", stats.TotalQueries).Msg("Text report generated")
	return nil
}

func (g *TextReportGenerator) writeMethodology(b *strings.Builder, mode comparer.CorrelationMode) {
	b.WriteString("METHODOLOGY\n")
	b.WriteString(strings.Repeat("-", 11) + "\n")
	b.WriteString("- URL normalization treats http/https, www, and trailing slashes as identical\n")
	b.WriteString("- Percent overlap is calculated relative to the reference (baseline) list\n")
	if mode == comparer.ModeRerank {
		b.WriteString("- Correlation: re-ranking method; only overlapping URLs are considered and\n")
		b.WriteString("  re-ranked 1..n by relative position, keeping results within [-1, +1]\n")
	} else {
		b.WriteString("- Correlation: global-rank method; original positions are used directly,\n")
		b.WriteString("  so results can exceed the conventional [-1, +1] bounds\n")
	}
	b.WriteString("\n")
}

func (g *TextReportGenerator) writeOverallAnalysis(b *strings.Builder, stats reportStats) {
	b.WriteString("OVERALL PERFORMANCE ANALYSIS\n")
	b.WriteString(strings.Repeat("-", 28) + "\n")
	fmt.Fprintf(b, "Total queries analyzed: %d\n", stats.TotalQueries)
	fmt.Fprintf(b, "Average overlapping results: %.1f\n", stats.AvgMatchCount)
	fmt.Fprintf(b, "Average percent overlap: %.1f%%\n", stats.AvgOverlap)
	fmt.Fprintf(b, "Average Spearman coefficient: %.3f\n", stats.AvgCorrelation)
	b.WriteString("\n")
}

func (g *TextReportGenerator) writeOverlapDistribution(b *strings.Builder, stats reportStats) {
	b.WriteString("OVERLAP DISTRIBUTION\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	total := stats.TotalQueries
	if total == 0 {
		total = 1
	}
	fmt.Fprintf(b, "High overlap (>=50%%): %d queries (%.1f%%)\n", stats.HighOverlap, percentOf(stats.HighOverlap, total))
	fmt.Fprintf(b, "Medium overlap (20-49%%): %d queries (%.1f%%)\n", stats.MediumOverlap, percentOf(stats.MediumOverlap, total))
	fmt.Fprintf(b, "Low overlap (<20%%): %d queries (%.1f%%)\n", stats.LowOverlap, percentOf(stats.LowOverlap, total))
	b.WriteString("\n")
}

func (g *TextReportGenerator) writeCorrelationAnalysis(b *strings.Builder, stats reportStats) {
	b.WriteString("SPEARMAN CORRELATION ANALYSIS\n")
	b.WriteString(strings.Repeat("-", 29) + "\n")
	total := stats.TotalQueries
	if total == 0 {
		total = 1
	}
	fmt.Fprintf(b, "Positive correlations: %d (%.1f%%)\n", stats.PositiveCorrelations, percentOf(stats.PositiveCorrelations, total))
	fmt.Fprintf(b, "Negative correlations: %d (%.1f%%)\n", stats.NegativeCorrelations, percentOf(stats.NegativeCorrelations, total))
	fmt.Fprintf(b, "Zero correlations: %d (%.1f%%)\n", stats.ZeroCorrelations, percentOf(stats.ZeroCorrelations, total))
	b.WriteString("\n")
}

func (g *TextReportGenerator) writeInterpretation(b *strings.Builder, stats reportStats) {
	b.WriteString("PERFORMANCE INTERPRETATION\n")
	b.WriteString(strings.Repeat("-", 26) + "\n")

	switch {
	case stats.AvgOverlap >= strongSimilarityThreshold:
		b.WriteString("The candidate engine shows STRONG similarity to the reference results.\n")
	case stats.AvgOverlap >= moderateSimilarityThreshold:
		b.WriteString("The candidate engine shows MODERATE similarity to the reference results.\n")
	default:
		b.WriteString("The candidate engine shows LIMITED similarity to the reference results.\n")
	}

	switch {
	case stats.AvgCorrelation >= moderateCorrelationThreshold:
		b.WriteString("Ranking correlation is POSITIVE and MODERATE to STRONG.\n")
	case stats.AvgCorrelation >= 0.0:
		b.WriteString("Ranking correlation is POSITIVE but WEAK.\n")
	case stats.AvgCorrelation >= -moderateCorrelationThreshold:
		b.WriteString("Ranking correlation is NEGATIVE but WEAK.\n")
	default:
		b.WriteString("Ranking correlation is NEGATIVE and MODERATE to STRONG.\n")
	}
	b.WriteString("\n")
}

func (g *TextReportGenerator) writeDetailedBreakdown(b *strings.Builder, results []comparer.ComparisonResult) {
	b.WriteString("DETAILED QUERY ANALYSIS\n")
	b.WriteString(strings.Repeat("-", 23) + "\n")

	limit := len(results)
	if limit > detailedQueryLimit {
		limit = detailedQueryLimit
	}

	for i := 0; i < limit; i++ {
		r := results[i]
		fmt.Fprintf(b, "Q%2d: %d/%d overlap (%.1f%%), rho=%.3f\n",
			i+1, r.MatchCount, r.ReferenceCount, r.PercentOverlap, r.Correlation)
	}

	if len(results) > detailedQueryLimit {
		fmt.Fprintf(b, "... and %d more queries\n", len(results)-detailedQueryLimit)
	}
}

func percentOf(count, total int) float64 {
	return float64(count) / float64(total) * 100
}
