package reporter

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serprank/internal/comparer"
)

func sampleResults() []comparer.ComparisonResult {
	return []comparer.ComparisonResult{
		{Query: "first query", MatchCount: 4, PercentOverlap: 40.0, Correlation: 0.4, ReferenceCount: 10, CandidateCount: 10},
		{Query: "second query", MatchCount: 2, PercentOverlap: 20.0, Correlation: -2.3, ReferenceCount: 10, CandidateCount: 10},
	}
}

func TestCSVReportGenerator_Generate(t *testing.T) {
	var buf bytes.Buffer
	gen := NewCSVReportGenerator(zerolog.Nop())

	require.NoError(t, gen.Generate(sampleResults(), &buf))

	expected := "Queries,Number of Overlapping Results,Percent Overlap,Spearman Coefficient\n" +
		"Query 1,4,40.0,0.40\n" +
		"Query 2,2,20.0,-2.30\n" +
		"Averages,3.0,30.0,-0.9\n"
	assert.Equal(t, expected, buf.String())
}

func TestCSVReportGenerator_Generate_NoResults(t *testing.T) {
	var buf bytes.Buffer
	gen := NewCSVReportGenerator(zerolog.Nop())

	require.NoError(t, gen.Generate(nil, &buf))

	expected := "Queries,Number of Overlapping Results,Percent Overlap,Spearman Coefficient\n" +
		"Averages,0.0,0.0,0.0\n"
	assert.Equal(t, expected, buf.String())
}

func TestComputeStats(t *testing.T) {
	results := []comparer.ComparisonResult{
		{MatchCount: 8, PercentOverlap: 80.0, Correlation: 0.9},
		{MatchCount: 3, PercentOverlap: 30.0, Correlation: -0.5},
		{MatchCount: 1, PercentOverlap: 10.0, Correlation: 0.0},
		{MatchCount: 5, PercentOverlap: 50.0, Correlation: 0.2},
		{MatchCount: 2, PercentOverlap: 20.0, Correlation: -0.1},
	}

	stats := computeStats(results)

	assert.Equal(t, 5, stats.TotalQueries)
	assert.InDelta(t, 3.8, stats.AvgMatchCount, 0.001)
	assert.InDelta(t, 38.0, stats.AvgOverlap, 0.001)
	assert.InDelta(t, 0.1, stats.AvgCorrelation, 0.001)

	assert.Equal(t, 2, stats.HighOverlap)   // 80, 50
	assert.Equal(t, 2, stats.MediumOverlap) // 30, 20
	assert.Equal(t, 1, stats.LowOverlap)    // 10

	assert.Equal(t, 2, stats.PositiveCorrelations)
	assert.Equal(t, 2, stats.NegativeCorrelations)
	assert.Equal(t, 1, stats.ZeroCorrelations)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := computeStats(nil)
	assert.Equal(t, 0, stats.TotalQueries)
	assert.Equal(t, 0.0, stats.AvgOverlap)
}
