package comparer

import (
	"math"

	"serprank/internal/urlhandler"
)

// FindMatches pairs positions of URLs that normalize to the same
// comparison key. For each reference position, the candidate list is
// scanned from the top and the first matching position wins; the scan
// for the next reference entry starts over. This is a deterministic
// greedy result, not a maximum bipartite matching, and a candidate
// position is NOT marked as claimed: a reference list with duplicate
// URLs can map several positions onto the same candidate position.
// Entries with empty keys never match.
func FindMatches(reference, candidate []string) []Match {
	referenceKeys := make([]string, len(reference))
	for i, u := range reference {
		referenceKeys[i] = urlhandler.ComparisonKey(u)
	}
	candidateKeys := make([]string, len(candidate))
	for i, u := range candidate {
		candidateKeys[i] = urlhandler.ComparisonKey(u)
	}

	var matches []Match
	for i, refKey := range referenceKeys {
		if refKey == "" {
			continue
		}
		for j, candKey := range candidateKeys {
			if candKey != "" && candKey == refKey {
				matches = append(matches, Match{ReferenceRank: i + 1, CandidateRank: j + 1})
				break
			}
		}
	}

	return matches
}

// PercentOverlap returns the share of reference URLs also found in the
// candidate list, in percent rounded to one decimal. The reference list
// is always the baseline; an empty reference list yields 0.0.
func PercentOverlap(reference, candidate []string) float64 {
	if len(reference) == 0 {
		return 0.0
	}

	matches := FindMatches(reference, candidate)
	return round1(float64(len(matches)) / float64(len(reference)) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
