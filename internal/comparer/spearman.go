package comparer

import "sort"

// SpearmanGlobal computes a rank-correlation coefficient directly on the
// ORIGINAL 1-based positions of matched URLs using the Spearman formula
// rho = 1 - 6*sum(d^2) / (n*(n^2-1)) with d = referenceRank - candidateRank.
//
// Because d is taken from original positions rather than dense ranks of
// the matched subset, the value can exceed the conventional [-1, +1]
// bound for small n with large positional spread. That is a documented
// property of this metric, not a defect; SpearmanRerank provides the
// bounded alternative.
//
// Degenerate cases: no matches yields 0.0; a single match yields 1.0
// when both positions are equal and 0.0 otherwise.
func SpearmanGlobal(reference, candidate []string) float64 {
	matches := FindMatches(reference, candidate)

	switch len(matches) {
	case 0:
		return 0.0
	case 1:
		if matches[0].ReferenceRank == matches[0].CandidateRank {
			return 1.0
		}
		return 0.0
	}

	n := len(matches)
	sumDSquared := 0
	for _, m := range matches {
		d := m.ReferenceRank - m.CandidateRank
		sumDSquared += d * d
	}

	// n*(n^2-1) is only zero for n <= 1, which is handled above
	rho := 1.0 - (6.0*float64(sumDSquared))/float64(n*(n*n-1))
	return round3(rho)
}

// SpearmanRerank computes the rank correlation on RE-RANKED positions:
// only matched URLs are considered, and each side's positions are
// replaced by their ordinal rank (1..n) among the matched subset. Both
// re-ranked sequences are permutations of 1..n, so the result always
// stays within [-1, +1].
//
// Example: matches at reference positions [1,5,6,7] and candidate
// positions [1,9,2,6] re-rank to [1,2,3,4] and [1,4,2,3], giving
// rho = 1 - 6*6/(4*15) = 0.4.
//
// Degenerate cases match SpearmanGlobal.
func SpearmanRerank(reference, candidate []string) float64 {
	matches := FindMatches(reference, candidate)

	switch len(matches) {
	case 0:
		return 0.0
	case 1:
		if matches[0].ReferenceRank == matches[0].CandidateRank {
			return 1.0
		}
		return 0.0
	}

	n := len(matches)

	// Establish the re-ranking order by reference position. FindMatches
	// already returns matches in that order, but re-derive it so this
	// function does not depend on the matcher's output ordering.
	byReference := make([]Match, n)
	copy(byReference, matches)
	sort.SliceStable(byReference, func(i, j int) bool {
		return byReference[i].ReferenceRank < byReference[j].ReferenceRank
	})

	candidateRanks := make([]int, n)
	for i, m := range byReference {
		candidateRanks[i] = m.CandidateRank
	}

	reranked := rerank(candidateRanks)

	sumDSquared := 0
	for i, candRerank := range reranked {
		d := (i + 1) - candRerank
		sumDSquared += d * d
	}

	rho := 1.0 - (6.0*float64(sumDSquared))/float64(n*(n*n-1))
	return round3(rho)
}

// rerank maps each value to its ordinal rank (1..n) among the sorted
// values. Duplicate values (possible when two reference entries claim the
// same candidate position) receive consecutive ordinals in their original
// order rather than a shared average rank.
func rerank(values []int) []int {
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	ordinals := make(map[int][]int, len(sorted))
	for i, v := range sorted {
		ordinals[v] = append(ordinals[v], i+1)
	}

	result := make([]int, len(values))
	for i, v := range values {
		queue := ordinals[v]
		result[i] = queue[0]
		ordinals[v] = queue[1:]
	}

	return result
}
