package comparer

import "errors"

// ErrNoCommonQueries is returned when the reference and candidate result
// sets share no queries. It signals a misconfigured input pair, not a
// transient condition.
var ErrNoCommonQueries = errors.New("no common queries between reference and candidate result sets")

// Match records that the URL at ReferenceRank in the reference list and
// the URL at CandidateRank in the candidate list normalize to the same
// comparison key. Ranks are 1-based.
type Match struct {
	ReferenceRank int `json:"reference_rank"`
	CandidateRank int `json:"candidate_rank"`
}

// ComparisonResult holds the agreement metrics for a single query.
// Built once per comparison and never mutated afterwards.
type ComparisonResult struct {
	Query          string  `json:"query"`
	MatchCount     int     `json:"match_count"`
	PercentOverlap float64 `json:"percent_overlap"`
	Correlation    float64 `json:"correlation"`
	ReferenceCount int     `json:"reference_count"`
	CandidateCount int     `json:"candidate_count"`
}

// CorrelationMode selects which rank-correlation policy CompareAll uses
type CorrelationMode string

const (
	// ModeGlobal computes correlation on original 1-based positions.
	// The result can fall outside [-1, +1] for small match counts with
	// large positional spread; that behavior is deliberate.
	ModeGlobal CorrelationMode = "global"
	// ModeRerank computes correlation on positions re-ranked among the
	// matched subset only, which keeps the result within [-1, +1]
	ModeRerank CorrelationMode = "rerank"
)

// ParseCorrelationMode validates a mode string from config or flags
func ParseCorrelationMode(mode string) (CorrelationMode, error) {
	switch CorrelationMode(mode) {
	case ModeGlobal:
		return ModeGlobal, nil
	case ModeRerank:
		return ModeRerank, nil
	default:
		return "", errors.New("correlation mode must be 'global' or 'rerank', got '" + mode + "'")
	}
}
