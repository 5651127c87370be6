package config

// Default comparer settings
const (
	DefaultCorrelationMode = "rerank"
	DefaultReferenceFile   = "data/reference/reference_results.json"
	DefaultCandidateFile   = DefaultExtractOutputFile
)

// ComparerConfig holds configuration for result comparison
type ComparerConfig struct {
	// CorrelationMode selects the rank-correlation policy: "global"
	// operates on original positions (can exceed [-1,1]), "rerank"
	// re-ranks the matched subset (always within [-1,1])
	CorrelationMode string `json:"correlation_mode,omitempty" yaml:"correlation_mode,omitempty" validate:"omitempty,oneof=global rerank"`
	ReferenceFile   string `json:"reference_file,omitempty" yaml:"reference_file,omitempty"`
	CandidateFile   string `json:"candidate_file,omitempty" yaml:"candidate_file,omitempty"`
}

// NewDefaultComparerConfig creates comparer configuration with defaults
func NewDefaultComparerConfig() ComparerConfig {
	return ComparerConfig{
		CorrelationMode: DefaultCorrelationMode,
		ReferenceFile:   DefaultReferenceFile,
		CandidateFile:   DefaultCandidateFile,
	}
}
