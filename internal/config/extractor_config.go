package config

import "serprank/internal/urlhandler"

// Default extractor settings
const (
	DefaultTopK              = 10
	DefaultExtractOutputFile = "output/candidate_results.json"
)

// ExtractorConfig holds configuration for SERP result extraction
type ExtractorConfig struct {
	RawHTMLDir      string   `json:"raw_html_dir,omitempty" yaml:"raw_html_dir,omitempty"`
	PagesPerQuery   int      `json:"pages_per_query,omitempty" yaml:"pages_per_query,omitempty" validate:"gte=1"`
	TopK            int      `json:"top_k,omitempty" yaml:"top_k,omitempty" validate:"gte=1"`
	QueriesFile     string   `json:"queries_file,omitempty" yaml:"queries_file,omitempty"`
	MaxQueries      int      `json:"max_queries,omitempty" yaml:"max_queries,omitempty" validate:"gte=0"`
	OutputFile      string   `json:"output_file,omitempty" yaml:"output_file,omitempty"`
	ExcludePatterns []string `json:"exclude_patterns,omitempty" yaml:"exclude_patterns,omitempty"`
}

// NewDefaultExtractorConfig creates extractor configuration with defaults
func NewDefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		RawHTMLDir:      DefaultRawHTMLDir,
		PagesPerQuery:   DefaultPagesPerQuery,
		TopK:            DefaultTopK,
		QueriesFile:     "data/queries/queries.txt",
		MaxQueries:      0,
		OutputFile:      DefaultExtractOutputFile,
		ExcludePatterns: urlhandler.DefaultOrganicFilterConfig().ExcludePatterns,
	}
}
