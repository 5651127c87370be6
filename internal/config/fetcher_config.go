package config

// Default fetcher settings
const (
	DefaultSearchBaseURL     = "https://search.yahoo.com/search"
	DefaultResultsPerRequest = 30
	DefaultPagesPerQuery     = 3
	DefaultResultsPerPage    = 10
	DefaultFetchTimeoutSecs  = 30
	DefaultFetchMaxRetries   = 2
	DefaultRawHTMLDir        = "data/raw_html"
)

// FetcherConfig holds configuration for the SERP fetcher. The user-agent
// pool and proxy list are configuration values rather than package
// globals so fetch behavior can be pinned down in tests.
type FetcherConfig struct {
	BaseURL           string   `json:"base_url,omitempty" yaml:"base_url,omitempty" validate:"omitempty,url"`
	ResultsPerRequest int      `json:"results_per_request,omitempty" yaml:"results_per_request,omitempty" validate:"gte=1"`
	PagesPerQuery     int      `json:"pages_per_query,omitempty" yaml:"pages_per_query,omitempty" validate:"gte=1"`
	ResultsPerPage    int      `json:"results_per_page,omitempty" yaml:"results_per_page,omitempty" validate:"gte=1"`
	TimeoutSecs       int      `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"gte=1"`
	MaxRetries        int      `json:"max_retries,omitempty" yaml:"max_retries,omitempty" validate:"gte=0"`
	RetryStatusCodes  []int    `json:"retry_status_codes,omitempty" yaml:"retry_status_codes,omitempty"`
	Proxies           []string `json:"proxies,omitempty" yaml:"proxies,omitempty"`
	UserAgents        []string `json:"user_agents,omitempty" yaml:"user_agents,omitempty"`
	RawHTMLDir        string   `json:"raw_html_dir,omitempty" yaml:"raw_html_dir,omitempty"`
	QueriesFile       string   `json:"queries_file,omitempty" yaml:"queries_file,omitempty"`
	MaxQueries        int      `json:"max_queries,omitempty" yaml:"max_queries,omitempty" validate:"gte=0"`
	StartQuery        int      `json:"start_query,omitempty" yaml:"start_query,omitempty" validate:"gte=1"`

	// Randomized pacing, in seconds. Queries are fetched strictly
	// sequentially; the delays are what keeps the fetcher polite.
	PreRequestDelayMinSecs int `json:"pre_request_delay_min_secs,omitempty" yaml:"pre_request_delay_min_secs,omitempty" validate:"gte=0"`
	PreRequestDelayMaxSecs int `json:"pre_request_delay_max_secs,omitempty" yaml:"pre_request_delay_max_secs,omitempty" validate:"gte=0"`
	QueryDelayMinSecs      int `json:"query_delay_min_secs,omitempty" yaml:"query_delay_min_secs,omitempty" validate:"gte=0"`
	QueryDelayMaxSecs      int `json:"query_delay_max_secs,omitempty" yaml:"query_delay_max_secs,omitempty" validate:"gte=0"`
}

// NewDefaultFetcherConfig creates fetcher configuration with defaults
func NewDefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		BaseURL:           DefaultSearchBaseURL,
		ResultsPerRequest: DefaultResultsPerRequest,
		PagesPerQuery:     DefaultPagesPerQuery,
		ResultsPerPage:    DefaultResultsPerPage,
		TimeoutSecs:       DefaultFetchTimeoutSecs,
		MaxRetries:        DefaultFetchMaxRetries,
		RetryStatusCodes:  []int{429, 500, 502, 503, 504},
		UserAgents:        DefaultUserAgents(),
		RawHTMLDir:        DefaultRawHTMLDir,
		QueriesFile:       "data/queries/queries.txt",
		MaxQueries:        0, // 0 means all queries in the file
		StartQuery:        1,

		PreRequestDelayMinSecs: 1,
		PreRequestDelayMaxSecs: 5,
		QueryDelayMinSecs:      60,
		QueryDelayMaxSecs:      120,
	}
}

// DefaultUserAgents returns the default user-agent rotation pool:
// current Chrome, Firefox, Safari and Edge builds across platforms
func DefaultUserAgents() []string {
	return []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
		"Mozilla/5.0 (Windows NT 11.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:122.0) Gecko/20100101 Firefox/122.0",
		"Mozilla/5.0 (Windows NT 11.0; Win64; x64; rv:123.0) Gecko/20100101 Firefox/123.0",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:122.0) Gecko/20100101 Firefox/122.0",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/18.0 Safari/605.1.15",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_3) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.3 Safari/605.1.15",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36 Edg/122.0.0.0",
		"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
		"Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:123.0) Gecko/20100101 Firefox/123.0",
	}
}
