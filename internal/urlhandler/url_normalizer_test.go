package urlhandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLNormalizer_Normalize(t *testing.T) {
	normalizer := NewURLNormalizer(DefaultNormalizationConfig())

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases everything", "HTTP://WWW.Example.COM/Path", "https://example.com/path"},
		{"forces https", "http://example.com/page", "https://example.com/page"},
		{"strips www", "https://www.example.com/page", "https://example.com/page"},
		{"strips trailing slash", "https://example.com/page/", "https://example.com/page"},
		{"keeps root slash", "https://example.com/", "https://example.com/"},
		{"drops fragment", "https://example.com/page#section", "https://example.com/page"},
		{"strips utm parameters", "https://example.com/page?utm_source=feed&q=1", "https://example.com/page?q=1"},
		{"strips gclid", "https://example.com/page?gclid=abc123", "https://example.com/page"},
		{"keeps other parameters", "https://example.com/page?id=42", "https://example.com/page?id=42"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizer.Normalize(tt.input))
		})
	}
}

func TestURLNormalizer_StripTrackingParamsDisabled(t *testing.T) {
	normalizer := NewURLNormalizer(NormalizationConfig{StripTrackingParams: false})

	assert.Equal(t, "https://example.com/page?utm_source=feed", normalizer.Normalize("https://example.com/page?utm_source=feed"))
}

func TestURLNormalizer_UnparsableURLReturnedUnchanged(t *testing.T) {
	normalizer := NewURLNormalizer(DefaultNormalizationConfig())

	malformed := "http://[not-a-host/page"
	assert.Equal(t, malformed, normalizer.Normalize(malformed))
}

func TestURLNormalizer_DistinctFromComparisonKey(t *testing.T) {
	// The dedup normalizer keeps the scheme and lowercases the path;
	// the comparison key drops the scheme and preserves case. They are
	// different policies for different jobs.
	normalizer := NewURLNormalizer(DefaultNormalizationConfig())

	input := "http://www.example.com/Page"
	assert.Equal(t, "https://example.com/page", normalizer.Normalize(input))
	assert.Equal(t, "example.com/Page", ComparisonKey(input))
}

func TestURLNormalizer_CollapsesSERPDuplicates(t *testing.T) {
	normalizer := NewURLNormalizer(DefaultNormalizationConfig())

	variants := []string{
		"https://example.com/article",
		"http://example.com/article",
		"https://www.example.com/article/",
		"https://example.com/article?utm_campaign=spring",
	}

	first := normalizer.Normalize(variants[0])
	for _, v := range variants[1:] {
		assert.Equal(t, first, normalizer.Normalize(v), "variant %q should collapse", v)
	}
}
