package urlhandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComparisonKey_SchemeAndWWWCollapse(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{"http vs https", "http://example.com/page", "https://example.com/page"},
		{"www vs bare host", "https://www.example.com/page", "https://example.com/page"},
		{"uppercase www prefix", "https://WWW.example.com/page", "https://example.com/page"},
		{"trailing slash", "https://example.com/page/", "https://example.com/page"},
		{"all three at once", "http://www.example.com/page/", "https://example.com/page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, ComparisonKey(tt.b), ComparisonKey(tt.a))
		})
	}
}

func TestComparisonKey_Values(t *testing.T) {
	assert.Equal(t, "example.com/page", ComparisonKey("http://www.example.com/page/"))
	assert.Equal(t, "example.com/a/b?q=1", ComparisonKey("https://example.com/a/b?q=1"))
	assert.Equal(t, "example.com/a#sec", ComparisonKey("https://example.com/a#sec"))
	assert.Equal(t, "example.com", ComparisonKey("https://example.com"))
}

func TestComparisonKey_CaseIsSignificant(t *testing.T) {
	// Only the scheme, www prefix, and trailing slash are folded; path
	// case still distinguishes URLs
	assert.NotEqual(t, ComparisonKey("https://example.com/Page"), ComparisonKey("https://example.com/page"))
}

func TestComparisonKey_QueryAndFragmentAreSignificant(t *testing.T) {
	assert.NotEqual(t, ComparisonKey("https://example.com/a?q=1"), ComparisonKey("https://example.com/a?q=2"))
	assert.NotEqual(t, ComparisonKey("https://example.com/a#x"), ComparisonKey("https://example.com/a"))
}

func TestComparisonKey_SchemelessInput(t *testing.T) {
	// A schemeless URL parses with an empty host and the authority in
	// the path, which still lines up with the keyed form
	assert.Equal(t, ComparisonKey("https://example.com/page"), ComparisonKey("example.com/page"))
}

func TestComparisonKey_EmptyAndWhitespace(t *testing.T) {
	assert.Equal(t, "", ComparisonKey(""))
	assert.Equal(t, "", ComparisonKey("   "))
	assert.Equal(t, "example.com/page", ComparisonKey("  https://example.com/page  "))
}

func TestComparisonKey_UnparsableURLReturnedTrimmed(t *testing.T) {
	malformed := "http://[not-a-host/page"
	assert.Equal(t, malformed, ComparisonKey("  "+malformed+"  "))
	// Two identically malformed strings still match each other
	assert.Equal(t, ComparisonKey(malformed), ComparisonKey(malformed))
}

func TestComparisonKey_RootSlashPreserved(t *testing.T) {
	// The bare root path is not stripped, so "example.com/" and
	// "example.com" stay distinct
	assert.Equal(t, "example.com/", ComparisonKey("https://example.com/"))
	assert.Equal(t, "example.com", ComparisonKey("https://example.com"))
}
