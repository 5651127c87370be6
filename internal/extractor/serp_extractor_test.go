package extractor

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serprank/internal/urlhandler"
)

func newTestExtractor() *SERPExtractor {
	return NewSERPExtractor(
		urlhandler.NewOrganicFilter(urlhandler.DefaultOrganicFilterConfig()),
		urlhandler.NewURLNormalizer(urlhandler.DefaultNormalizationConfig()),
		zerolog.Nop(),
	)
}

// redirectLink builds a SERP anchor that routes through the redirect
// host with dest percent-encoded in the RU parameter
func redirectLink(dest string) string {
	encoded := ""
	for _, c := range dest {
		switch c {
		case ':':
			encoded += "%3a"
		case '/':
			encoded += "%2f"
		default:
			encoded += string(c)
		}
	}
	return fmt.Sprintf(`<a href="https://r.search.yahoo.com/_ylt=Awr/RU=%s/RK=2/RS=x">link</a>`, encoded)
}

func TestSERPExtractor_ExtractFromHTML(t *testing.T) {
	html := []byte(`<html><body>
		<ol>
			<li>` + redirectLink("https://example.com/first") + `</li>
			<li>` + redirectLink("https://example.org/second") + `</li>
		</ol>
	</body></html>`)

	urls, err := newTestExtractor().ExtractFromHTML(html)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/first", "https://example.org/second"}, urls)
}

func TestSERPExtractor_KeepsDecodedFormNotNormalized(t *testing.T) {
	// The stored URL is the decoded original; normalization is only
	// used for duplicate detection
	html := []byte("<html><body>" + redirectLink("http://www.example.com/Page/") + "</body></html>")

	urls, err := newTestExtractor().ExtractFromHTML(html)
	require.NoError(t, err)
	require.Len(t, urls, 1)
	assert.Equal(t, "http://www.example.com/Page/", urls[0])
}

func TestSERPExtractor_DeduplicatesByNormalizedForm(t *testing.T) {
	html := []byte("<html><body>" +
		redirectLink("https://example.com/article") +
		redirectLink("http://www.example.com/article/") +
		redirectLink("https://example.com/other") +
		"</body></html>")

	urls, err := newTestExtractor().ExtractFromHTML(html)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/article", "https://example.com/other"}, urls)
}

func TestSERPExtractor_FiltersNonOrganicDestinations(t *testing.T) {
	html := []byte("<html><body>" +
		redirectLink("https://news.yahoo.com/internal") +
		redirectLink("https://example.com/organic") +
		`<a href="https://example.net/direct">not a redirect link</a>` +
		"</body></html>")

	urls, err := newTestExtractor().ExtractFromHTML(html)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/organic"}, urls)
}

func TestSERPExtractor_EmptyDocument(t *testing.T) {
	urls, err := newTestExtractor().ExtractFromHTML([]byte("<html><body></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestSERPExtractor_ExtractTopK(t *testing.T) {
	page1 := []byte("<html><body>" +
		redirectLink("https://a.example/1") +
		redirectLink("https://b.example/2") +
		"</body></html>")
	page2 := []byte("<html><body>" +
		redirectLink("http://www.a.example/1") + // duplicate of page 1
		redirectLink("https://c.example/3") +
		redirectLink("https://d.example/4") +
		"</body></html>")

	urls, err := newTestExtractor().ExtractTopK([][]byte{page1, page2}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example/1", "https://b.example/2", "https://c.example/3"}, urls)
}

func TestSERPExtractor_ExtractTopK_FewerThanK(t *testing.T) {
	page := []byte("<html><body>" + redirectLink("https://a.example/1") + "</body></html>")

	urls, err := newTestExtractor().ExtractTopK([][]byte{page}, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example/1"}, urls)
}
