package extractor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serprank/internal/models"
)

func writePage(t *testing.T, dir string, queryID, page int, html string) {
	t.Helper()
	path := filepath.Join(dir, models.RawHTMLFileName(queryID, page))
	require.NoError(t, os.WriteFile(path, []byte(html), 0644))
}

func TestDirectoryProcessor_Process(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, 1, 1, "<html><body>"+
		redirectLink("https://a.example/1")+
		redirectLink("https://b.example/2")+
		"</body></html>")
	writePage(t, dir, 1, 2, "<html><body>"+
		redirectLink("https://c.example/3")+
		"</body></html>")
	writePage(t, dir, 2, 1, "<html><body>"+
		redirectLink("https://d.example/4")+
		"</body></html>")

	processor := NewDirectoryProcessor(newTestExtractor(), dir, 3, 10, zerolog.Nop())

	results, err := processor.Process([]string{"first query", "second query"})
	require.NoError(t, err)
	require.Equal(t, 2, results.Len())

	urls, ok := results.Get("first query")
	require.True(t, ok)
	assert.Equal(t, []string{"https://a.example/1", "https://b.example/2", "https://c.example/3"}, urls)

	urls, ok = results.Get("second query")
	require.True(t, ok)
	assert.Equal(t, []string{"https://d.example/4"}, urls)
}

func TestDirectoryProcessor_Process_QueryWithoutPagesOmitted(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, 2, 1, "<html><body>"+redirectLink("https://a.example/1")+"</body></html>")

	processor := NewDirectoryProcessor(newTestExtractor(), dir, 3, 10, zerolog.Nop())

	results, err := processor.Process([]string{"no pages", "has pages"})
	require.NoError(t, err)
	assert.Equal(t, []string{"has pages"}, results.Queries())
}

func TestDirectoryProcessor_Process_TopKApplied(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, 1, 1, "<html><body>"+
		redirectLink("https://a.example/1")+
		redirectLink("https://b.example/2")+
		redirectLink("https://c.example/3")+
		"</body></html>")

	processor := NewDirectoryProcessor(newTestExtractor(), dir, 1, 2, zerolog.Nop())

	results, err := processor.Process([]string{"query"})
	require.NoError(t, err)

	urls, _ := results.Get("query")
	assert.Len(t, urls, 2)
}

func TestDirectoryProcessor_Process_EmptyQueryList(t *testing.T) {
	processor := NewDirectoryProcessor(newTestExtractor(), t.TempDir(), 3, 10, zerolog.Nop())

	results, err := processor.Process(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, results.Len())
}
