package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadQueries(t *testing.T) {
	path := writeTempFile(t, "queries.txt", "first query\nsecond query\n\nthird  query with  spaces\n")

	queries, err := LoadQueries(path, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"first query", "second query", "third  query with  spaces"}, queries)
}

func TestLoadQueries_MaxQueriesLimit(t *testing.T) {
	path := writeTempFile(t, "queries.txt", "one\ntwo\nthree\nfour\n")

	queries, err := LoadQueries(path, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, queries)
}

func TestLoadQueries_MissingFile(t *testing.T) {
	_, err := LoadQueries(filepath.Join(t.TempDir(), "missing.txt"), 0)
	assert.Error(t, err)
}

func TestSaveAndLoadResultSet(t *testing.T) {
	rs := NewResultSet()
	rs.Add("beta", []string{"https://b.example/1"})
	rs.Add("alpha", []string{"https://a.example/1", "https://a.example/2"})

	path := filepath.Join(t.TempDir(), "nested", "results.json")
	require.NoError(t, SaveResultSet(rs, path))

	loaded, err := LoadResultSet(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"beta", "alpha"}, loaded.Queries())

	urls, ok := loaded.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, []string{"https://a.example/1", "https://a.example/2"}, urls)
}

func TestLoadResultSet_MissingFile(t *testing.T) {
	_, err := LoadResultSet(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestRawHTMLFileName(t *testing.T) {
	assert.Equal(t, "yahoo-0001-p1.html", RawHTMLFileName(1, 1))
	assert.Equal(t, "yahoo-0042-p3.html", RawHTMLFileName(42, 3))
}
