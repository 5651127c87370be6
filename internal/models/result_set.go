package models

import (
	"bytes"
	"encoding/json"

	"serprank/internal/errorwrapper"
)

// ResultSet holds ranked result URLs per query, preserving the order in
// which queries were added. Comparison iterates the reference set's query
// order, so plain Go maps (randomized iteration) are not enough here.
type ResultSet struct {
	queries []string
	results map[string][]string
}

// NewResultSet creates an empty ResultSet
func NewResultSet() *ResultSet {
	return &ResultSet{
		results: make(map[string][]string),
	}
}

// Add stores the ranked URLs for a query. Re-adding an existing query
// replaces its URLs without changing its position.
func (rs *ResultSet) Add(query string, urls []string) {
	if rs.results == nil {
		rs.results = make(map[string][]string)
	}
	if _, exists := rs.results[query]; !exists {
		rs.queries = append(rs.queries, query)
	}
	rs.results[query] = urls
}

// Get returns the ranked URLs for a query
func (rs *ResultSet) Get(query string) ([]string, bool) {
	urls, ok := rs.results[query]
	return urls, ok
}

// Has reports whether the query is present
func (rs *ResultSet) Has(query string) bool {
	_, ok := rs.results[query]
	return ok
}

// Queries returns the queries in insertion order
func (rs *ResultSet) Queries() []string {
	out := make([]string, len(rs.queries))
	copy(out, rs.queries)
	return out
}

// Len returns the number of queries
func (rs *ResultSet) Len() int {
	return len(rs.queries)
}

// MarshalJSON encodes the set as a JSON object in insertion order
func (rs *ResultSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, query := range rs.queries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(query)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		urls := rs.results[query]
		if urls == nil {
			urls = []string{}
		}
		value, err := json.Marshal(urls)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of query -> URL array, preserving
// the key order of the document
func (rs *ResultSet) UnmarshalJSON(data []byte) error {
	rs.queries = nil
	rs.results = make(map[string][]string)

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return errorwrapper.WrapError(err, "failed to read result set")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errorwrapper.NewError("result set must be a JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return errorwrapper.WrapError(err, "failed to read query key")
		}
		query, ok := keyTok.(string)
		if !ok {
			return errorwrapper.NewError("query key must be a string, got %v", keyTok)
		}

		var urls []string
		if err := dec.Decode(&urls); err != nil {
			return errorwrapper.WrapError(err, "failed to decode URL list for query '"+query+"'")
		}
		rs.Add(query, urls)
	}

	// Consume the closing brace
	if _, err := dec.Token(); err != nil {
		return errorwrapper.WrapError(err, "failed to read end of result set")
	}

	return nil
}
