package models

import (
	"encoding/json"
	"os"
	"path/filepath"

	"serprank/internal/errorwrapper"
)

// LoadResultSet reads a ResultSet from a JSON file
func LoadResultSet(path string) (*ResultSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read result file '"+path+"'")
	}

	rs := NewResultSet()
	if err := json.Unmarshal(data, rs); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse result file '"+path+"'")
	}

	return rs, nil
}

// SaveResultSet writes a ResultSet to a JSON file, creating parent
// directories as needed
func SaveResultSet(rs *ResultSet, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errorwrapper.WrapError(err, "failed to create output directory for '"+path+"'")
	}

	data, err := json.MarshalIndent(rs, "", "  ")
	if err != nil {
		return errorwrapper.WrapError(err, "failed to encode result set")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errorwrapper.WrapError(err, "failed to write result file '"+path+"'")
	}

	return nil
}
