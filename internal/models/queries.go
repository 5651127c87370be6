package models

import (
	"bufio"
	"os"

	"serprank/internal/errorwrapper"
)

// LoadQueries reads query texts from a file, one per line. Only the
// trailing newline is stripped; interior whitespace is part of the
// query. Blank lines are skipped. A maxQueries of 0 means no limit.
func LoadQueries(path string, maxQueries int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to open queries file '"+path+"'")
	}
	defer file.Close()

	var queries []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		query := scanner.Text()
		if query == "" {
			continue
		}
		queries = append(queries, query)
		if maxQueries > 0 && len(queries) >= maxQueries {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read queries file '"+path+"'")
	}

	return queries, nil
}
