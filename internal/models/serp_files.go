package models

import "fmt"

// RawHTMLFileName returns the on-disk name for a stored SERP page.
// Shared between the fetcher (writing) and the extractor (reading);
// query IDs are 1-based.
func RawHTMLFileName(queryID, page int) string {
	return fmt.Sprintf("yahoo-%04d-p%d.html", queryID, page)
}
