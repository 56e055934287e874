package search

import (
	"fmt"
	"strings"
)

// NoResultsMarker is returned by FormatResults when a syntactically
// successful search produced nothing usable.
const NoResultsMarker = "No search results found."

// FormatResults renders the top results as a numbered human-readable
// block for model consumption.
func FormatResults(resp *Response) string {
	if resp == nil || len(resp.Results) == 0 {
		return NoResultsMarker
	}

	results := resp.Results
	if len(results) > DefaultSearchCount {
		results = results[:DefaultSearchCount]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Web Search Results for %q:\n", resp.Query)
	for i, result := range results {
		fmt.Fprintf(&b, "\n%d. %s\n   URL: %s\n   %s\n", i+1, result.Title, result.URL, result.Description)
		if result.Published != "" {
			fmt.Fprintf(&b, "   Published: %s\n", result.Published)
		}
	}
	return b.String()
}
