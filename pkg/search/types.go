package search

// Request represents a normalized web search request.
type Request struct {
	Query string
	Count int
}

// Result is a normalized search result.
type Result struct {
	Title       string
	URL         string
	Description string
	Published   string
	SiteName    string
}

// Response is a normalized search response.
type Response struct {
	Query     string
	Provider  string
	Count     int
	TookMs    int64
	Results   []Result
	NoResults bool
}

// CandidateURLs returns the result URLs in relevance order, skipping
// entries without one. URL-count limiting happens downstream in the
// fetch router, not here.
func (r *Response) CandidateURLs() []string {
	if r == nil {
		return nil
	}
	urls := make([]string, 0, len(r.Results))
	for _, result := range r.Results {
		if result.URL != "" {
			urls = append(urls, result.URL)
		}
	}
	return urls
}
