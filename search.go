package deeptective

import "context"

// MaxCandidateLinks is the number of search results followed per query.
const MaxCandidateLinks = 3

// DefaultSearchURL is the static-HTML search endpoint queried by default.
const DefaultSearchURL = "https://lite.duckduckgo.com/lite/"

// DefaultUserAgent identifies the client to the search endpoint.
const DefaultUserAgent = "Mozilla/5.0 (compatible; Deeptective/1.0)"

// SearchResolver turns a query into candidate source links.
type SearchResolver interface {
	// Resolve issues the query to a search endpoint and returns up to
	// MaxCandidateLinks URLs in the order they appear in the results.
	// Returns an error if the request or the parse fails.
	Resolve(ctx context.Context, query string) ([]string, error)
}
