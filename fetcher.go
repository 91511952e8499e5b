package deeptective

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations only handle static HTML; no JavaScript is executed.
type Fetcher interface {
	// Fetch performs a GET request for the URL and returns the decoded body.
	// Non-2xx responses are reported as errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
