// Package goquery implements HTML parsing for deeptective using goquery:
// search result link extraction, boilerplate removal and page metadata.
package goquery

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/deeptective/deeptective"
)

// DefaultResultSelector matches result anchors on DuckDuckGo Lite pages.
const DefaultResultSelector = ".result-link"

// Ensure SearchResolver implements deeptective.SearchResolver at compile time.
var _ deeptective.SearchResolver = (*SearchResolver)(nil)

// SearchResolver queries a static-HTML search endpoint and extracts result links.
type SearchResolver struct {
	fetcher  deeptective.Fetcher
	endpoint string
	selector string
	limit    int
}

// ResolverOption configures a SearchResolver.
type ResolverOption func(*SearchResolver)

// WithEndpoint sets the search endpoint. Existing query parameters are kept.
// Defaults to deeptective.DefaultSearchURL.
func WithEndpoint(endpoint string) ResolverOption {
	return func(r *SearchResolver) {
		r.endpoint = endpoint
	}
}

// WithResultSelector sets the CSS selector matching result anchors.
// Defaults to DefaultResultSelector.
func WithResultSelector(selector string) ResolverOption {
	return func(r *SearchResolver) {
		r.selector = selector
	}
}

// WithLimit sets how many result anchors are inspected.
// Defaults to deeptective.MaxCandidateLinks.
func WithLimit(n int) ResolverOption {
	return func(r *SearchResolver) {
		r.limit = n
	}
}

// NewSearchResolver creates a SearchResolver that issues requests through fetcher.
// The fetcher is expected to send the identifying user agent.
func NewSearchResolver(fetcher deeptective.Fetcher, opts ...ResolverOption) *SearchResolver {
	r := &SearchResolver{
		fetcher:  fetcher,
		endpoint: deeptective.DefaultSearchURL,
		selector: DefaultResultSelector,
		limit:    deeptective.MaxCandidateLinks,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve issues the query and returns up to limit result links in page order.
func (r *SearchResolver) Resolve(ctx context.Context, query string) ([]string, error) {
	searchURL, err := BuildSearchURL(r.endpoint, query)
	if err != nil {
		return nil, err
	}

	html, err := r.fetcher.Fetch(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}

	return ExtractResultLinks(html, searchURL, r.selector, r.limit)
}

// BuildSearchURL sets the q parameter of endpoint to the URL-encoded query.
func BuildSearchURL(endpoint, query string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", deeptective.Errorf(deeptective.EINVALID, "invalid search endpoint: %v", err)
	}
	q := u.Query()
	q.Set("q", query)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ExtractResultLinks returns the hrefs of the first limit elements matching
// selector, in document order. Matches without an href are skipped but still
// count toward the limit; matches past the limit are never inspected.
// Relative hrefs are resolved against baseURL.
func ExtractResultLinks(html, baseURL, selector string, limit int) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, deeptective.Errorf(deeptective.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, deeptective.Errorf(deeptective.EINVALID, "failed to parse HTML: %v", err)
	}

	if limit <= 0 {
		return nil, nil
	}

	links := make([]string, 0, limit)
	doc.Find(selector).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= limit {
			return false
		}
		href, exists := sel.Attr("href")
		href = strings.TrimSpace(href)
		if exists && href != "" {
			links = append(links, resolveURL(base, href))
		}
		return i+1 < limit
	})

	return links, nil
}

// resolveURL resolves a relative URL against a base URL.
// Returns href unchanged if it cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
