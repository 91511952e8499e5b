// Package scrape orchestrates evidence gathering: it resolves candidate
// links for a query, extracts clean text from each page and adapts the
// results into evidence cases.
package scrape

import (
	"context"
	"io"
	"log/slog"
	"net/url"

	"github.com/deeptective/deeptective"
	"golang.org/x/sync/errgroup"
)

// Pipeline runs search resolution followed by per-link content extraction.
// Failures never propagate: a failed search yields no results and a failed
// link contributes nothing while the remaining links are still processed.
type Pipeline struct {
	Resolver deeptective.SearchResolver
	Fetcher  deeptective.Fetcher
	Cleaner  deeptective.Cleaner

	// Metadata fills Document.Title when set. Failures leave the title empty.
	Metadata deeptective.MetadataExtractor

	// Limiter throttles page requests per host when set.
	Limiter deeptective.DomainLimiter

	// Logger receives progress and failure records. Defaults to discarding.
	Logger *slog.Logger

	// Concurrency bounds parallel page extraction. Values below 2 process
	// links strictly one after another.
	Concurrency int
}

// Run returns the formatted sources for the query, in search result order.
// It always succeeds; the result holds between zero and
// deeptective.MaxCandidateLinks entries.
func (p *Pipeline) Run(ctx context.Context, query string) []string {
	return deeptective.FormatDocuments(p.Documents(ctx, query))
}

// Documents is like Run but returns the extracted documents.
func (p *Pipeline) Documents(ctx context.Context, query string) []*deeptective.Document {
	logger := p.logger()

	logger.Info("search started", "query", query)
	links, err := p.Resolver.Resolve(ctx, query)
	if err != nil {
		logger.Error("search failed", "query", query, "err", err)
		return []*deeptective.Document{}
	}
	if len(links) > deeptective.MaxCandidateLinks {
		links = links[:deeptective.MaxCandidateLinks]
	}

	// Results are stored by link index so output order never depends on
	// completion order.
	results := make([]*deeptective.Document, len(links))

	if p.Concurrency < 2 {
		for i, link := range links {
			if ctx.Err() != nil {
				break
			}
			results[i] = p.extract(ctx, logger, link)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(p.Concurrency)
		for i, link := range links {
			g.Go(func() error {
				if ctx.Err() != nil {
					return nil
				}
				results[i] = p.extract(ctx, logger, link)
				return nil
			})
		}
		_ = g.Wait()
	}

	docs := make([]*deeptective.Document, 0, len(results))
	for _, doc := range results {
		if doc != nil {
			docs = append(docs, doc)
		}
	}
	return docs
}

// extract fetches and cleans a single link.
// Returns nil if the link failed or its text was too short.
func (p *Pipeline) extract(ctx context.Context, logger *slog.Logger, link string) *deeptective.Document {
	logger.Info("extracting source", "url", link)

	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx, hostname(link)); err != nil {
			logger.Warn("source failed", "url", link, "err", err)
			return nil
		}
	}

	html, err := p.Fetcher.Fetch(ctx, link)
	if err != nil {
		logger.Warn("source failed", "url", link, "err", err)
		return nil
	}

	text, err := p.Cleaner.Clean(html)
	if err != nil {
		logger.Warn("source failed", "url", link, "err", err)
		return nil
	}

	doc := deeptective.NewDocument(link, "", text)
	if doc == nil {
		logger.Debug("source discarded", "url", link, "chars", deeptective.RuneCount(text))
		return nil
	}

	if p.Metadata != nil {
		meta, err := p.Metadata.ExtractMetadata(html)
		if err != nil {
			logger.Debug("metadata unavailable", "url", link, "err", err)
		} else if meta != nil {
			doc.Title = meta.Title
		}
	}

	return doc
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// hostname returns the host of rawURL, or an empty string if it cannot be parsed.
func hostname(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
