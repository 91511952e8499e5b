package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/deeptective/deeptective"
)

// Ensure LoggingSearchResolver implements deeptective.SearchResolver.
var _ deeptective.SearchResolver = (*LoggingSearchResolver)(nil)

// LoggingSearchResolver wraps a SearchResolver with logging.
type LoggingSearchResolver struct {
	next   deeptective.SearchResolver
	logger *slog.Logger
}

// NewLoggingSearchResolver creates a new LoggingSearchResolver.
func NewLoggingSearchResolver(next deeptective.SearchResolver, logger *slog.Logger) *LoggingSearchResolver {
	return &LoggingSearchResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the operation.
func (r *LoggingSearchResolver) Resolve(ctx context.Context, query string) (links []string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("search resolution",
			"query", query,
			"count", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Resolve(ctx, query)
}
