package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/deeptective/deeptective"
)

// Ensure LoggingProvider implements deeptective.MysteryProvider.
var _ deeptective.MysteryProvider = (*LoggingProvider)(nil)

// LoggingProvider wraps a MysteryProvider with logging of every operation.
type LoggingProvider struct {
	next   deeptective.MysteryProvider
	logger *slog.Logger
}

// NewLoggingProvider creates a new LoggingProvider.
// The name is attached to every record to tell providers apart.
func NewLoggingProvider(next deeptective.MysteryProvider, name string, logger *slog.Logger) *LoggingProvider {
	return &LoggingProvider{next: next, logger: logger.With("provider", name)}
}

// SearchEvidence delegates to the wrapped provider and logs the search.
func (p *LoggingProvider) SearchEvidence(ctx context.Context, query string) (cases []*deeptective.EvidenceCase, err error) {
	defer func(begin time.Time) {
		p.logger.Info("search evidence",
			"query", query,
			"count", len(cases),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.SearchEvidence(ctx, query)
}

// CaseDetails delegates to the wrapped provider and logs the case lookup.
func (p *LoggingProvider) CaseDetails(ctx context.Context, id string) (c *deeptective.EvidenceCase, err error) {
	defer func(begin time.Time) {
		p.logger.Info("case details",
			"id", id,
			"found", c != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.CaseDetails(ctx, id)
}

// VerifySourceIntegrity delegates to the wrapped provider and logs the verification.
func (p *LoggingProvider) VerifySourceIntegrity(ctx context.Context, url string) (trusted bool, err error) {
	defer func(begin time.Time) {
		p.logger.Info("verify source",
			"url", url,
			"trusted", trusted,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.VerifySourceIntegrity(ctx, url)
}
