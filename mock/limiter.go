package mock

import (
	"context"

	"github.com/deeptective/deeptective"
)

var _ deeptective.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of deeptective.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
