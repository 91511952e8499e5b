package scrape

import (
	"context"
	"strings"
	"sync"

	"github.com/deeptective/deeptective"
	"golang.org/x/time/rate"
)

var _ deeptective.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out page requests per host with one token bucket per
// host and no bursting. Hosts are compared case-insensitively and a leading
// "www." is ignored, so www.example.com and example.com share a bucket.
type DomainLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
}

// NewDomainLimiter returns a limiter allowing rps requests per second per host.
// A non-positive rps never blocks.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   limit,
	}
}

// Wait blocks until a request to host is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	return d.bucket(host).Wait(ctx)
}

func (d *DomainLimiter) bucket(host string) *rate.Limiter {
	key := strings.TrimPrefix(strings.ToLower(host), "www.")

	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buckets[key]
	if !ok {
		b = rate.NewLimiter(d.limit, 1)
		d.buckets[key] = b
	}
	return b
}
