package mock

import (
	"context"

	"github.com/deeptective/deeptective"
)

var _ deeptective.SearchResolver = (*SearchResolver)(nil)

// SearchResolver is a mock implementation of deeptective.SearchResolver.
type SearchResolver struct {
	ResolveFn func(ctx context.Context, query string) ([]string, error)
}

func (r *SearchResolver) Resolve(ctx context.Context, query string) ([]string, error) {
	return r.ResolveFn(ctx, query)
}
