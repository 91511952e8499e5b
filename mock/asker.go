package mock

import (
	"context"

	"github.com/deeptective/deeptective"
)

var _ deeptective.Asker = (*Asker)(nil)

// Asker is a mock implementation of deeptective.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string, sources []string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, question string, sources []string) (string, error) {
	return a.AskFn(ctx, question, sources)
}
