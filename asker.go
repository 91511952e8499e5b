package deeptective

import "context"

// Asker answers questions using extracted sources as context.
type Asker interface {
	// Ask answers the question based only on the given formatted sources.
	// Returns ENOTFOUND if there are no sources.
	Ask(ctx context.Context, question string, sources []string) (string, error)
}
