package mock

import "github.com/deeptective/deeptective"

var _ deeptective.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of deeptective.Cleaner.
type Cleaner struct {
	CleanFn func(html string) (string, error)
}

func (c *Cleaner) Clean(html string) (string, error) {
	return c.CleanFn(html)
}
