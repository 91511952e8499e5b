package mock

import "github.com/deeptective/deeptective"

var _ deeptective.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of deeptective.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html string) (*deeptective.Metadata, error)
}

func (e *MetadataExtractor) ExtractMetadata(html string) (*deeptective.Metadata, error) {
	return e.ExtractMetadataFn(html)
}
