// Package trafilatura reads page metadata with go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/deeptective/deeptective"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements deeptective.MetadataExtractor at compile time.
var _ deeptective.MetadataExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to read title and description from HTML.
// It understands meta tags, OpenGraph and JSON+LD.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMetadata processes raw HTML and returns its metadata.
func (e *Extractor) ExtractMetadata(rawHTML string) (*deeptective.Metadata, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, deeptective.Errorf(deeptective.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &deeptective.Metadata{
		Title:       deeptective.NormalizeWhitespace(result.Metadata.Title),
		Description: deeptective.NormalizeWhitespace(result.Metadata.Description),
	}, nil
}
