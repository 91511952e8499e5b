// Package readability reads page metadata with go-readability.
package readability

import (
	"strings"

	"github.com/deeptective/deeptective"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements deeptective.MetadataExtractor at compile time.
var _ deeptective.MetadataExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to read title and excerpt from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMetadata processes raw HTML and returns the article title and excerpt.
func (e *Extractor) ExtractMetadata(rawHTML string) (*deeptective.Metadata, error) {
	if rawHTML == "" {
		return nil, deeptective.Errorf(deeptective.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &deeptective.Metadata{
		Title:       deeptective.NormalizeWhitespace(article.Title),
		Description: deeptective.NormalizeWhitespace(article.Excerpt),
	}, nil
}
