package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/deeptective/deeptective"
)

// Ensure MetadataExtractor implements deeptective.MetadataExtractor at compile time.
var _ deeptective.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor reads title and description from head elements.
// OpenGraph properties take precedence over the title tag and meta description.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// ExtractMetadata parses the HTML and returns its metadata.
func (e *MetadataExtractor) ExtractMetadata(html string) (*deeptective.Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, deeptective.Errorf(deeptective.EINVALID, "failed to parse HTML: %v", err)
	}

	return &deeptective.Metadata{
		Title: firstNonEmpty(
			metaContent(doc, `meta[property="og:title"]`),
			doc.Find("title").First().Text(),
		),
		Description: firstNonEmpty(
			metaContent(doc, `meta[property="og:description"]`),
			metaContent(doc, `meta[name="description"]`),
		),
	}, nil
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return content
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = deeptective.NormalizeWhitespace(v); v != "" {
			return v
		}
	}
	return ""
}
