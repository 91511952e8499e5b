package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/deeptective/deeptective"
)

// Ensure Cleaner implements deeptective.Cleaner at compile time.
var _ deeptective.Cleaner = (*Cleaner)(nil)

// Cleaner strips boilerplate subtrees from HTML and returns the body text.
type Cleaner struct {
	selector string
}

// NewCleaner creates a Cleaner removing deeptective.BoilerplateSelector.
func NewCleaner() *Cleaner {
	return &Cleaner{selector: deeptective.BoilerplateSelector}
}

// Clean removes script, style, nav, footer, header, aside and iframe
// elements with their subtrees, then returns the normalized body text.
func (c *Cleaner) Clean(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", deeptective.Errorf(deeptective.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(c.selector).Remove()

	return deeptective.NormalizeWhitespace(doc.Find("body").Text()), nil
}
