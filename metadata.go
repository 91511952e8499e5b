package deeptective

// Metadata holds descriptive information about an HTML page.
type Metadata struct {
	// Title is the page title from metadata (title tag, og:title, JSON+LD).
	Title string

	// Description is a short summary of the page, if one is declared.
	Description string
}

// MetadataExtractor reads page metadata from raw HTML.
type MetadataExtractor interface {
	// ExtractMetadata parses the HTML and returns its metadata.
	// Missing fields are left empty.
	ExtractMetadata(html string) (*Metadata, error)
}
