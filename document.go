package deeptective

// Document is the cleaned text extracted from one candidate link.
type Document struct {
	SourceURL string `json:"sourceUrl"`
	Title     string `json:"title,omitempty"`
	Content   string `json:"content"`
}

// NewDocument normalizes and truncates text extracted from sourceURL.
// Returns nil if the resulting content does not exceed MinContentLength.
func NewDocument(sourceURL, title, text string) *Document {
	content := Truncate(NormalizeWhitespace(text), MaxContentLength)
	if RuneCount(content) <= MinContentLength {
		return nil
	}
	return &Document{
		SourceURL: sourceURL,
		Title:     title,
		Content:   content,
	}
}

// Format renders the document as a labelled prompt snippet.
func (d *Document) Format() string {
	return "FUENTE: " + d.SourceURL + "\nCONTENIDO: " + d.Content
}

// FormatDocuments formats documents in order for LLM context.
func FormatDocuments(docs []*Document) []string {
	results := make([]string, 0, len(docs))
	for _, doc := range docs {
		results = append(results, doc.Format())
	}
	return results
}
