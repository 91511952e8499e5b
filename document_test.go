package deeptective_test

import (
	"strings"
	"testing"

	"github.com/deeptective/deeptective"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	t.Parallel()

	t.Run("keeps text longer than the minimum", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("x", deeptective.MinContentLength+1)

		doc := deeptective.NewDocument("https://example.com/a", "A", text)

		require.NotNil(t, doc)
		assert.Equal(t, "https://example.com/a", doc.SourceURL)
		assert.Equal(t, "A", doc.Title)
		assert.Equal(t, text, doc.Content)
	})

	t.Run("discards text at the minimum length", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("x", deeptective.MinContentLength)

		assert.Nil(t, deeptective.NewDocument("https://example.com/a", "", text))
	})

	t.Run("measures length after normalizing whitespace", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("x ", 40) + strings.Repeat("\n", 200)

		assert.Nil(t, deeptective.NewDocument("https://example.com/a", "", text))
	})

	t.Run("truncates long text to the maximum plus ellipsis", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("y", 3000)

		doc := deeptective.NewDocument("https://example.com/a", "", text)

		require.NotNil(t, doc)
		assert.Equal(t, strings.Repeat("y", 2000)+"...", doc.Content)
	})
}

func TestDocument_Format(t *testing.T) {
	t.Parallel()

	doc := &deeptective.Document{
		SourceURL: "https://example.com/nessie",
		Title:     "ignored",
		Content:   "The monster was seen again.",
	}

	assert.Equal(t, "FUENTE: https://example.com/nessie\nCONTENIDO: The monster was seen again.", doc.Format())
}

func TestFormatDocuments(t *testing.T) {
	t.Parallel()

	t.Run("returns empty slice for no documents", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, deeptective.FormatDocuments(nil))
	})

	t.Run("preserves document order", func(t *testing.T) {
		t.Parallel()

		docs := []*deeptective.Document{
			{SourceURL: "https://a.example", Content: "first"},
			{SourceURL: "https://b.example", Content: "second"},
		}

		got := deeptective.FormatDocuments(docs)

		assert.Equal(t, []string{
			"FUENTE: https://a.example\nCONTENIDO: first",
			"FUENTE: https://b.example\nCONTENIDO: second",
		}, got)
	})
}
