package deeptective_test

import (
	"testing"
	"time"

	"github.com/deeptective/deeptective"
	"github.com/stretchr/testify/assert"
)

func validCase() *deeptective.EvidenceCase {
	return &deeptective.EvidenceCase{
		ID:           "web_1",
		Title:        "Sighting report",
		DepthLevel:   deeptective.DepthSurface,
		SourceURL:    "https://example.com/sighting",
		MediaType:    deeptective.MediaTypeText,
		DiscoveredAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestEvidenceCase_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete case", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, validCase().Validate())
	})

	t.Run("requires ID", func(t *testing.T) {
		t.Parallel()

		c := validCase()
		c.ID = ""

		err := c.Validate()

		assert.Equal(t, deeptective.EINVALID, deeptective.ErrorCode(err))
		assert.Equal(t, "case ID required", deeptective.ErrorMessage(err))
	})

	t.Run("requires source URL", func(t *testing.T) {
		t.Parallel()

		c := validCase()
		c.SourceURL = ""

		assert.Equal(t, deeptective.EINVALID, deeptective.ErrorCode(c.Validate()))
	})

	t.Run("rejects depth outside 1..3", func(t *testing.T) {
		t.Parallel()

		for _, depth := range []deeptective.DepthLevel{0, 4} {
			c := validCase()
			c.DepthLevel = depth

			assert.Equal(t, deeptective.EINVALID, deeptective.ErrorCode(c.Validate()))
		}
	})

	t.Run("rejects unknown media type", func(t *testing.T) {
		t.Parallel()

		c := validCase()
		c.MediaType = "hologram"

		err := c.Validate()

		assert.Equal(t, deeptective.EINVALID, deeptective.ErrorCode(err))
		assert.Contains(t, deeptective.ErrorMessage(err), "hologram")
	})
}

func TestMediaType_Valid(t *testing.T) {
	t.Parallel()

	for _, m := range []deeptective.MediaType{
		deeptective.MediaTypeAudio,
		deeptective.MediaTypeVideo,
		deeptective.MediaTypeText,
		deeptective.MediaTypeImage,
	} {
		assert.True(t, m.Valid(), string(m))
	}
	assert.False(t, deeptective.MediaType("").Valid())
}
