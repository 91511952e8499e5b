package deeptective

import (
	"context"
	"time"
)

// MediaType identifies the kind of material a piece of evidence is.
type MediaType string

// Supported media types.
const (
	MediaTypeAudio MediaType = "audio"
	MediaTypeVideo MediaType = "video"
	MediaTypeText  MediaType = "text"
	MediaTypeImage MediaType = "image"
)

// Valid returns true if the media type is one of the supported values.
func (m MediaType) Valid() bool {
	switch m {
	case MediaTypeAudio, MediaTypeVideo, MediaTypeText, MediaTypeImage:
		return true
	}
	return false
}

// DepthLevel describes how far from the surface web a source sits.
type DepthLevel int

// Depth levels, from the open web down to hidden services.
const (
	DepthSurface DepthLevel = 1
	DepthForum   DepthLevel = 2
	DepthDeep    DepthLevel = 3
)

// Valid returns true if the depth is within 1..3.
func (d DepthLevel) Valid() bool {
	return d >= DepthSurface && d <= DepthDeep
}

// EvidenceCase is a single piece of evidence found for a query.
type EvidenceCase struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	DepthLevel   DepthLevel `json:"depthLevel"`
	SourceURL    string     `json:"sourceUrl"`
	MediaType    MediaType  `json:"mediaType"`
	DiscoveredAt time.Time  `json:"discoveredAt"`
}

// Validate returns an error if the case contains invalid fields.
func (c *EvidenceCase) Validate() error {
	if c.ID == "" {
		return Errorf(EINVALID, "case ID required")
	}
	if c.SourceURL == "" {
		return Errorf(EINVALID, "case source URL required")
	}
	if !c.DepthLevel.Valid() {
		return Errorf(EINVALID, "case depth level must be between 1 and 3, got %d", c.DepthLevel)
	}
	if !c.MediaType.Valid() {
		return Errorf(EINVALID, "unsupported media type %q", c.MediaType)
	}
	return nil
}

// MysteryProvider is the capability set every evidence source exposes.
// Providers are selected at composition time; each call may fail independently.
type MysteryProvider interface {
	// SearchEvidence returns evidence cases for the query, most relevant first.
	SearchEvidence(ctx context.Context, query string) ([]*EvidenceCase, error)

	// CaseDetails returns the case with the given ID.
	// Returns nil and no error if the provider does not know the case.
	CaseDetails(ctx context.Context, id string) (*EvidenceCase, error)

	// VerifySourceIntegrity reports whether a source URL can be trusted.
	VerifySourceIntegrity(ctx context.Context, url string) (bool, error)
}

// CaseService represents a registry of discovered evidence cases.
type CaseService interface {
	// CreateCase stores a case. An existing case with the same ID is replaced.
	CreateCase(ctx context.Context, c *EvidenceCase) error

	// FindCaseByID retrieves a case by ID.
	// Returns ENOTFOUND if the case does not exist.
	FindCaseByID(ctx context.Context, id string) (*EvidenceCase, error)

	// FindCases retrieves cases matching the filter, newest first.
	FindCases(ctx context.Context, filter CaseFilter) ([]*EvidenceCase, error)
}

// CaseFilter represents a filter for FindCases.
type CaseFilter struct {
	SourceURL *string    `json:"sourceUrl"`
	MediaType *MediaType `json:"mediaType"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
