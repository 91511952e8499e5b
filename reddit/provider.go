// Package reddit provides a MysteryProvider for forum sources.
//
// The provider does not contact Reddit yet. It returns a single simulated
// case so the rest of the system can be exercised against a depth 2 source.
package reddit

import (
	"context"
	"time"

	"github.com/deeptective/deeptective"
)

var _ deeptective.MysteryProvider = (*Provider)(nil)

// Simulated case values.
const (
	SimulatedCaseID      = "rd_001"
	SimulatedSourceURL   = "https://reddit.com/r/conspiracy"
	SimulatedTitlePrefix = "Conspiracy theory about: "
)

// Provider is a placeholder Reddit evidence source.
type Provider struct {
	// Now returns the discovery time of simulated cases.
	Now func() time.Time
}

// NewProvider returns a new Provider.
func NewProvider() *Provider {
	return &Provider{Now: time.Now}
}

// SearchEvidence returns one simulated forum case mentioning the query.
func (p *Provider) SearchEvidence(_ context.Context, query string) ([]*deeptective.EvidenceCase, error) {
	return []*deeptective.EvidenceCase{{
		ID:           SimulatedCaseID,
		Title:        SimulatedTitlePrefix + query,
		DepthLevel:   deeptective.DepthForum,
		SourceURL:    SimulatedSourceURL,
		MediaType:    deeptective.MediaTypeText,
		DiscoveredAt: p.Now(),
	}}, nil
}

// CaseDetails is not implemented yet and always reports the case as absent.
func (p *Provider) CaseDetails(_ context.Context, _ string) (*deeptective.EvidenceCase, error) {
	return nil, nil
}

// VerifySourceIntegrity is not implemented yet and trusts every source.
func (p *Provider) VerifySourceIntegrity(_ context.Context, _ string) (bool, error) {
	return true, nil
}
