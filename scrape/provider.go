package scrape

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/deeptective/deeptective"
)

var _ deeptective.MysteryProvider = (*Provider)(nil)

// CaseIDPrefix marks cases discovered on the open web.
const CaseIDPrefix = "web_"

// Provider is a MysteryProvider backed by live search and page scraping.
type Provider struct {
	pipeline *Pipeline
	cases    deeptective.CaseService
	policy   *SourcePolicy

	// Now returns the discovery time of new cases.
	Now func() time.Time
}

// NewProvider returns a provider that runs pipeline for each search.
// Discovered cases are recorded in cases when it is not nil.
func NewProvider(pipeline *Pipeline, cases deeptective.CaseService, policy *SourcePolicy) *Provider {
	return &Provider{
		pipeline: pipeline,
		cases:    cases,
		policy:   policy,
		Now:      time.Now,
	}
}

// SearchEvidence converts every extracted document for the query into a
// surface-level text case, preserving search result order.
func (p *Provider) SearchEvidence(ctx context.Context, query string) ([]*deeptective.EvidenceCase, error) {
	if strings.TrimSpace(query) == "" {
		return nil, deeptective.Errorf(deeptective.EINVALID, "query required")
	}

	docs := p.pipeline.Documents(ctx, query)
	now := p.Now().UTC()

	cases := make([]*deeptective.EvidenceCase, 0, len(docs))
	for _, doc := range docs {
		c := &deeptective.EvidenceCase{
			ID:           CaseID(doc.SourceURL),
			Title:        caseTitle(doc),
			DepthLevel:   deeptective.DepthSurface,
			SourceURL:    doc.SourceURL,
			MediaType:    deeptective.MediaTypeText,
			DiscoveredAt: now,
		}
		if p.cases != nil {
			if err := p.cases.CreateCase(ctx, c); err != nil {
				return nil, fmt.Errorf("record case %s: %w", c.ID, err)
			}
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// CaseDetails returns a previously discovered case.
// Returns nil and no error if the case is unknown.
func (p *Provider) CaseDetails(ctx context.Context, id string) (*deeptective.EvidenceCase, error) {
	if id == "" {
		return nil, deeptective.Errorf(deeptective.EINVALID, "case ID required")
	}
	if p.cases == nil {
		return nil, nil
	}

	c, err := p.cases.FindCaseByID(ctx, id)
	if deeptective.ErrorCode(err) == deeptective.ENOTFOUND {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return c, nil
}

// VerifySourceIntegrity applies the provider's source policy to url.
func (p *Provider) VerifySourceIntegrity(_ context.Context, url string) (bool, error) {
	return p.policy.Verify(url), nil
}

// CaseID derives a stable case identifier from a source URL.
func CaseID(sourceURL string) string {
	return fmt.Sprintf("%s%016x", CaseIDPrefix, xxhash.Sum64String(sourceURL))
}

func caseTitle(doc *deeptective.Document) string {
	if title := strings.TrimSpace(doc.Title); title != "" {
		return title
	}
	if host := hostname(doc.SourceURL); host != "" {
		return host
	}
	return doc.SourceURL
}
