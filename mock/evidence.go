package mock

import (
	"context"

	"github.com/deeptective/deeptective"
)

var (
	_ deeptective.MysteryProvider = (*MysteryProvider)(nil)
	_ deeptective.CaseService     = (*CaseService)(nil)
)

// MysteryProvider is a mock implementation of deeptective.MysteryProvider.
type MysteryProvider struct {
	SearchEvidenceFn        func(ctx context.Context, query string) ([]*deeptective.EvidenceCase, error)
	CaseDetailsFn           func(ctx context.Context, id string) (*deeptective.EvidenceCase, error)
	VerifySourceIntegrityFn func(ctx context.Context, url string) (bool, error)
}

func (p *MysteryProvider) SearchEvidence(ctx context.Context, query string) ([]*deeptective.EvidenceCase, error) {
	return p.SearchEvidenceFn(ctx, query)
}

func (p *MysteryProvider) CaseDetails(ctx context.Context, id string) (*deeptective.EvidenceCase, error) {
	return p.CaseDetailsFn(ctx, id)
}

func (p *MysteryProvider) VerifySourceIntegrity(ctx context.Context, url string) (bool, error) {
	return p.VerifySourceIntegrityFn(ctx, url)
}

// CaseService is a mock implementation of deeptective.CaseService.
type CaseService struct {
	CreateCaseFn   func(ctx context.Context, c *deeptective.EvidenceCase) error
	FindCaseByIDFn func(ctx context.Context, id string) (*deeptective.EvidenceCase, error)
	FindCasesFn    func(ctx context.Context, filter deeptective.CaseFilter) ([]*deeptective.EvidenceCase, error)
}

func (s *CaseService) CreateCase(ctx context.Context, c *deeptective.EvidenceCase) error {
	return s.CreateCaseFn(ctx, c)
}

func (s *CaseService) FindCaseByID(ctx context.Context, id string) (*deeptective.EvidenceCase, error) {
	return s.FindCaseByIDFn(ctx, id)
}

func (s *CaseService) FindCases(ctx context.Context, filter deeptective.CaseFilter) ([]*deeptective.EvidenceCase, error) {
	return s.FindCasesFn(ctx, filter)
}
