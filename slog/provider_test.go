package slog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/deeptective/deeptective"
	"github.com/deeptective/deeptective/mock"
	dslog "github.com/deeptective/deeptective/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingProvider(t *testing.T) {
	t.Parallel()

	inner := &mock.MysteryProvider{
		SearchEvidenceFn: func(_ context.Context, _ string) ([]*deeptective.EvidenceCase, error) {
			return []*deeptective.EvidenceCase{{ID: "rd_001"}}, nil
		},
		CaseDetailsFn: func(_ context.Context, _ string) (*deeptective.EvidenceCase, error) {
			return nil, nil
		},
		VerifySourceIntegrityFn: func(_ context.Context, _ string) (bool, error) {
			return false, errors.New("policy unavailable")
		},
	}

	t.Run("logs search evidence with provider name and count", func(t *testing.T) {
		t.Parallel()

		logger, buf := newBufferLogger()

		cases, err := dslog.NewLoggingProvider(inner, "reddit", logger).SearchEvidence(context.Background(), "roswell")

		require.NoError(t, err)
		assert.Len(t, cases, 1)
		assert.Contains(t, buf.String(), "provider=reddit")
		assert.Contains(t, buf.String(), `msg="search evidence"`)
		assert.Contains(t, buf.String(), "query=roswell")
		assert.Contains(t, buf.String(), "count=1")
	})

	t.Run("logs absent case details as not found", func(t *testing.T) {
		t.Parallel()

		logger, buf := newBufferLogger()

		c, err := dslog.NewLoggingProvider(inner, "reddit", logger).CaseDetails(context.Background(), "rd_404")

		require.NoError(t, err)
		assert.Nil(t, c)
		assert.Contains(t, buf.String(), "id=rd_404")
		assert.Contains(t, buf.String(), "found=false")
	})

	t.Run("logs verification errors", func(t *testing.T) {
		t.Parallel()

		logger, buf := newBufferLogger()

		_, err := dslog.NewLoggingProvider(inner, "web", logger).VerifySourceIntegrity(context.Background(), "https://a.example")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "provider=web")
		assert.Contains(t, buf.String(), "trusted=false")
		assert.Contains(t, buf.String(), `err="policy unavailable"`)
	})
}
