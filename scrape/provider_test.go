package scrape_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/deeptective/deeptective"
	"github.com/deeptective/deeptective/mock"
	"github.com/deeptective/deeptective/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discovered = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func newPipeline(pages map[string]string, titles map[string]string) *scrape.Pipeline {
	urls := make([]string, 0, len(links))
	for _, link := range links {
		if _, ok := pages[link]; ok {
			urls = append(urls, link)
		}
	}
	return &scrape.Pipeline{
		Resolver: staticResolver(urls...),
		Fetcher:  pageFetcher(pages),
		Cleaner:  identityCleaner(),
		Metadata: &mock.MetadataExtractor{
			ExtractMetadataFn: func(html string) (*deeptective.Metadata, error) {
				return &deeptective.Metadata{Title: titles[html]}, nil
			},
		},
	}
}

func TestProvider_SearchEvidence(t *testing.T) {
	t.Parallel()

	t.Run("maps documents to surface text cases and records them", func(t *testing.T) {
		t.Parallel()

		alpha, bravo := longText("alpha"), longText("bravo")
		var recorded []*deeptective.EvidenceCase
		cases := &mock.CaseService{
			CreateCaseFn: func(_ context.Context, c *deeptective.EvidenceCase) error {
				recorded = append(recorded, c)
				return nil
			},
		}
		p := scrape.NewProvider(
			newPipeline(map[string]string{links[0]: alpha, links[1]: bravo}, map[string]string{alpha: "Nessie Files"}),
			cases,
			nil,
		)
		p.Now = func() time.Time { return discovered }

		got, err := p.SearchEvidence(context.Background(), "loch ness")

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, &deeptective.EvidenceCase{
			ID:           scrape.CaseID(links[0]),
			Title:        "Nessie Files",
			DepthLevel:   deeptective.DepthSurface,
			SourceURL:    links[0],
			MediaType:    deeptective.MediaTypeText,
			DiscoveredAt: discovered,
		}, got[0])
		assert.Equal(t, "b.example", got[1].Title, "falls back to the source host")
		assert.Equal(t, got, recorded)
		for _, c := range got {
			assert.NoError(t, c.Validate())
		}
	})

	t.Run("returns empty when nothing was extracted", func(t *testing.T) {
		t.Parallel()

		p := scrape.NewProvider(newPipeline(map[string]string{}, nil), nil, nil)

		got, err := p.SearchEvidence(context.Background(), "loch ness")

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("rejects an empty query", func(t *testing.T) {
		t.Parallel()

		p := scrape.NewProvider(newPipeline(map[string]string{}, nil), nil, nil)

		_, err := p.SearchEvidence(context.Background(), "   ")

		assert.Equal(t, deeptective.EINVALID, deeptective.ErrorCode(err))
	})

	t.Run("returns registry failures", func(t *testing.T) {
		t.Parallel()

		cases := &mock.CaseService{
			CreateCaseFn: func(_ context.Context, _ *deeptective.EvidenceCase) error {
				return errors.New("disk full")
			},
		}
		p := scrape.NewProvider(newPipeline(map[string]string{links[0]: longText("alpha")}, nil), cases, nil)

		_, err := p.SearchEvidence(context.Background(), "loch ness")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestProvider_CaseDetails(t *testing.T) {
	t.Parallel()

	t.Run("returns a recorded case", func(t *testing.T) {
		t.Parallel()

		want := &deeptective.EvidenceCase{ID: "web_1", SourceURL: links[0]}
		cases := &mock.CaseService{
			FindCaseByIDFn: func(_ context.Context, id string) (*deeptective.EvidenceCase, error) {
				assert.Equal(t, "web_1", id)
				return want, nil
			},
		}
		p := scrape.NewProvider(&scrape.Pipeline{}, cases, nil)

		got, err := p.CaseDetails(context.Background(), "web_1")

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("unknown case is absent rather than an error", func(t *testing.T) {
		t.Parallel()

		cases := &mock.CaseService{
			FindCaseByIDFn: func(_ context.Context, _ string) (*deeptective.EvidenceCase, error) {
				return nil, deeptective.Errorf(deeptective.ENOTFOUND, "case not found")
			},
		}
		p := scrape.NewProvider(&scrape.Pipeline{}, cases, nil)

		got, err := p.CaseDetails(context.Background(), "web_404")

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("without a registry every case is absent", func(t *testing.T) {
		t.Parallel()

		p := scrape.NewProvider(&scrape.Pipeline{}, nil, nil)

		got, err := p.CaseDetails(context.Background(), "web_1")

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("propagates other registry errors", func(t *testing.T) {
		t.Parallel()

		cases := &mock.CaseService{
			FindCaseByIDFn: func(_ context.Context, _ string) (*deeptective.EvidenceCase, error) {
				return nil, errors.New("database is locked")
			},
		}
		p := scrape.NewProvider(&scrape.Pipeline{}, cases, nil)

		_, err := p.CaseDetails(context.Background(), "web_1")

		assert.Error(t, err)
	})

	t.Run("rejects an empty ID", func(t *testing.T) {
		t.Parallel()

		p := scrape.NewProvider(&scrape.Pipeline{}, nil, nil)

		_, err := p.CaseDetails(context.Background(), "")

		assert.Equal(t, deeptective.EINVALID, deeptective.ErrorCode(err))
	})
}

func TestProvider_VerifySourceIntegrity(t *testing.T) {
	t.Parallel()

	p := scrape.NewProvider(&scrape.Pipeline{}, nil, &scrape.SourcePolicy{Denylist: []string{"tabloid.example"}})

	trusted, err := p.VerifySourceIntegrity(context.Background(), "https://archive.example/1934")
	require.NoError(t, err)
	assert.True(t, trusted)

	trusted, err = p.VerifySourceIntegrity(context.Background(), "https://tabloid.example/monster")
	require.NoError(t, err)
	assert.False(t, trusted)
}

func TestCaseID(t *testing.T) {
	t.Parallel()

	id := scrape.CaseID("https://a.example/nessie")

	assert.True(t, strings.HasPrefix(id, "web_"))
	assert.Len(t, id, len("web_")+16)
	assert.Equal(t, id, scrape.CaseID("https://a.example/nessie"))
	assert.NotEqual(t, id, scrape.CaseID("https://b.example/nessie"))
}
