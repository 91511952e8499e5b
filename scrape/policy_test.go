package scrape_test

import (
	"testing"

	"github.com/deeptective/deeptective/scrape"
	"github.com/stretchr/testify/assert"
)

func TestSourcePolicy_Verify(t *testing.T) {
	t.Parallel()

	t.Run("empty policy accepts http and https", func(t *testing.T) {
		t.Parallel()

		p := &scrape.SourcePolicy{}

		assert.True(t, p.Verify("https://example.com/page"))
		assert.True(t, p.Verify("http://example.com"))
	})

	t.Run("rejects other schemes and malformed URLs", func(t *testing.T) {
		t.Parallel()

		p := &scrape.SourcePolicy{}

		assert.False(t, p.Verify("ftp://example.com/file"))
		assert.False(t, p.Verify("javascript:alert(1)"))
		assert.False(t, p.Verify("not a url"))
		assert.False(t, p.Verify("https://"))
		assert.False(t, p.Verify("://missing-scheme"))
	})

	t.Run("nil policy behaves like an empty one", func(t *testing.T) {
		t.Parallel()

		var p *scrape.SourcePolicy

		assert.True(t, p.Verify("https://example.com"))
		assert.False(t, p.Verify("file:///etc/passwd"))
	})

	t.Run("denylist rejects domain and subdomains", func(t *testing.T) {
		t.Parallel()

		p := &scrape.SourcePolicy{Denylist: []string{"tabloid.example"}}

		assert.False(t, p.Verify("https://tabloid.example/story"))
		assert.False(t, p.Verify("https://www.TABLOID.example/story"))
		assert.True(t, p.Verify("https://nottabloid.example/story"))
	})

	t.Run("allowlist restricts to listed domains", func(t *testing.T) {
		t.Parallel()

		p := &scrape.SourcePolicy{Allowlist: []string{"archive.org", ".bbc.co.uk"}}

		assert.True(t, p.Verify("https://web.archive.org/web/1934"))
		assert.True(t, p.Verify("https://www.bbc.co.uk/news"))
		assert.False(t, p.Verify("https://example.com"))
	})

	t.Run("denylist wins over allowlist", func(t *testing.T) {
		t.Parallel()

		p := &scrape.SourcePolicy{
			Allowlist: []string{"example.com"},
			Denylist:  []string{"spam.example.com"},
		}

		assert.True(t, p.Verify("https://example.com"))
		assert.False(t, p.Verify("https://spam.example.com/x"))
	})
}
