package scrape

import (
	"net/url"
	"strings"
)

// SourcePolicy decides whether a source URL is trustworthy.
// Only http and https URLs pass. A host on the denylist is always rejected;
// when the allowlist is non-empty the host must match one of its entries.
// Entries match the domain itself and any of its subdomains.
type SourcePolicy struct {
	Allowlist []string
	Denylist  []string
}

// Verify reports whether rawURL satisfies the policy.
// A nil policy accepts any http or https URL.
func (p *SourcePolicy) Verify(rawURL string) bool {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}
	if p == nil {
		return true
	}

	for _, domain := range p.Denylist {
		if matchDomain(host, domain) {
			return false
		}
	}

	if len(p.Allowlist) == 0 {
		return true
	}
	for _, domain := range p.Allowlist {
		if matchDomain(host, domain) {
			return true
		}
	}
	return false
}

func matchDomain(host, domain string) bool {
	domain = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(domain), "."))
	if domain == "" {
		return false
	}
	return host == domain || strings.HasSuffix(host, "."+domain)
}
