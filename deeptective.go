// Package deeptective gathers web evidence for a query. It resolves search
// results, fetches the linked pages, strips boilerplate markup and returns
// bounded plain-text snippets ready to be placed in a language model prompt.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package deeptective
