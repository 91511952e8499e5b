package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/deeptective/deeptective"
)

// Run executes the evidence command.
func (c *EvidenceCmd) Run(deps *Dependencies) error {
	cases, err := deps.Provider.SearchEvidence(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deeptective.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return writeJSON(deps.Stdout, cases)
	}
	if len(cases) == 0 {
		fmt.Fprintf(deps.Stdout, "No evidence found for %q.\n", c.Query)
		return nil
	}
	for _, ec := range cases {
		printCase(deps.Stdout, ec)
	}
	return nil
}

// Run executes the case command.
func (c *CaseCmd) Run(deps *Dependencies) error {
	ec, err := deps.Provider.CaseDetails(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deeptective.ErrorMessage(err))
		return err
	}
	if ec == nil {
		fmt.Fprintf(deps.Stderr, "error: case %q not found. Cases persist only with --db or DEEPTECTIVE_DB; use 'deeptective evidence' to discover cases.\n", c.ID)
		return deeptective.Errorf(deeptective.ENOTFOUND, "case %q not found", c.ID)
	}

	if c.JSON {
		return writeJSON(deps.Stdout, ec)
	}
	fmt.Fprintf(deps.Stdout, "ID:         %s\n", ec.ID)
	fmt.Fprintf(deps.Stdout, "Title:      %s\n", ec.Title)
	fmt.Fprintf(deps.Stdout, "Source:     %s\n", ec.SourceURL)
	fmt.Fprintf(deps.Stdout, "Media:      %s\n", ec.MediaType)
	fmt.Fprintf(deps.Stdout, "Depth:      %d\n", ec.DepthLevel)
	fmt.Fprintf(deps.Stdout, "Discovered: %s\n", ec.DiscoveredAt.Format(time.RFC3339))
	return nil
}

// Run executes the cases command.
func (c *CasesCmd) Run(deps *Dependencies) error {
	filter := deeptective.CaseFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Source != "" {
		filter.SourceURL = &c.Source
	}
	if c.Media != "" {
		mediaType := deeptective.MediaType(c.Media)
		if !mediaType.Valid() {
			err := deeptective.Errorf(deeptective.EINVALID, "unsupported media type %q", c.Media)
			fmt.Fprintf(deps.Stderr, "error: %s\n", deeptective.ErrorMessage(err))
			return err
		}
		filter.MediaType = &mediaType
	}

	cases, err := deps.Cases.FindCases(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deeptective.ErrorMessage(err))
		return err
	}

	if c.JSON {
		if cases == nil {
			cases = []*deeptective.EvidenceCase{}
		}
		return writeJSON(deps.Stdout, cases)
	}
	if len(cases) == 0 {
		fmt.Fprintln(deps.Stdout, "No cases found. Use 'deeptective evidence' to discover some.")
		return nil
	}
	for _, ec := range cases {
		printCase(deps.Stdout, ec)
	}
	return nil
}

func printCase(w io.Writer, ec *deeptective.EvidenceCase) {
	fmt.Fprintf(w, "%s  %s  depth=%d  %s  %s\n", ec.ID, ec.MediaType, ec.DepthLevel, ec.SourceURL, ec.Title)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
