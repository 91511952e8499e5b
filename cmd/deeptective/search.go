package main

import (
	"fmt"
	"strings"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results := deps.Pipeline.Run(deps.Ctx, c.Query)
	if len(results) == 0 {
		fmt.Fprintf(deps.Stderr, "No sources found for %q.\n", c.Query)
		return nil
	}

	text := strings.Join(results, "\n\n")
	fmt.Fprintln(deps.Stdout, text)

	if c.Tokens && deps.Tokens != nil {
		tokens, err := deps.Tokens.CountTokens(deps.Ctx, text)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: token count failed: %v\n", err)
			return nil
		}
		fmt.Fprintf(deps.Stderr, "%d sources, ~%d tokens\n", len(results), tokens)
	}

	return nil
}
