package main

import (
	"fmt"

	"github.com/deeptective/deeptective"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	question := c.Question
	if question == "" {
		question = c.Query
	}

	sources := deps.Pipeline.Run(deps.Ctx, c.Query)

	answer, err := deps.Asker.Ask(deps.Ctx, question, sources)
	if deeptective.ErrorCode(err) == deeptective.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: no sources found for %q. Try a different query.\n", c.Query)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deeptective.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
