package main

import (
	"fmt"

	"github.com/deeptective/deeptective"
)

// Run executes the verify command.
func (c *VerifyCmd) Run(deps *Dependencies) error {
	trusted, err := deps.Provider.VerifySourceIntegrity(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deeptective.ErrorMessage(err))
		return err
	}

	if trusted {
		fmt.Fprintf(deps.Stdout, "trusted  %s\n", c.URL)
	} else {
		fmt.Fprintf(deps.Stdout, "untrusted  %s\n", c.URL)
	}
	return nil
}
