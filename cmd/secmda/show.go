package main

import (
	"fmt"

	"github.com/fwojciec/secmda"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	ext, err := deps.Extractions.FindExtractionByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", secmda.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, secmda.FormatExtraction(ext))
	return nil
}
