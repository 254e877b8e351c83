package main

import (
	"fmt"

	"github.com/fwojciec/secmda"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	var filter secmda.ExtractionFilter
	if c.Ticker != "" {
		filter.Ticker = &c.Ticker
	}
	if c.Form != "" {
		form, err := secmda.ParseCategory(c.Form)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", secmda.ErrorMessage(err))
			return err
		}
		filter.Form = &form
	}

	exts, err := deps.Extractions.FindExtractions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", secmda.ErrorMessage(err))
		return err
	}

	if len(exts) == 0 {
		fmt.Fprintln(deps.Stdout, "No extractions found. Use 'secmda get' to fetch one.")
		return nil
	}

	for _, e := range exts {
		fmt.Fprintf(deps.Stdout, "%s  %-6s %s  %d tokens\n", e.ID, e.Ticker, e.ReportName(), e.Tokens)
	}

	return nil
}
