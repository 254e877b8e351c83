package main

import (
	"fmt"

	"github.com/fwojciec/secmda"
)

// previewRunes is how much of a section get prints without --full.
const previewRunes = 300

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	category, err := secmda.ParseCategory(c.Form)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", secmda.ErrorMessage(err))
		return err
	}
	if c.Nth < 1 {
		fmt.Fprintf(deps.Stderr, "error: --nth must be 1 or greater\n")
		return secmda.Errorf(secmda.EINVALID, "--nth must be 1 or greater")
	}

	ext, err := deps.Retriever.Retrieve(deps.Ctx, secmda.RetrieveRequest{
		Ticker:   c.Ticker,
		Category: category,
		Nth:      c.Nth - 1,
		Refresh:  c.Refresh,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", secmda.ErrorMessage(err))
		return err
	}

	if c.Full {
		fmt.Fprintln(deps.Stdout, secmda.FormatExtraction(ext))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%s  %s %s  %d tokens\n", ext.ID, ext.Ticker, ext.ReportName(), ext.Tokens)
	fmt.Fprintf(deps.Stdout, "Source: %s\n\n", ext.SourceURL)
	fmt.Fprintln(deps.Stdout, preview(ext.Content, previewRunes))
	fmt.Fprintf(deps.Stdout, "\nUse 'secmda show %s' for the full section.\n", ext.ID)
	return nil
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
