package main

import (
	"fmt"

	"github.com/fwojciec/secmda"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	var exts []*secmda.Extraction
	if c.ID != "" {
		ext, err := deps.Extractions.FindExtractionByID(deps.Ctx, c.ID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", secmda.ErrorMessage(err))
			return err
		}
		exts = append(exts, ext)
	} else {
		var err error
		if exts, err = deps.Extractions.FindExtractions(deps.Ctx, secmda.ExtractionFilter{}); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", secmda.ErrorMessage(err))
			return err
		}
	}

	if len(exts) == 0 {
		fmt.Fprintln(deps.Stdout, "No extractions found. Use 'secmda get' to fetch one.")
		return nil
	}

	for _, ext := range exts {
		path, err := deps.Writer.WriteExtraction(deps.Ctx, ext)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", secmda.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
	}

	return nil
}
