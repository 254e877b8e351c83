package main

import (
	"fmt"

	"github.com/fwojciec/secmda"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return secmda.Errorf(secmda.EINVALID, "use --force to confirm deletion")
	}

	ext, err := deps.Extractions.FindExtractionByID(deps.Ctx, c.ID)
	if err != nil {
		if secmda.ErrorCode(err) == secmda.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: extraction %q not found. Use 'secmda list' to see stored extractions.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", secmda.ErrorMessage(err))
		}
		return err
	}

	if err := deps.Extractions.DeleteExtraction(deps.Ctx, ext.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", secmda.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %s %s\n", ext.Ticker, ext.ReportName())
	return nil
}
