package main

import (
	"fmt"

	"github.com/fwojciec/secmda"
)

// Run executes the tables command.
func (c *TablesCmd) Run(deps *Dependencies) error {
	html, err := readInput(c.File, deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	tables, err := deps.Tables.RemovedTables(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", secmda.ErrorMessage(err))
		return err
	}

	if len(tables) == 0 {
		fmt.Fprintln(deps.Stdout, "No layout tables removed.")
		return nil
	}

	for i, inner := range tables {
		fmt.Fprintf(deps.Stdout, "--- table %d of %d ---\n", i+1, len(tables))
		if c.HTML {
			fmt.Fprintln(deps.Stdout, inner)
			continue
		}
		md, err := deps.Converter.Convert("<table>" + inner + "</table>")
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", secmda.ErrorMessage(err))
			return err
		}
		if md == "" {
			md = "(no text)"
		}
		fmt.Fprintln(deps.Stdout, md)
	}

	return nil
}
