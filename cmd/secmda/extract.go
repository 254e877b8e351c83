package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/secmda"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	category, err := secmda.ParseCategory(c.Form)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", secmda.ErrorMessage(err))
		return err
	}

	html, err := readInput(c.File, deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	text, err := deps.Extractor.ExtractSection(html, category)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", secmda.ErrorMessage(err))
		return err
	}
	if secmda.IsNotFound(text) {
		fmt.Fprintf(deps.Stderr, "error: %s\n", text)
		return secmda.Errorf(secmda.ENOTFOUND, "MD&A section not found in %s", c.File)
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}

// readInput reads a whole file, or stdin when path is "-".
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}
