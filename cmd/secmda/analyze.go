package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/secmda"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	ext, err := deps.Extractions.FindExtractionByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", secmda.ErrorMessage(err))
		return err
	}

	answer, err := deps.Analyst.Reply(deps.Ctx, secmda.NewAnalysisConversation(ext))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", secmda.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}

// Run executes the chat command. Each line read from stdin is one question;
// an empty line is ignored and "exit" or "quit" ends the session.
func (c *ChatCmd) Run(deps *Dependencies) error {
	ext, err := deps.Extractions.FindExtractionByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", secmda.ErrorMessage(err))
		return err
	}

	conv := secmda.NewConversation(ext)
	if !c.NoAnalysis {
		conv.Append(secmda.RoleUser, secmda.AnalysisRequest(ext))
		answer, err := deps.Analyst.Reply(deps.Ctx, conv)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", secmda.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, answer)
	}

	fmt.Fprintf(deps.Stderr, "Chatting about %s %s. Type 'exit' to quit.\n", ext.Ticker, ext.ReportName())

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stderr, "> ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if question == "exit" || question == "quit" {
			return nil
		}

		conv.Append(secmda.RoleUser, question)
		answer, err := deps.Analyst.Reply(deps.Ctx, conv)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", secmda.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, answer)
	}

	return scanner.Err()
}
