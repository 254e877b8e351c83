package main

import (
	"context"
	"io"

	"github.com/fwojciec/secmda"
	"github.com/fwojciec/secmda/sqlite"
)

// TableFilter reports the layout tables the extractor removes from a document.
type TableFilter interface {
	RemovedTables(html string) ([]string, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	DB          *sqlite.DB
	Extractions secmda.ExtractionService
	Extractor   secmda.SectionExtractor
	Tables      TableFilter
	Converter   secmda.Converter
	Writer      secmda.ExtractionWriter
	Retriever   secmda.Retriever
	Analyst     secmda.Analyst
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool   `short:"v" help:"Log fetches and extraction steps to stderr"`
	UserAgent string `name:"user-agent" env:"SECMDA_USER_AGENT" help:"User-Agent sent to SEC EDGAR (name and email)"`
	Model     string `env:"SECMDA_MODEL" default:"gemini-2.5-flash" help:"Gemini model used for analysis"`

	Get     GetCmd     `cmd:"" help:"Fetch a filing from EDGAR and extract its MD&A section"`
	Extract ExtractCmd `cmd:"" help:"Extract the MD&A section from a local filing"`
	Tables  TablesCmd  `cmd:"" help:"Show the layout tables removed before extraction"`
	List    ListCmd    `cmd:"" help:"List stored extractions"`
	Show    ShowCmd    `cmd:"" help:"Print a stored extraction"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored extraction"`
	Export  ExportCmd  `cmd:"" help:"Write stored extractions as Markdown files"`
	Analyze AnalyzeCmd `cmd:"" help:"Ask Gemini to analyze a stored extraction"`
	Chat    ChatCmd    `cmd:"" help:"Discuss a stored extraction with Gemini"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	Ticker  string `arg:"" help:"Company ticker symbol"`
	Form    string `arg:"" help:"Filing form (10-K or 10-Q)"`
	Nth     int    `short:"n" default:"1" help:"Which report to fetch, 1 being the latest"`
	Refresh bool   `short:"r" help:"Re-extract even if the report is stored"`
	Full    bool   `help:"Print the full section instead of a preview"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File string `arg:"" help:"Filing HTML file, or - for stdin"`
	Form string `arg:"" help:"Filing form (10-K or 10-Q)"`
}

// TablesCmd is the "tables" subcommand.
type TablesCmd struct {
	File string `arg:"" help:"Filing HTML file, or - for stdin"`
	HTML bool   `name:"html" help:"Print raw HTML instead of Markdown"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Ticker string `short:"t" help:"Only extractions for this ticker"`
	Form   string `short:"f" help:"Only extractions of this form"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Extraction ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Extraction ID"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	ID  string `arg:"" optional:"" help:"Extraction ID (default: all)"`
	Dir string `short:"o" default:"." help:"Output directory"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	ID string `arg:"" help:"Extraction ID"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	ID         string `arg:"" help:"Extraction ID"`
	NoAnalysis bool   `help:"Start without the initial MD&A analysis"`
}
