package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/secmda/fs"
	"github.com/fwojciec/secmda/gemini"
	"github.com/fwojciec/secmda/goquery"
	"github.com/fwojciec/secmda/htmltomarkdown"
	sechttp "github.com/fwojciec/secmda/http"
	"github.com/fwojciec/secmda/retrieve"
	secslog "github.com/fwojciec/secmda/slog"
	"github.com/fwojciec/secmda/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Input for interactive commands.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("secmda"),
		kong.Description("Extract the MD&A section of SEC 10-K and 10-Q filings."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'secmda --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	// Global flags may precede the command, so ask kong which one was selected.
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SECMDA_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	extractor := goquery.NewExtractor()
	extractions := sqlite.NewExtractionService(m.DB)
	deps.DB = m.DB
	deps.Extractions = extractions
	deps.Extractor = secslog.NewLoggingExtractor(extractor, logger)
	deps.Tables = extractor
	deps.Converter = htmltomarkdown.NewConverter()

	if cmd == "get" {
		if cli.UserAgent == "" {
			fmt.Fprintln(stderr, "SEC EDGAR requires a User-Agent naming you and a contact address, e.g. \"Jane Doe jane@example.com\".")
			return fmt.Errorf("user agent not set. Use --user-agent or SECMDA_USER_AGENT")
		}

		fetcher := secslog.NewLoggingFetcher(sechttp.NewFetcher(sechttp.WithUserAgent(cli.UserAgent)), logger)
		defer fetcher.Close()

		tokenCounter, err := gemini.NewTokenCounter(gemini.DefaultModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}

		deps.Retriever = &retrieve.Retriever{
			Index:        secslog.NewLoggingFilingIndex(sechttp.NewFilingIndex(fetcher), logger),
			Fetcher:      fetcher,
			Extractor:    deps.Extractor,
			Extractions:  extractions,
			TokenCounter: tokenCounter,
		}
	}

	if cmd == "export" {
		deps.Writer = fs.NewWriter(cli.Export.Dir)
	}

	if cmd == "analyze" || cmd == "chat" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Analyst = gemini.NewAnalyst(client, cli.Model)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("SECMDA_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "secmda.db"
	}
	dir := filepath.Join(home, ".secmda")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "secmda.db")
}
