// Package fs exports stored extractions as Markdown files.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/secmda"
	yaml "gopkg.in/yaml.v3"
)

// FrontMatter is the YAML header written above an exported section.
type FrontMatter struct {
	Ticker          string `yaml:"ticker"`
	CIK             string `yaml:"cik"`
	Form            string `yaml:"form"`
	ReportDate      string `yaml:"report_date"`
	AccessionNumber string `yaml:"accession_number"`
	Source          string `yaml:"source"`
	Extracted       string `yaml:"extracted,omitempty"`
	Tokens          int    `yaml:"tokens,omitempty"`
	ContentHash     string `yaml:"content_hash,omitempty"`
}

// ExtractionPath returns the path of an exported extraction relative to the
// export directory, e.g. AAPL/2024-09-28_10-K.md.
func ExtractionPath(ext *secmda.Extraction) string {
	return filepath.Join(ext.Ticker, ext.ReportDate+"_"+string(ext.Form)+".md")
}

// FormatExtraction formats an extraction as Markdown with YAML front matter.
func FormatExtraction(ext *secmda.Extraction) (string, error) {
	fm := FrontMatter{
		Ticker:          ext.Ticker,
		CIK:             ext.CIK,
		Form:            string(ext.Form),
		ReportDate:      ext.ReportDate,
		AccessionNumber: ext.AccessionNumber,
		Source:          ext.SourceURL,
		Tokens:          ext.Tokens,
		ContentHash:     ext.ContentHash,
	}
	if !ext.ExtractedAt.IsZero() {
		fm.Extracted = ext.ExtractedAt.Format("2006-01-02")
	}

	header, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("marshal front matter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(ext.Content)
	b.WriteString("\n")
	return b.String(), nil
}

// Ensure Writer implements secmda.ExtractionWriter at compile time.
var _ secmda.ExtractionWriter = (*Writer)(nil)

// Writer writes extractions as Markdown files below a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteExtraction writes ext to disk and returns the file path. The file is
// written to a temporary name first so readers never see a partial export.
func (w *Writer) WriteExtraction(ctx context.Context, ext *secmda.Extraction) (string, error) {
	if err := ext.Validate(); err != nil {
		return "", err
	}
	if ext.ReportDate == "" {
		return "", secmda.Errorf(secmda.EINVALID, "extraction report date required")
	}

	content, err := FormatExtraction(ext)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, ExtractionPath(ext))
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, ".export-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return "", err
	}

	return fullPath, nil
}
