// Package retrieve provides MD&A retrieval orchestration.
// It coordinates filing lookup, document fetching, section extraction,
// and storage of the extracted text.
package retrieve

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/secmda"
)

// Ensure Retriever implements secmda.Retriever at compile time.
var _ secmda.Retriever = (*Retriever)(nil)

// Retriever resolves a report, extracts its MD&A section and stores it.
// TokenCounter is optional.
type Retriever struct {
	Index        secmda.FilingIndex
	Fetcher      secmda.Fetcher
	Extractor    secmda.SectionExtractor
	Extractions  secmda.ExtractionService
	TokenCounter secmda.TokenCounter
}

// Retrieve returns the MD&A extraction of the requested report. A stored
// extraction of the same filing is reused unless req.Refresh is set.
func (r *Retriever) Retrieve(ctx context.Context, req secmda.RetrieveRequest) (*secmda.Extraction, error) {
	if _, err := secmda.LookupSectionSpec(req.Category); err != nil {
		return nil, err
	}
	if req.Nth < 0 {
		return nil, secmda.Errorf(secmda.EINVALID, "requested report index is out of range")
	}

	ticker := strings.ToUpper(strings.TrimSpace(req.Ticker))
	cik, err := r.Index.LookupCIK(ctx, ticker)
	if err != nil {
		return nil, err
	}

	filings, err := r.Index.FindFilings(ctx, cik, req.Category)
	if err != nil {
		return nil, err
	}
	if req.Nth >= len(filings) {
		return nil, secmda.Errorf(secmda.EINVALID, "requested report index is out of range: %s has %d %s filings",
			ticker, len(filings), req.Category)
	}
	filing := filings[req.Nth]

	existing, err := r.Extractions.FindExtractions(ctx, secmda.ExtractionFilter{
		Form:            &filing.Form,
		AccessionNumber: &filing.AccessionNumber,
	})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 && !req.Refresh {
		return existing[0], nil
	}

	html, err := r.Fetcher.Fetch(ctx, filing.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", filing.ReportName(), err)
	}
	if strings.TrimSpace(html) == "" {
		return nil, secmda.Errorf(secmda.EINTERNAL, "filing document %s is empty", filing.URL())
	}

	text, err := r.Extractor.ExtractSection(html, req.Category)
	if err != nil {
		return nil, err
	}
	if secmda.IsNotFound(text) {
		return nil, secmda.Errorf(secmda.ENOTFOUND, "MD&A section not found in %s %s", ticker, filing.ReportName())
	}

	ext := &secmda.Extraction{
		Ticker:          ticker,
		CIK:             cik,
		Form:            filing.Form,
		AccessionNumber: filing.AccessionNumber,
		ReportDate:      filing.ReportDate,
		SourceURL:       filing.URL(),
		Content:         text,
	}

	if r.TokenCounter != nil {
		ext.Tokens, err = r.TokenCounter.CountTokens(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("failed to count tokens: %w", err)
		}
	}

	for _, old := range existing {
		if err := r.Extractions.DeleteExtraction(ctx, old.ID); err != nil {
			return nil, err
		}
	}
	if err := r.Extractions.CreateExtraction(ctx, ext); err != nil {
		return nil, err
	}

	return ext, nil
}
