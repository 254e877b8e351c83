package secmda

import (
	"context"
	"strings"
)

// ArchivesBaseURL is the root of the EDGAR document archive.
const ArchivesBaseURL = "https://www.sec.gov/Archives/edgar/data"

// Filing describes one entry of a company's EDGAR filing history.
type Filing struct {
	CIK             string   `json:"cik"`
	Company         string   `json:"company"`
	Form            Category `json:"form"`
	AccessionNumber string   `json:"accessionNumber"`
	PrimaryDocument string   `json:"primaryDocument"`
	ReportDate      string   `json:"reportDate"`
	FilingDate      string   `json:"filingDate"`
}

// URL returns the archive location of the filing's primary document.
func (f *Filing) URL() string {
	cik := strings.TrimLeft(f.CIK, "0")
	accession := strings.ReplaceAll(f.AccessionNumber, "-", "")
	return ArchivesBaseURL + "/" + cik + "/" + accession + "/" + f.PrimaryDocument
}

// ReportName returns a human-readable label such as "2024-09-28 10-K".
func (f *Filing) ReportName() string {
	return f.ReportDate + " " + string(f.Form)
}

// FilingIndex resolves companies and their filings.
type FilingIndex interface {
	// LookupCIK returns the 10-digit, zero-padded CIK for a ticker symbol.
	// Returns ENOTFOUND if the ticker is unknown.
	LookupCIK(ctx context.Context, ticker string) (string, error)

	// FindFilings returns the company's recent filings of the given category,
	// latest report date first.
	FindFilings(ctx context.Context, cik string, category Category) ([]*Filing, error)
}

// RetrieveRequest identifies the report whose MD&A section should be retrieved.
type RetrieveRequest struct {
	Ticker   string
	Category Category

	// Nth selects the report by recency; 0 is the latest.
	Nth int

	// Refresh ignores a previously stored extraction of the same filing.
	Refresh bool
}

// Retriever fetches a filing and extracts its MD&A section.
type Retriever interface {
	// Retrieve returns the extraction for the requested report.
	// Returns ENOTFOUND if the section cannot be located in the filing.
	Retrieve(ctx context.Context, req RetrieveRequest) (*Extraction, error)
}
