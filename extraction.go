package secmda

import (
	"context"
	"time"
)

// Extraction is a stored MD&A section of one filing.
type Extraction struct {
	ID              string    `json:"id"`
	Ticker          string    `json:"ticker"`
	CIK             string    `json:"cik"`
	Form            Category  `json:"form"`
	AccessionNumber string    `json:"accessionNumber"`
	ReportDate      string    `json:"reportDate"`
	SourceURL       string    `json:"sourceUrl"`
	Content         string    `json:"content"`
	ContentHash     string    `json:"contentHash"`
	Tokens          int       `json:"tokens"`
	ExtractedAt     time.Time `json:"extractedAt"`
}

// Validate returns an error if the extraction contains invalid fields.
func (e *Extraction) Validate() error {
	if e.Ticker == "" {
		return Errorf(EINVALID, "extraction ticker required")
	}
	if e.Form == "" {
		return Errorf(EINVALID, "extraction form required")
	}
	if e.AccessionNumber == "" {
		return Errorf(EINVALID, "extraction accession number required")
	}
	if e.SourceURL == "" {
		return Errorf(EINVALID, "extraction source URL required")
	}
	return nil
}

// ReportName returns a label such as "2024-09-28 10-K".
func (e *Extraction) ReportName() string {
	return e.ReportDate + " " + string(e.Form)
}

// ExtractionService represents a service for managing stored extractions.
type ExtractionService interface {
	// CreateExtraction stores a new extraction.
	CreateExtraction(ctx context.Context, ext *Extraction) error

	// FindExtractionByID retrieves an extraction by ID.
	// Returns ENOTFOUND if extraction does not exist.
	FindExtractionByID(ctx context.Context, id string) (*Extraction, error)

	// FindExtractions retrieves extractions matching the filter, latest report first.
	FindExtractions(ctx context.Context, filter ExtractionFilter) ([]*Extraction, error)

	// DeleteExtraction permanently removes an extraction.
	// Returns ENOTFOUND if extraction does not exist.
	DeleteExtraction(ctx context.Context, id string) error
}

// ExtractionWriter exports extractions outside the store.
type ExtractionWriter interface {
	// WriteExtraction writes ext and returns where it was written.
	WriteExtraction(ctx context.Context, ext *Extraction) (string, error)
}

// ExtractionFilter represents a filter for FindExtractions.
type ExtractionFilter struct {
	ID              *string   `json:"id"`
	Ticker          *string   `json:"ticker"`
	Form            *Category `json:"form"`
	AccessionNumber *string   `json:"accessionNumber"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
