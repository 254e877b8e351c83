package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/secmda"
	"github.com/google/uuid"
	"github.com/ncruces/go-sqlite3"
)

// Compile-time interface verification.
var _ secmda.ExtractionService = (*ExtractionService)(nil)

// ExtractionService implements secmda.ExtractionService using SQLite.
type ExtractionService struct {
	db *DB
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(db *DB) *ExtractionService {
	return &ExtractionService{db: db}
}

// hashContent computes xxHash of content and returns it as hex.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

const extractionColumns = "id, ticker, cik, form, accession_number, report_date, source_url, content, content_hash, tokens, extracted_at"

// CreateExtraction stores a new extraction.
// Returns ECONFLICT if the same filing section is already stored.
func (s *ExtractionService) CreateExtraction(ctx context.Context, ext *secmda.Extraction) error {
	if err := ext.Validate(); err != nil {
		return err
	}

	ext.Ticker = strings.ToUpper(ext.Ticker)
	ext.ID = uuid.New().String()
	ext.ExtractedAt = time.Now().UTC()
	ext.ContentHash = hashContent(ext.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO extractions (`+extractionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, ext.ID, ext.Ticker, ext.CIK, string(ext.Form), ext.AccessionNumber, ext.ReportDate, ext.SourceURL,
		ext.Content, ext.ContentHash, ext.Tokens, ext.ExtractedAt.Format(time.RFC3339))

	if errors.Is(err, sqlite3.CONSTRAINT_UNIQUE) {
		return secmda.Errorf(secmda.ECONFLICT, "extraction of %s %s already exists", ext.Form, ext.AccessionNumber)
	}
	return err
}

// FindExtractionByID retrieves an extraction by ID.
func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*secmda.Extraction, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+extractionColumns+" FROM extractions WHERE id = ?", id)

	ext, err := scanExtraction(row)
	if err == sql.ErrNoRows {
		return nil, secmda.Errorf(secmda.ENOTFOUND, "extraction not found")
	}
	if err != nil {
		return nil, err
	}
	return ext, nil
}

// FindExtractions retrieves extractions matching the filter, latest report first.
func (s *ExtractionService) FindExtractions(ctx context.Context, filter secmda.ExtractionFilter) ([]*secmda.Extraction, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + extractionColumns + " FROM extractions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Ticker != nil {
		query.WriteString(" AND ticker = ?")
		args = append(args, strings.ToUpper(*filter.Ticker))
	}
	if filter.Form != nil {
		query.WriteString(" AND form = ?")
		args = append(args, string(*filter.Form))
	}
	if filter.AccessionNumber != nil {
		query.WriteString(" AND accession_number = ?")
		args = append(args, *filter.AccessionNumber)
	}

	query.WriteString(" ORDER BY report_date DESC, extracted_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exts := []*secmda.Extraction{}
	for rows.Next() {
		ext, err := scanExtraction(rows)
		if err != nil {
			return nil, err
		}
		exts = append(exts, ext)
	}

	return exts, rows.Err()
}

// DeleteExtraction permanently removes an extraction.
func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM extractions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return secmda.Errorf(secmda.ENOTFOUND, "extraction not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExtraction(row scanner) (*secmda.Extraction, error) {
	var ext secmda.Extraction
	var form, extractedAt string

	if err := row.Scan(&ext.ID, &ext.Ticker, &ext.CIK, &form, &ext.AccessionNumber, &ext.ReportDate,
		&ext.SourceURL, &ext.Content, &ext.ContentHash, &ext.Tokens, &extractedAt); err != nil {
		return nil, err
	}
	ext.Form = secmda.Category(form)

	var err error
	ext.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at")
	if err != nil {
		return nil, err
	}
	return &ext, nil
}
