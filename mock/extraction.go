package mock

import (
	"context"

	"github.com/fwojciec/secmda"
)

var _ secmda.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is a mock implementation of secmda.ExtractionService.
type ExtractionService struct {
	CreateExtractionFn   func(ctx context.Context, ext *secmda.Extraction) error
	FindExtractionByIDFn func(ctx context.Context, id string) (*secmda.Extraction, error)
	FindExtractionsFn    func(ctx context.Context, filter secmda.ExtractionFilter) ([]*secmda.Extraction, error)
	DeleteExtractionFn   func(ctx context.Context, id string) error
}

func (s *ExtractionService) CreateExtraction(ctx context.Context, ext *secmda.Extraction) error {
	return s.CreateExtractionFn(ctx, ext)
}

func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*secmda.Extraction, error) {
	return s.FindExtractionByIDFn(ctx, id)
}

func (s *ExtractionService) FindExtractions(ctx context.Context, filter secmda.ExtractionFilter) ([]*secmda.Extraction, error) {
	return s.FindExtractionsFn(ctx, filter)
}

func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	return s.DeleteExtractionFn(ctx, id)
}

var _ secmda.ExtractionWriter = (*ExtractionWriter)(nil)

// ExtractionWriter is a mock implementation of secmda.ExtractionWriter.
type ExtractionWriter struct {
	WriteExtractionFn func(ctx context.Context, ext *secmda.Extraction) (string, error)
}

func (w *ExtractionWriter) WriteExtraction(ctx context.Context, ext *secmda.Extraction) (string, error) {
	return w.WriteExtractionFn(ctx, ext)
}
