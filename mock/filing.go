package mock

import (
	"context"

	"github.com/fwojciec/secmda"
)

// Compile-time interface verification.
var (
	_ secmda.FilingIndex = (*FilingIndex)(nil)
	_ secmda.Retriever   = (*Retriever)(nil)
)

// FilingIndex is a mock implementation of secmda.FilingIndex.
type FilingIndex struct {
	LookupCIKFn   func(ctx context.Context, ticker string) (string, error)
	FindFilingsFn func(ctx context.Context, cik string, category secmda.Category) ([]*secmda.Filing, error)
}

func (x *FilingIndex) LookupCIK(ctx context.Context, ticker string) (string, error) {
	return x.LookupCIKFn(ctx, ticker)
}

func (x *FilingIndex) FindFilings(ctx context.Context, cik string, category secmda.Category) ([]*secmda.Filing, error) {
	return x.FindFilingsFn(ctx, cik, category)
}

// Retriever is a mock implementation of secmda.Retriever.
type Retriever struct {
	RetrieveFn func(ctx context.Context, req secmda.RetrieveRequest) (*secmda.Extraction, error)
}

func (r *Retriever) Retrieve(ctx context.Context, req secmda.RetrieveRequest) (*secmda.Extraction, error) {
	return r.RetrieveFn(ctx, req)
}
