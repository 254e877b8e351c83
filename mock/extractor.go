package mock

import "github.com/fwojciec/secmda"

var _ secmda.SectionExtractor = (*SectionExtractor)(nil)

// SectionExtractor is a mock implementation of secmda.SectionExtractor.
type SectionExtractor struct {
	ExtractSectionFn func(html string, category secmda.Category) (string, error)
}

func (e *SectionExtractor) ExtractSection(html string, category secmda.Category) (string, error) {
	return e.ExtractSectionFn(html, category)
}
