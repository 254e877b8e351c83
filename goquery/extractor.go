// Package goquery implements secmda.SectionExtractor on top of goquery.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/secmda"
)

// Ensure Extractor implements secmda.SectionExtractor at compile time.
var _ secmda.SectionExtractor = (*Extractor)(nil)

// Extractor isolates the MD&A section of a filing document. It runs the
// table filter, boundary locator, span collector and trailer trimmer in
// that order over one parsed tree.
type Extractor struct {
	layout    *regexp.Regexp
	keyword   *regexp.Regexp
	trimWidth int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLayoutPattern sets the style pattern that marks layout tables.
func WithLayoutPattern(re *regexp.Regexp) Option {
	return func(e *Extractor) {
		e.layout = re
	}
}

// WithKeywordPattern sets the heading pattern that exempts tables from removal.
func WithKeywordPattern(re *regexp.Regexp) Option {
	return func(e *Extractor) {
		e.keyword = re
	}
}

// WithTrimWidth sets how many characters before the last heading marker are kept.
// Defaults to DefaultTrimWidth.
func WithTrimWidth(n int) Option {
	return func(e *Extractor) {
		e.trimWidth = n
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		layout:    DefaultLayoutPattern,
		keyword:   DefaultKeywordPattern,
		trimWidth: DefaultTrimWidth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractSection parses html and returns the MD&A text for category,
// or secmda.NotFound when no heading matches.
func (e *Extractor) ExtractSection(html string, category secmda.Category) (string, error) {
	spec, err := secmda.LookupSectionSpec(category)
	if err != nil {
		return "", err
	}

	doc, err := parse(html)
	if err != nil {
		return "", err
	}

	return e.extract(doc, spec), nil
}

// ExtractDocument runs the pipeline over an already parsed document.
// The table filter mutates doc; running it again over the same document
// removes nothing further and yields the same text.
func (e *Extractor) ExtractDocument(doc *goquery.Document, category secmda.Category) (string, error) {
	spec, err := secmda.LookupSectionSpec(category)
	if err != nil {
		return "", err
	}
	return e.extract(doc, spec), nil
}

// RemovedTables returns the inner HTML of the tables the filter would drop from html.
func (e *Extractor) RemovedTables(html string) ([]string, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}
	return filterTables(doc, e.layout, e.keyword, styleCache{}), nil
}

func (e *Extractor) extract(doc *goquery.Document, spec secmda.SectionSpec) string {
	styles := styleCache{}
	filterTables(doc, e.layout, e.keyword, styles)
	start := findSectionStart(doc, spec.Current, styles)
	text := CollectSpan(start, spec.Next)
	if secmda.IsNotFound(text) {
		return text
	}
	return TrimBeforeLastMarker(text, spec.Residue, e.trimWidth)
}

func parse(html string) (*goquery.Document, error) {
	if strings.TrimSpace(html) == "" {
		return nil, secmda.Errorf(secmda.EINVALID, "empty HTML document")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, secmda.Errorf(secmda.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
