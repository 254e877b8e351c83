package http

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/fwojciec/secmda"
	"golang.org/x/sync/singleflight"
)

// EDGAR endpoints.
const (
	DefaultTickersURL     = "https://www.sec.gov/files/company_tickers.json"
	DefaultSubmissionsURL = "https://data.sec.gov/submissions"
)

// Ensure FilingIndex implements secmda.FilingIndex.
var _ secmda.FilingIndex = (*FilingIndex)(nil)

// FilingIndex resolves tickers and filing histories from EDGAR's JSON APIs.
// The ticker table is downloaded once per FilingIndex and kept in memory.
type FilingIndex struct {
	fetcher        secmda.Fetcher
	tickersURL     string
	submissionsURL string

	group singleflight.Group
	mu    sync.RWMutex
	ciks  map[string]string
}

// IndexOption configures a FilingIndex.
type IndexOption func(*FilingIndex)

// WithTickersURL overrides the location of the ticker table.
func WithTickersURL(u string) IndexOption {
	return func(x *FilingIndex) {
		x.tickersURL = u
	}
}

// WithSubmissionsURL overrides the base URL of the submissions API.
func WithSubmissionsURL(u string) IndexOption {
	return func(x *FilingIndex) {
		x.submissionsURL = strings.TrimSuffix(u, "/")
	}
}

// NewFilingIndex creates a FilingIndex that downloads through fetcher.
func NewFilingIndex(fetcher secmda.Fetcher, opts ...IndexOption) *FilingIndex {
	x := &FilingIndex{
		fetcher:        fetcher,
		tickersURL:     DefaultTickersURL,
		submissionsURL: DefaultSubmissionsURL,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// companyTicker is one entry of company_tickers.json.
type companyTicker struct {
	CIK    int64  `json:"cik_str"`
	Ticker string `json:"ticker"`
	Title  string `json:"title"`
}

// LookupCIK returns the zero-padded CIK for ticker.
func (x *FilingIndex) LookupCIK(ctx context.Context, ticker string) (string, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return "", secmda.Errorf(secmda.EINVALID, "ticker required")
	}

	ciks, err := x.tickers(ctx)
	if err != nil {
		return "", err
	}

	cik, ok := ciks[ticker]
	if !ok {
		return "", secmda.Errorf(secmda.ENOTFOUND, "ticker %q not found", ticker)
	}
	return cik, nil
}

// tickers returns the ticker table, downloading it on first use.
// Concurrent first calls share one download.
func (x *FilingIndex) tickers(ctx context.Context) (map[string]string, error) {
	x.mu.RLock()
	ciks := x.ciks
	x.mu.RUnlock()
	if ciks != nil {
		return ciks, nil
	}

	v, err, _ := x.group.Do("tickers", func() (any, error) {
		body, err := x.fetcher.Fetch(ctx, x.tickersURL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch ticker table: %w", err)
		}

		var entries map[string]companyTicker
		if err := json.Unmarshal([]byte(body), &entries); err != nil {
			return nil, secmda.Errorf(secmda.EINTERNAL, "malformed ticker table: %v", err)
		}

		ciks := make(map[string]string, len(entries))
		for _, e := range entries {
			ciks[strings.ToUpper(e.Ticker)] = fmt.Sprintf("%010d", e.CIK)
		}

		x.mu.Lock()
		x.ciks = ciks
		x.mu.Unlock()
		return ciks, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]string), nil
}

// submissions is the subset of the submissions API response that we read.
// Recent filings are stored column-wise.
type submissions struct {
	CIK     string `json:"cik"`
	Name    string `json:"name"`
	Filings struct {
		Recent struct {
			AccessionNumber []string `json:"accessionNumber"`
			FilingDate      []string `json:"filingDate"`
			ReportDate      []string `json:"reportDate"`
			Form            []string `json:"form"`
			PrimaryDocument []string `json:"primaryDocument"`
		} `json:"recent"`
	} `json:"filings"`
}

// FindFilings returns recent filings of exactly the given form,
// latest report date first.
func (x *FilingIndex) FindFilings(ctx context.Context, cik string, category secmda.Category) ([]*secmda.Filing, error) {
	if cik == "" {
		return nil, secmda.Errorf(secmda.EINVALID, "CIK required")
	}

	url := fmt.Sprintf("%s/CIK%s.json", x.submissionsURL, cik)
	body, err := x.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch submissions for CIK %s: %w", cik, err)
	}

	var sub submissions
	if err := json.Unmarshal([]byte(body), &sub); err != nil {
		return nil, secmda.Errorf(secmda.EINTERNAL, "malformed submissions for CIK %s: %v", cik, err)
	}

	recent := sub.Filings.Recent
	n := len(recent.Form)
	if len(recent.AccessionNumber) != n || len(recent.ReportDate) != n ||
		len(recent.FilingDate) != n || len(recent.PrimaryDocument) != n {
		return nil, secmda.Errorf(secmda.EINTERNAL, "malformed submissions for CIK %s: column lengths differ", cik)
	}

	filings := []*secmda.Filing{}
	for i := range n {
		if recent.Form[i] != string(category) {
			continue
		}
		filings = append(filings, &secmda.Filing{
			CIK:             cik,
			Company:         sub.Name,
			Form:            category,
			AccessionNumber: recent.AccessionNumber[i],
			PrimaryDocument: recent.PrimaryDocument[i],
			ReportDate:      recent.ReportDate[i],
			FilingDate:      recent.FilingDate[i],
		})
	}

	// ISO dates order lexically.
	slices.SortStableFunc(filings, func(a, b *secmda.Filing) int {
		return cmp.Compare(b.ReportDate, a.ReportDate)
	})

	return filings, nil
}
