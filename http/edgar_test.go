package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/secmda"
	secmdahttp "github.com/fwojciec/secmda/http"
	"github.com/fwojciec/secmda/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tickersJSON = `{
	"0": {"cik_str": 320193, "ticker": "AAPL", "title": "Apple Inc."},
	"1": {"cik_str": 789019, "ticker": "MSFT", "title": "MICROSOFT CORP"}
}`

const submissionsJSON = `{
	"cik": "320193",
	"name": "Apple Inc.",
	"filings": {
		"recent": {
			"accessionNumber": ["0000320193-24-000081", "0000320193-24-000123", "0000320193-23-000106", "0000320193-24-000069", "0000320193-24-000200"],
			"filingDate":      ["2024-08-02", "2024-11-01", "2023-11-03", "2024-05-03", "2024-12-01"],
			"reportDate":      ["2024-06-29", "2024-09-28", "2023-09-30", "2024-03-30", "2024-09-28"],
			"form":            ["10-Q", "10-K", "10-K", "10-Q", "10-K/A"],
			"primaryDocument": ["aapl-20240629.htm", "aapl-20240928.htm", "aapl-20230930.htm", "aapl-20240330.htm", "aapl-20240928a.htm"]
		}
	}
}`

func TestFilingIndex_LookupCIK(t *testing.T) {
	t.Parallel()

	t.Run("returns zero-padded CIK for ticker in any case", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				assert.Equal(t, secmdahttp.DefaultTickersURL, url)
				return tickersJSON, nil
			},
		}
		index := secmdahttp.NewFilingIndex(fetcher)

		cik, err := index.LookupCIK(context.Background(), " aapl ")

		require.NoError(t, err)
		assert.Equal(t, "0000320193", cik)
	})

	t.Run("downloads the ticker table once", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				calls.Add(1)
				return tickersJSON, nil
			},
		}
		index := secmdahttp.NewFilingIndex(fetcher)

		var wg sync.WaitGroup
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = index.LookupCIK(context.Background(), "MSFT")
			}()
		}
		wg.Wait()
		_, err := index.LookupCIK(context.Background(), "AAPL")

		require.NoError(t, err)
		assert.LessOrEqual(t, calls.Load(), int32(5))
		before := calls.Load()
		_, _ = index.LookupCIK(context.Background(), "AAPL")
		assert.Equal(t, before, calls.Load())
	})

	t.Run("returns ENOTFOUND for unknown ticker", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) { return tickersJSON, nil },
		}
		index := secmdahttp.NewFilingIndex(fetcher)

		_, err := index.LookupCIK(context.Background(), "ZZZZ")

		require.Error(t, err)
		assert.Equal(t, secmda.ENOTFOUND, secmda.ErrorCode(err))
	})

	t.Run("rejects empty ticker", func(t *testing.T) {
		t.Parallel()

		index := secmdahttp.NewFilingIndex(nil)

		_, err := index.LookupCIK(context.Background(), "  ")

		assert.Equal(t, secmda.EINVALID, secmda.ErrorCode(err))
	})

	t.Run("propagates fetch errors and retries on next call", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				if calls.Add(1) == 1 {
					return "", errors.New("connection reset")
				}
				return tickersJSON, nil
			},
		}
		index := secmdahttp.NewFilingIndex(fetcher)

		_, err := index.LookupCIK(context.Background(), "AAPL")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")

		cik, err := index.LookupCIK(context.Background(), "AAPL")
		require.NoError(t, err)
		assert.Equal(t, "0000320193", cik)
	})

	t.Run("reports malformed ticker table", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) { return "<html>", nil },
		}
		index := secmdahttp.NewFilingIndex(fetcher)

		_, err := index.LookupCIK(context.Background(), "AAPL")

		assert.Equal(t, secmda.EINTERNAL, secmda.ErrorCode(err))
	})
}

func TestFilingIndex_FindFilings(t *testing.T) {
	t.Parallel()

	t.Run("returns filings of the exact form latest first", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				assert.Equal(t, "https://data.sec.gov/submissions/CIK0000320193.json", url)
				return submissionsJSON, nil
			},
		}
		index := secmdahttp.NewFilingIndex(fetcher)

		filings, err := index.FindFilings(context.Background(), "0000320193", secmda.Form10K)

		require.NoError(t, err)
		require.Len(t, filings, 2)
		assert.Equal(t, "2024-09-28", filings[0].ReportDate)
		assert.Equal(t, "0000320193-24-000123", filings[0].AccessionNumber)
		assert.Equal(t, "Apple Inc.", filings[0].Company)
		assert.Equal(t, secmda.Form10K, filings[0].Form)
		assert.Equal(t, "https://www.sec.gov/Archives/edgar/data/320193/000032019324000123/aapl-20240928.htm", filings[0].URL())
		assert.Equal(t, "2023-09-30", filings[1].ReportDate)
	})

	t.Run("sorts quarterly reports by report date", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) { return submissionsJSON, nil },
		}
		index := secmdahttp.NewFilingIndex(fetcher)

		filings, err := index.FindFilings(context.Background(), "0000320193", secmda.Form10Q)

		require.NoError(t, err)
		require.Len(t, filings, 2)
		assert.Equal(t, "2024-06-29", filings[0].ReportDate)
		assert.Equal(t, "2024-03-30", filings[1].ReportDate)
	})

	t.Run("returns empty slice when no filings match", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return `{"name":"X","filings":{"recent":{"accessionNumber":[],"filingDate":[],"reportDate":[],"form":[],"primaryDocument":[]}}}`, nil
			},
		}
		index := secmdahttp.NewFilingIndex(fetcher)

		filings, err := index.FindFilings(context.Background(), "0000000001", secmda.Form10K)

		require.NoError(t, err)
		assert.NotNil(t, filings)
		assert.Empty(t, filings)
	})

	t.Run("rejects column length mismatch", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return `{"filings":{"recent":{"accessionNumber":["a"],"filingDate":[],"reportDate":["2024-01-01"],"form":["10-K"],"primaryDocument":["d"]}}}`, nil
			},
		}
		index := secmdahttp.NewFilingIndex(fetcher)

		_, err := index.FindFilings(context.Background(), "0000000001", secmda.Form10K)

		assert.Equal(t, secmda.EINTERNAL, secmda.ErrorCode(err))
	})
}

func TestFilingIndex_OverHTTP(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/files/company_tickers.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(tickersJSON))
	})
	mux.HandleFunc("/submissions/CIK0000320193.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(submissionsJSON))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	fetcher := secmdahttp.NewFetcher(
		secmdahttp.WithUserAgent(testUserAgent),
		secmdahttp.WithRateLimit(1000),
	)
	index := secmdahttp.NewFilingIndex(fetcher,
		secmdahttp.WithTickersURL(server.URL+"/files/company_tickers.json"),
		secmdahttp.WithSubmissionsURL(server.URL+"/submissions/"),
	)

	cik, err := index.LookupCIK(context.Background(), "AAPL")
	require.NoError(t, err)

	filings, err := index.FindFilings(context.Background(), cik, secmda.Form10Q)
	require.NoError(t, err)
	require.Len(t, filings, 2)
	assert.Equal(t, "aapl-20240629.htm", filings[0].PrimaryDocument)
}
