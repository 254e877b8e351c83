// Package http implements secmda.Fetcher and secmda.FilingIndex against
// SEC EDGAR over HTTP.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/secmda"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Annual reports can be several megabytes of HTML.
const DefaultFetchTimeout = 30 * time.Second

// DefaultRateLimit is the default request rate in requests per second.
// EDGAR's fair access policy allows at most 10.
const DefaultRateLimit = 10.0

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Ensure Fetcher implements secmda.Fetcher at compile time.
var _ secmda.Fetcher = (*Fetcher)(nil)

// StatusError is returned for responses other than 200 OK.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// Fetcher retrieves documents from EDGAR. Every request carries the
// configured User-Agent and waits for the shared rate limiter. Transient
// failures are retried with backoff.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	rps       float64
	delays    []time.Duration
	limiter   *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header. EDGAR rejects requests without
// one that identifies the caller, e.g. "Jane Doe jane@example.com".
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRateLimit sets the maximum number of requests per second.
// Defaults to DefaultRateLimit.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		f.rps = rps
	}
}

// WithRetryDelays sets the waits between attempts; one retry per delay.
// Pass no delays to disable retries.
func WithRetryDelays(delays ...time.Duration) Option {
	return func(f *Fetcher) {
		f.delays = delays
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		rps:     DefaultRateLimit,
		delays:  DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}
	f.limiter = rate.NewLimiter(rate.Limit(f.rps), 1)

	return f
}

// Fetch retrieves the body at url, retrying transient failures.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.userAgent == "" {
		return "", secmda.Errorf(secmda.EINVALID, "user agent required for EDGAR requests")
	}

	for attempt := 0; ; attempt++ {
		body, err := f.fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		if attempt >= len(f.delays) || !isTransient(ctx, err) {
			return "", err
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.delays[attempt]):
		}
	}
}

func (f *Fetcher) fetch(ctx context.Context, url string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// isTransient reports whether a failed attempt is worth repeating:
// network errors, throttling and server errors.
func isTransient(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode == http.StatusTooManyRequests || se.StatusCode >= 500
	}
	return true
}
