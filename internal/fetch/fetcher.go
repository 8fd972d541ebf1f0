// Package fetch retrieves raw feed payloads over HTTP.
//
// The fetcher is deliberately dumb: one GET per call, a hard client
// timeout, and the raw body back. Parsing lives in the feeds package.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultTimeout bounds a single feed request end to end.
const DefaultTimeout = 5 * time.Second

// maxBodyBytes caps how much of a response body we read. Feeds are
// small; anything past this is not a feed we want.
const maxBodyBytes = 4 << 20

// Fetcher retrieves feed payloads with a bounded timeout.
// Requests are paced through a shared rate limiter so a digest run
// doesn't burst-hammer every endpoint at once.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

// New creates a Fetcher with the given request timeout.
// A timeout <= 0 falls back to DefaultTimeout.
func New(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		// Up to 10 requests/sec with a burst matching the default
		// source count. Polite without being noticeable.
		limiter: rate.NewLimiter(rate.Limit(10), 8),
	}
}

// Fetch performs a GET against url and returns the response body.
// Any failure (limiter wait, transport, timeout, non-200 status) is
// returned as an error; callers treat every error as "this source
// contributes nothing".
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "newsbrief/1.0 (+https://github.com/abelbrown/newsbrief)")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: HTTP %d %s", url, resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}

	return body, nil
}
