package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Error kinds at the fetch/extract boundary. The dispatcher records either as
// a per-engine failure; distinguishing them keeps the door open for
// kind-specific policies later.
var (
	ErrFetch   = errors.New("fetch failed")
	ErrExtract = errors.New("extract failed")
)

// Fetcher performs a single outbound GET and returns the raw response text.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// fetcher returns the configured Fetcher, defaulting to the HTTP one.
func fetcher() Fetcher {
	if cfg.Fetcher != nil {
		return cfg.Fetcher
	}
	return httpFetcher{}
}

// httpFetcher fetches search pages with browser-like headers. It prefers the
// stealth BrowserClient (Chrome TLS fingerprint) when one is configured,
// since several engines fingerprint plain Go clients.
type httpFetcher struct{}

func (httpFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	metrics.FetchRequests.Add(1)

	if cfg.BrowserClient != nil {
		data, _, status, err := cfg.BrowserClient.Do("GET", rawURL, ChromeHeaders(), nil)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrFetch, err)
		}
		if status != http.StatusOK {
			return "", fmt.Errorf("%w: status %d", ErrFetch, status)
		}
		return string(data), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("User-Agent", RandomUserAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrFetch, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrFetch, err)
	}
	return string(data), nil
}
