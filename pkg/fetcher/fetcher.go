// Package fetcher retrieves upstream district pages and hands back parsed
// documents. It owns the user-agent header and the revalidation-window
// reuse; retry and backoff stay with the caller.
package fetcher

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"burnday/pkg/caching"
)

// DefaultUserAgent identifies this scraper to the district sites.
const DefaultUserAgent = "burn-day-status/1.0"

// StatusError is the fatal error for a non-2xx upstream response. It carries
// the HTTP status so callers can log or branch on it; the core never retries.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream fetch failed: %d %s", e.Code, e.Status)
}

// Fetcher fetches pages with a fixed user agent, optionally reusing bodies
// cached inside the revalidation window.
type Fetcher struct {
	client    *http.Client
	cache     *caching.Cache
	userAgent string
}

// New builds a Fetcher. cache may be nil to disable revalidation reuse.
func New(userAgent string, cache *caching.Cache) *Fetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Fetcher{
		client:    &http.Client{Timeout: 30 * time.Second},
		cache:     cache,
		userAgent: userAgent,
	}
}

// Get fetches url and parses the body into a queryable document.
func (f *Fetcher) Get(url string) (*goquery.Document, error) {
	body, err := f.GetBytes(url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// GetBytes fetches the raw body for url, serving it from the revalidation
// cache when fresh. Any non-2xx response is a fatal *StatusError.
func (f *Fetcher) GetBytes(url string) ([]byte, error) {
	if f.cache != nil {
		if data, ok := f.cache.Get(url); ok {
			return data, nil
		}
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if f.cache != nil {
		// Cache write failures are not fetch failures.
		_ = f.cache.Set(url, body)
	}
	return body, nil
}
