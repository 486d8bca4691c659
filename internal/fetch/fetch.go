// Package fetch retrieves raw page text for the extraction pipeline.
//
// The fetcher degrades instead of failing: any transport error or non-200
// status is retried once after a fixed delay, and a second failure returns
// the empty string so one broken source never aborts a build. Downstream
// code treats an empty page as "zero events".
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/gorillacarts/stadium-calendars/internal/logger"
)

const (
	UserAgent      = "Gorilla-StadiumCalendars/1.0 (+calendar automation)"
	acceptLanguage = "en-GB,en;q=0.9"
	Timeout        = 60 * time.Second

	retryDelay = 2 * time.Second
	maxRetries = 1
)

// Fetcher retrieves raw page text over HTTP.
type Fetcher struct {
	client     *http.Client
	retryDelay time.Duration
}

// New creates a Fetcher with the fixed request timeout.
func New() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: Timeout,
		},
		retryDelay: retryDelay,
	}
}

// Page returns the body of url, or the empty string when both attempts
// fail. Each failed attempt is logged; no error ever propagates.
func (f *Fetcher) Page(url string) string {
	var body string
	attempt := 0
	op := func() error {
		attempt++
		b, err := f.get(url)
		if err != nil {
			logger.Warn("fetch attempt failed", logger.Fields{
				"url":     url,
				"attempt": attempt,
				"error":   err.Error(),
			})
			return err
		}
		body = b
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(f.retryDelay), maxRetries)
	if err := backoff.Retry(op, policy); err != nil {
		return ""
	}
	return body
}

func (f *Fetcher) get(url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept-Language", acceptLanguage)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(b), nil
}
