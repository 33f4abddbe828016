package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// NetworkError describes a feed that could not be downloaded.
// StatusCode is zero when no response was received.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("unexpected status code %d for url %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("could not fetch url %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Fetcher downloads raw feed documents over HTTP
type Fetcher struct {
	client *http.Client
}

// New creates a fetcher using client, or http.DefaultClient when nil
func New(client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client}
}

// WithTimeout creates a fetcher whose requests are bounded by timeout.
// A zero timeout disables the limit.
func WithTimeout(timeout time.Duration) *Fetcher {
	return New(&http.Client{Timeout: timeout})
}

// Fetch issues a GET request and returns the full response body.
// Any non-2xx response is treated as a failure.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	logger := log.WithFields(log.Fields{
		"url": url,
	})
	logger.Info("Fetching feed")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		logger.WithError(err).Error("Feed request failed")
		return nil, &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.WithField("status", resp.StatusCode).Error("Unexpected status code")
		return nil, &NetworkError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("server responded with %s", resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.WithError(err).Error("Failed to read feed body")
		return nil, &NetworkError{URL: url, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	logger.WithFields(log.Fields{
		"status":   resp.StatusCode,
		"bytes":    len(body),
		"duration": time.Since(start).String(),
	}).Info("Fetched feed")

	return body, nil
}
