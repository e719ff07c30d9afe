package fundfeed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client defines the interface for fetching the raw fund CSV feed.
// This interface enables dependency injection and testing with mock
// implementations.
type Client interface {
	FetchCSV(ctx context.Context) (string, error)
}

// FeedClient fetches the fund CSV from its configured resource location.
// It wraps an HTTP client and treats any non-success status as a fetch
// failure.
type FeedClient struct {
	httpClient *http.Client
	csvURL     string
}

// NewFeedClient creates a new feed client for the given CSV URL.
// The timeout bounds a single fetch attempt; pass zero for no timeout.
//
// Returns:
//   - *FeedClient: A new client instance ready for use
func NewFeedClient(csvURL string, timeout time.Duration) *FeedClient {
	return &FeedClient{
		httpClient: &http.Client{Timeout: timeout},
		csvURL:     csvURL,
	}
}

// FetchCSV retrieves the raw CSV text from the feed URL.
//
// Returns:
//   - string: The UTF-8 CSV text, header row first
//   - error: If the request fails or the server responds with a
//     non-success status
func (c *FeedClient) FetchCSV(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.csvURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch fund CSV: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("failed to fetch fund CSV: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read fund CSV body: %w", err)
	}

	return string(data), nil
}
