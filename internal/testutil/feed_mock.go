package testutil

import (
	"context"
	"sync/atomic"
)

// MockFeedClient is a mock implementation of fundfeed.Client for testing.
// It returns predefined CSV text instead of making actual HTTP calls and
// counts fetches so tests can assert cache and single-flight behavior.
type MockFeedClient struct {
	// MockCSV is the CSV text to return from FetchCSV
	MockCSV string
	// MockError is the error to return from FetchCSV
	MockError error
	// fetchCount tracks how many times FetchCSV was called
	fetchCount int64
	// Block, when non-nil, is received from inside FetchCSV so tests
	// can hold the fetch open while concurrent callers pile up.
	Block chan struct{}
}

// NewMockFeedClient creates a mock feed client serving the given CSV text.
func NewMockFeedClient(csvText string) *MockFeedClient {
	return &MockFeedClient{MockCSV: csvText}
}

// FetchCSV mocks the feed fetch with the configured CSV and error.
func (m *MockFeedClient) FetchCSV(ctx context.Context) (string, error) {
	atomic.AddInt64(&m.fetchCount, 1)
	if m.Block != nil {
		select {
		case <-m.Block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if m.MockError != nil {
		return "", m.MockError
	}
	return m.MockCSV, nil
}

// FetchCount reports how many times FetchCSV was called.
func (m *MockFeedClient) FetchCount() int {
	return int(atomic.LoadInt64(&m.fetchCount))
}
