package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/fundsight/Fund-Analytics-Backend/internal/provider"
	"github.com/fundsight/Fund-Analytics-Backend/internal/repository"
	"github.com/fundsight/Fund-Analytics-Backend/internal/service"
)

// NewTestProvider creates a Provider over a mock feed serving the given
// CSV text.
func NewTestProvider(t *testing.T, csvText string) (*provider.Provider, *MockFeedClient) {
	t.Helper()

	feed := NewMockFeedClient(csvText)
	return provider.New(feed), feed
}

// NewTestFundService creates a FundService over a mock feed serving the
// given CSV text.
func NewTestFundService(t *testing.T, csvText string) (*service.FundService, *MockFeedClient) {
	t.Helper()

	p, feed := NewTestProvider(t, csvText)
	return service.NewFundService(p), feed
}

// NewTestResearchService creates a ResearchService over the given LLM
// client.
func NewTestResearchService(t *testing.T, client *MockLLMClient) *service.ResearchService {
	t.Helper()

	return service.NewResearchService(client)
}

// NewTestUploadService creates an UploadService over the given test
// database with raw retention disabled.
func NewTestUploadService(t *testing.T, db *sql.DB) *service.UploadService {
	t.Helper()

	datasetRepo := repository.NewDatasetRepository(db)
	uploadService, err := service.NewUploadService(datasetRepo, "")
	if err != nil {
		t.Fatalf("Failed to create upload service: %v", err)
	}
	return uploadService
}

// NewTestDispatcher creates a Dispatcher over the given services with
// zero artificial latency.
func NewTestDispatcher(t *testing.T, funds *service.FundService, research *service.ResearchService) *service.Dispatcher {
	t.Helper()

	return service.NewDispatcher(funds, research, 0, 0)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeFundName generates a unique fund name for testing.
//
// Example usage:
//
//	name := testutil.MakeFundName("Tech Fund")
//	// Returns: "Tech Fund XYZ789"
func MakeFundName(base string) string {
	if base == "" {
		base = "Fund"
	}
	return base + " " + randomAlphanumeric(6)
}

// MakeDatasetName generates a unique dataset name for testing.
func MakeDatasetName(base string) string {
	if base == "" {
		base = "Dataset"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
