package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fundsight/Fund-Analytics-Backend/internal/api/handlers"
	"github.com/fundsight/Fund-Analytics-Backend/internal/service"
	"github.com/fundsight/Fund-Analytics-Backend/internal/testutil"
)

func TestHealth(t *testing.T) {
	t.Run("reports healthy with an empty feed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		p, _ := testutil.NewTestProvider(t, testutil.NewFeedCSV().Build())
		handler := handlers.NewSystemHandler(service.NewSystemService(db, p))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()
		handler.Health(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var resp handlers.HealthResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Status != "healthy" || resp.Database != "connected" {
			t.Errorf("Unexpected health payload: %+v", resp)
		}
		if resp.Feed != "empty" {
			t.Errorf("Expected feed 'empty' before ingestion, got '%s'", resp.Feed)
		}
	})

	t.Run("reports the feed loaded after ingestion", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		p, _ := testutil.NewTestProvider(t, testutil.NewFeedCSV().
			AddFund("Alpha Fund", 3).
			Build())
		p.Load(context.Background())
		handler := handlers.NewSystemHandler(service.NewSystemService(db, p))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()
		handler.Health(w, req)

		var resp handlers.HealthResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Feed != "loaded" {
			t.Errorf("Expected feed 'loaded', got '%s'", resp.Feed)
		}
	})

	t.Run("reports unhealthy on a closed database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		if err := db.Close(); err != nil {
			t.Fatalf("Failed to close test database: %v", err)
		}
		p, _ := testutil.NewTestProvider(t, testutil.NewFeedCSV().Build())
		handler := handlers.NewSystemHandler(service.NewSystemService(db, p))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()
		handler.Health(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("Expected status 503, got %d", w.Code)
		}

		var resp handlers.HealthResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Status != "unhealthy" || resp.Database != "disconnected" {
			t.Errorf("Unexpected health payload: %+v", resp)
		}
	})
}

func TestVersion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	p, _ := testutil.NewTestProvider(t, testutil.NewFeedCSV().Build())
	handler := handlers.NewSystemHandler(service.NewSystemService(db, p))

	req := httptest.NewRequest(http.MethodGet, "/api/system/version", nil)
	w := httptest.NewRecorder()
	handler.Version(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp handlers.VersionResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Version == "" {
		t.Error("Expected a non-empty version")
	}
}
