package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fundsight/Fund-Analytics-Backend/internal/api/handlers"
	"github.com/fundsight/Fund-Analytics-Backend/internal/model"
	"github.com/fundsight/Fund-Analytics-Backend/internal/testutil"
)

func newGatewayHandler(t *testing.T, csvText string, mockLLM *testutil.MockLLMClient) *handlers.GatewayHandler {
	t.Helper()

	fundService, _ := testutil.NewTestFundService(t, csvText)
	research := testutil.NewTestResearchService(t, mockLLM)
	dispatcher := testutil.NewTestDispatcher(t, fundService, research)
	return handlers.NewGatewayHandler(dispatcher)
}

func TestGatewayDispatch(t *testing.T) {
	t.Run("serves known endpoints through the dispatcher", func(t *testing.T) {
		handler := newGatewayHandler(t, testutil.NewFeedCSV().
			AddFund("Alpha Fund", 3).
			Build(), &testutil.MockLLMClient{})

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/funds",
			map[string]string{"*": "funds"})
		w := httptest.NewRecorder()
		handler.Dispatch(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		if w.Header().Get("X-Endpoint-Unhandled") != "" {
			t.Error("Expected no unhandled marker for a known endpoint")
		}

		var funds []model.FundRecord
		if err := json.NewDecoder(w.Body).Decode(&funds); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(funds) != 1 {
			t.Errorf("Expected 1 fund, got %d", len(funds))
		}
	})

	t.Run("forwards query parameters to search", func(t *testing.T) {
		mockLLM := &testutil.MockLLMClient{MockAnswer: "answer"}
		handler := newGatewayHandler(t, testutil.NewFeedCSV().Build(), mockLLM)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/search?q=large+cap",
			map[string]string{"*": "search"})
		w := httptest.NewRecorder()
		handler.Dispatch(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		if len(mockLLM.Prompts) != 1 || mockLLM.Prompts[0] != "large cap" {
			t.Errorf("Expected the q parameter to reach the backend, got %v", mockLLM.Prompts)
		}
	})

	t.Run("resolves unknown endpoints to an empty object", func(t *testing.T) {
		handler := newGatewayHandler(t, testutil.NewFeedCSV().Build(), &testutil.MockLLMClient{})

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/portfolio/summary",
			map[string]string{"*": "portfolio/summary"})
		w := httptest.NewRecorder()
		handler.Dispatch(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200 even for an unknown endpoint, got %d", w.Code)
		}
		if w.Header().Get("X-Endpoint-Unhandled") != "true" {
			t.Error("Expected the X-Endpoint-Unhandled marker")
		}

		var obj map[string]any
		if err := json.NewDecoder(w.Body).Decode(&obj); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(obj) != 0 {
			t.Errorf("Expected an empty object, got %v", obj)
		}
	})
}
