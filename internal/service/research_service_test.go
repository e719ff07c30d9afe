package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fundsight/Fund-Analytics-Backend/internal/llm"
	"github.com/fundsight/Fund-Analytics-Backend/internal/service"
	"github.com/fundsight/Fund-Analytics-Backend/internal/testutil"
)

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the backend answer", func(t *testing.T) {
		mockLLM := &testutil.MockLLMClient{MockAnswer: "Consider index funds."}
		s := testutil.NewTestResearchService(t, mockLLM)

		result := s.Search(ctx, "what should I buy")
		if result.Message != "Consider index funds." {
			t.Errorf("Expected the backend answer, got '%s'", result.Message)
		}
		if len(mockLLM.Prompts) != 1 || mockLLM.Prompts[0] != "what should I buy" {
			t.Errorf("Expected the raw query as prompt, got %v", mockLLM.Prompts)
		}
	})

	t.Run("returns the mock placeholder when research is disabled", func(t *testing.T) {
		s := service.NewResearchService(llm.Disabled{})

		result := s.Search(ctx, "best large cap funds")
		if result.Message != "Mock AI response for query: best large cap funds" {
			t.Errorf("Unexpected placeholder: '%s'", result.Message)
		}
		if s.Enabled() {
			t.Error("Expected the service to report disabled")
		}
	})

	t.Run("degrades to an apology on backend failure", func(t *testing.T) {
		mockLLM := &testutil.MockLLMClient{MockError: errors.New("quota exceeded")}
		s := testutil.NewTestResearchService(t, mockLLM)

		result := s.Search(ctx, "anything")
		if !strings.Contains(result.Message, "temporarily unavailable") {
			t.Errorf("Expected the unavailability message, got '%s'", result.Message)
		}
	})
}

func TestFundResearch(t *testing.T) {
	ctx := context.Background()

	const structuredAnswer = `{
		"researchCharts": {
			"navTrend": {
				"title": "NAV Trend Analysis",
				"description": "Historical NAV performance",
				"dataPoints": [{"date": "2024-01", "value": 45.2}],
				"insights": "Steady growth"
			},
			"aumGrowth": {
				"title": "AUM Growth Trajectory",
				"description": "AUM growth pattern",
				"dataPoints": [{"date": "2024-01", "value": 1250}],
				"insights": "Consistent inflows"
			},
			"riskReturn": {
				"title": "Risk-Return Profile",
				"description": "Comparative analysis",
				"dataPoints": [{"name": "Alpha Fund", "risk": 12.5, "return": 14.2}],
				"insights": "Favorable profile"
			}
		}
	}`

	t.Run("embeds the fund id and timeframe in the prompt", func(t *testing.T) {
		mockLLM := &testutil.MockLLMClient{MockAnswer: "free text"}
		s := testutil.NewTestResearchService(t, mockLLM)

		s.FundResearch(ctx, "12_Alpha Fund", "3y")
		if len(mockLLM.Prompts) != 1 {
			t.Fatalf("Expected 1 prompt, got %d", len(mockLLM.Prompts))
		}
		prompt := mockLLM.Prompts[0]
		if !strings.Contains(prompt, "ID 12_Alpha Fund") {
			t.Errorf("Expected the fund id in the prompt:\n%s", prompt)
		}
		if !strings.Contains(prompt, "for 3y timeframe") {
			t.Errorf("Expected the timeframe in the prompt:\n%s", prompt)
		}
		if !strings.Contains(prompt, `"researchCharts"`) {
			t.Errorf("Expected the JSON structure instructions in the prompt:\n%s", prompt)
		}
	})

	t.Run("defaults an empty timeframe to 1y", func(t *testing.T) {
		mockLLM := &testutil.MockLLMClient{MockAnswer: "free text"}
		s := testutil.NewTestResearchService(t, mockLLM)

		s.FundResearch(ctx, "0_Alpha", "")
		if !strings.Contains(mockLLM.Prompts[0], "for 1y timeframe") {
			t.Errorf("Expected the 1y default in the prompt:\n%s", mockLLM.Prompts[0])
		}
	})

	t.Run("decodes a structured researchCharts answer", func(t *testing.T) {
		mockLLM := &testutil.MockLLMClient{MockAnswer: structuredAnswer}
		s := testutil.NewTestResearchService(t, mockLLM)

		result := s.FundResearch(ctx, "0_Alpha", "1y")
		if result.ResearchCharts == nil {
			t.Fatalf("Expected structured charts, got message '%s'", result.Message)
		}
		if result.Message != "" {
			t.Errorf("Expected no message alongside structured charts, got '%s'", result.Message)
		}
		if result.ResearchCharts.NavTrend.Title != "NAV Trend Analysis" {
			t.Errorf("Unexpected NAV trend title: '%s'", result.ResearchCharts.NavTrend.Title)
		}
		if len(result.ResearchCharts.RiskReturn.DataPoints) != 1 {
			t.Fatalf("Expected 1 risk-return point, got %d",
				len(result.ResearchCharts.RiskReturn.DataPoints))
		}
		if result.ResearchCharts.RiskReturn.DataPoints[0].Risk != 12.5 {
			t.Errorf("Unexpected risk value: %f",
				result.ResearchCharts.RiskReturn.DataPoints[0].Risk)
		}
	})

	t.Run("decodes a fenced structured answer", func(t *testing.T) {
		mockLLM := &testutil.MockLLMClient{MockAnswer: "```json\n" + structuredAnswer + "\n```"}
		s := testutil.NewTestResearchService(t, mockLLM)

		result := s.FundResearch(ctx, "0_Alpha", "1y")
		if result.ResearchCharts == nil {
			t.Fatalf("Expected structured charts from a fenced answer, got message '%s'", result.Message)
		}
	})

	t.Run("falls back to free text for non-JSON answers", func(t *testing.T) {
		mockLLM := &testutil.MockLLMClient{MockAnswer: "The fund looks healthy overall."}
		s := testutil.NewTestResearchService(t, mockLLM)

		result := s.FundResearch(ctx, "0_Alpha", "1y")
		if result.ResearchCharts != nil {
			t.Error("Expected no structured charts for a prose answer")
		}
		if result.Message != "The fund looks healthy overall." {
			t.Errorf("Expected the prose answer, got '%s'", result.Message)
		}
	})
}

func TestCompareFunds(t *testing.T) {
	mockLLM := &testutil.MockLLMClient{MockAnswer: "comparison"}
	s := testutil.NewTestResearchService(t, mockLLM)

	s.CompareFunds(context.Background(), []string{"0_Alpha", "1_Beta", "2_Gamma"})
	if len(mockLLM.Prompts) != 1 {
		t.Fatalf("Expected 1 prompt, got %d", len(mockLLM.Prompts))
	}
	if !strings.Contains(mockLLM.Prompts[0], "0_Alpha, 1_Beta, 2_Gamma") {
		t.Errorf("Expected all ids joined in the prompt:\n%s", mockLLM.Prompts[0])
	}
}

func TestPerformanceDetails(t *testing.T) {
	mockLLM := &testutil.MockLLMClient{MockAnswer: "performance"}
	s := testutil.NewTestResearchService(t, mockLLM)

	s.PerformanceDetails(context.Background(), "3_Delta", "5y")
	prompt := mockLLM.Prompts[0]
	if !strings.Contains(prompt, "fund ID 3_Delta") || !strings.Contains(prompt, "over 5y timeframe") {
		t.Errorf("Expected id and timeframe in the prompt:\n%s", prompt)
	}
}

func TestRiskAnalysis(t *testing.T) {
	mockLLM := &testutil.MockLLMClient{MockAnswer: "risk"}
	s := testutil.NewTestResearchService(t, mockLLM)

	s.RiskAnalysis(context.Background(), "4_Epsilon")
	if !strings.Contains(mockLLM.Prompts[0], "fund ID 4_Epsilon") {
		t.Errorf("Expected the fund id in the prompt:\n%s", mockLLM.Prompts[0])
	}
}
