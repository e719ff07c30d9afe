package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/fundsight/Fund-Analytics-Backend/internal/apperrors"
	"github.com/fundsight/Fund-Analytics-Backend/internal/llm"
	"github.com/fundsight/Fund-Analytics-Backend/internal/model"
)

// DefaultTimeframe is used when a research call omits the timeframe.
const DefaultTimeframe = "1y"

// ResearchService answers natural-language and structured fund research
// queries through the configured LLM client.
//
// Failure policy: no method ever returns an error. A missing API key or
// a failing backend degrades to a placeholder message, so the chat and
// research panels render a visible fallback instead of crashing.
type ResearchService struct {
	llm llm.Client
}

// NewResearchService creates a new ResearchService with the provided
// LLM client.
func NewResearchService(client llm.Client) *ResearchService {
	return &ResearchService{llm: client}
}

// Enabled reports whether a real research backend is configured.
func (s *ResearchService) Enabled() bool {
	return s.llm.Enabled()
}

// Search answers a free-text query. Caller-supplied text is embedded in
// the prompt verbatim; it is treated as trusted input.
func (s *ResearchService) Search(ctx context.Context, query string) model.SearchResult {
	return model.SearchResult{Message: s.generate(ctx, query)}
}

// FundResearch produces the structured research payload for one fund.
// When the backend returns the expected researchCharts JSON it is
// decoded and passed through; anything else degrades to free text.
func (s *ResearchService) FundResearch(ctx context.Context, fundID, timeframe string) model.ResearchResult {
	if timeframe == "" {
		timeframe = DefaultTimeframe
	}

	answer := s.generate(ctx, fundResearchPrompt(fundID, timeframe))

	var structured struct {
		ResearchCharts *model.ResearchCharts `json:"researchCharts"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(answer)), &structured); err == nil && structured.ResearchCharts != nil {
		return model.ResearchResult{ResearchCharts: structured.ResearchCharts}
	}
	return model.ResearchResult{Message: answer}
}

// CompareFunds produces a comparative analysis across several funds.
func (s *ResearchService) CompareFunds(ctx context.Context, fundIDs []string) model.SearchResult {
	return model.SearchResult{Message: s.generate(ctx, comparisonPrompt(fundIDs))}
}

// PerformanceDetails produces a detailed performance analysis for one fund.
func (s *ResearchService) PerformanceDetails(ctx context.Context, fundID, timeframe string) model.SearchResult {
	if timeframe == "" {
		timeframe = DefaultTimeframe
	}
	return model.SearchResult{Message: s.generate(ctx, performancePrompt(fundID, timeframe))}
}

// RiskAnalysis produces a comprehensive risk analysis for one fund.
func (s *ResearchService) RiskAnalysis(ctx context.Context, fundID string) model.SearchResult {
	return model.SearchResult{Message: s.generate(ctx, riskPrompt(fundID))}
}

// generate runs the prompt through the LLM, translating every failure
// into a placeholder answer.
func (s *ResearchService) generate(ctx context.Context, prompt string) string {
	answer, err := s.llm.Generate(ctx, prompt)
	if err == nil {
		return answer
	}

	if errors.Is(err, apperrors.ErrResearchDisabled) {
		return "Mock AI response for query: " + prompt
	}

	log.Printf("research: backend error: %v", err)
	return "Sorry, fund research is temporarily unavailable. Please try again later."
}

// stripCodeFence removes a surrounding markdown code fence, which LLMs
// commonly wrap JSON answers in.
func stripCodeFence(answer string) string {
	trimmed := strings.TrimSpace(answer)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// Prompt builders. Each is a pure function from identifiers to a
// well-formed prompt; identifiers are embedded verbatim.

func fundResearchPrompt(fundID, timeframe string) string {
	return fmt.Sprintf(`Analyze mutual fund with ID %s for %s timeframe.
Return detailed analysis in exactly this JSON structure:
{
  "researchCharts": {
    "navTrend": {
      "title": "NAV Trend Analysis",
      "description": "Historical NAV performance with key insights",
      "dataPoints": [
        { "date": "YYYY-MM format date", "value": "NAV value as number" }
      ],
      "insights": "Brief insights about NAV trend"
    },
    "aumGrowth": {
      "title": "AUM Growth Trajectory",
      "description": "Assets Under Management growth pattern",
      "dataPoints": [
        { "date": "YYYY-MM format date", "value": "AUM value in crores as number" }
      ],
      "insights": "Brief insights about AUM growth"
    },
    "riskReturn": {
      "title": "Risk-Return Profile",
      "description": "Comparative risk and return analysis",
      "dataPoints": [
        { "name": "Fund name", "risk": "Risk value as number", "return": "Return value as number" }
      ],
      "insights": "Brief insights about risk-return profile"
    }
  }
}`, fundID, timeframe)
}

func comparisonPrompt(fundIDs []string) string {
	return fmt.Sprintf(`Compare mutual funds with IDs: %s.
Return comparative analysis in JSON format with performance metrics, risk indicators,
and recommendation for each fund.`, strings.Join(fundIDs, ", "))
}

func performancePrompt(fundID, timeframe string) string {
	return fmt.Sprintf(`Provide detailed performance analysis for mutual fund ID %s over %s timeframe.
Include: returns breakdown (annualized, CAGR, rolling), volatility metrics, benchmark comparison,
performance attribution, and future outlook. Return in structured JSON format.`, fundID, timeframe)
}

func riskPrompt(fundID string) string {
	return fmt.Sprintf(`Provide comprehensive risk analysis for mutual fund ID %s.
Include: volatility measures, downside risk, Sharpe/Sortino ratios, VaR, stress test scenarios,
and risk-adjusted performance. Return in structured JSON format.`, fundID)
}
