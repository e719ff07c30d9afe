package model

// SearchResult is the free-text answer shape returned by the search
// endpoint when no structured analysis is available.
type SearchResult struct {
	Message string `json:"message"`
}

// ChartPoint is a single dated value in a research chart series.
type ChartPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// RiskReturnPoint is one fund's position in a risk/return scatter.
type RiskReturnPoint struct {
	Name   string  `json:"name"`
	Risk   float64 `json:"risk"`
	Return float64 `json:"return"`
}

// TrendChart is a titled time series with narrative insights.
type TrendChart struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	DataPoints  []ChartPoint `json:"dataPoints"`
	Insights    string       `json:"insights"`
}

// RiskReturnChart is a titled risk/return scatter with narrative insights.
type RiskReturnChart struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	DataPoints  []RiskReturnPoint `json:"dataPoints"`
	Insights    string            `json:"insights"`
}

// ResearchCharts is the structured fund-research payload the dashboard
// renders. The three sub-charts and their field names are a UI contract;
// any backend producing research data must honor this exact shape.
type ResearchCharts struct {
	NavTrend   TrendChart      `json:"navTrend"`
	AumGrowth  TrendChart      `json:"aumGrowth"`
	RiskReturn RiskReturnChart `json:"riskReturn"`
}

// ResearchResult is the envelope for a fund research response. Either
// ResearchCharts is populated (structured analysis) or Message carries
// free text.
type ResearchResult struct {
	ResearchCharts *ResearchCharts `json:"researchCharts,omitempty"`
	Message        string          `json:"message,omitempty"`
}
