package testutil

import (
	"fmt"
	"strings"

	"github.com/fundsight/Fund-Analytics-Backend/internal/model"
)

// FundRecordBuilder provides a fluent interface for creating test fund
// records.
//
// Example usage:
//
//	// Simple creation with defaults
//	fund := testutil.NewFundRecord().Build()
//
//	// Customized record
//	fund := testutil.NewFundRecord().
//	    WithName("Bluechip Growth Fund").
//	    WithNav(45.2).
//	    WithRiskLevel(model.RiskHigh).
//	    Build()
type FundRecordBuilder struct {
	record model.FundRecord
}

// NewFundRecord creates a FundRecordBuilder with sensible defaults.
func NewFundRecord() *FundRecordBuilder {
	name := MakeFundName("Test Fund")
	return &FundRecordBuilder{
		record: model.FundRecord{
			ID:            "0_" + name,
			Name:          name,
			Category:      "Equity",
			AUM:           1200.5,
			Nav:           52.3,
			ExpenseRatio:  0.45,
			Returns:       model.Returns{OneYear: 12.1, ThreeYear: 9.8, FiveYear: 11.2},
			RiskLevel:     model.RiskModerate,
			InceptionDate: "2015-01-01",
			FundManager:   "Test Manager",
			SubCategory:   "Large Cap",
			Rating:        4,
		},
	}
}

// WithID sets a custom ID.
func (b *FundRecordBuilder) WithID(id string) *FundRecordBuilder {
	b.record.ID = id
	return b
}

// WithName sets a custom name.
func (b *FundRecordBuilder) WithName(name string) *FundRecordBuilder {
	b.record.Name = name
	return b
}

// WithNav sets a custom NAV.
func (b *FundRecordBuilder) WithNav(nav float64) *FundRecordBuilder {
	b.record.Nav = nav
	return b
}

// WithAUM sets a custom AUM.
func (b *FundRecordBuilder) WithAUM(aum float64) *FundRecordBuilder {
	b.record.AUM = aum
	return b
}

// WithRiskLevel sets a custom risk level.
func (b *FundRecordBuilder) WithRiskLevel(level model.RiskLevel) *FundRecordBuilder {
	b.record.RiskLevel = level
	return b
}

// WithReturns sets custom returns.
func (b *FundRecordBuilder) WithReturns(oneYear, threeYear, fiveYear float64) *FundRecordBuilder {
	b.record.Returns = model.Returns{OneYear: oneYear, ThreeYear: threeYear, FiveYear: fiveYear}
	return b
}

// Build returns the constructed record.
func (b *FundRecordBuilder) Build() model.FundRecord {
	return b.record
}

// FeedCSVBuilder assembles feed-schema CSV text for ingestion tests.
//
// Example usage:
//
//	csv := testutil.NewFeedCSV().
//	    AddRow("Alpha Fund", "Equity", "1000", "45.2", "0.5", "8", "3", "12", "10", "9", "A Manager", "4", "Large Cap").
//	    Build()
type FeedCSVBuilder struct {
	rows []string
}

// FeedHeader is the canonical feed CSV header row.
const FeedHeader = "scheme_name,category,fund_size_cr,nav,expense_ratio,fund_age_yr,risk_level,returns_1yr,returns_3yr,returns_5yr,fund_manager,rating,sub_category"

// NewFeedCSV creates a builder with the canonical header.
func NewFeedCSV() *FeedCSVBuilder {
	return &FeedCSVBuilder{rows: []string{FeedHeader}}
}

// AddRow appends a data row with all thirteen feed columns.
func (b *FeedCSVBuilder) AddRow(fields ...string) *FeedCSVBuilder {
	b.rows = append(b.rows, strings.Join(fields, ","))
	return b
}

// AddFund appends a reasonable fully-populated row for the given scheme
// name and risk code.
func (b *FeedCSVBuilder) AddFund(name string, riskCode int) *FeedCSVBuilder {
	return b.AddRow(name, "Equity", "1500", "42.5", "0.6", "10", fmt.Sprintf("%d", riskCode),
		"14.2", "11.5", "12.8", "Some Manager", "4", "Large Cap")
}

// AddNameOnly appends a row where every column except scheme_name is empty.
func (b *FeedCSVBuilder) AddNameOnly(name string) *FeedCSVBuilder {
	return b.AddRow(name, "", "", "", "", "", "", "", "", "", "", "", "")
}

// Build returns the CSV text.
func (b *FeedCSVBuilder) Build() string {
	return strings.Join(b.rows, "\n") + "\n"
}
