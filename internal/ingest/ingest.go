// Package ingest converts raw CSV text into canonical fund records.
//
// Two source schemas are supported: the remote fund feed
// (scheme_name/fund_size_cr/... columns) and the user upload schema
// (name/aum/... columns with sector and holding mini-records). Both map
// into model.FundRecord with the documented defaults; no numeric field
// is ever NaN and rows without a name are dropped, not defaulted.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/fundsight/Fund-Analytics-Backend/internal/apperrors"
	"github.com/fundsight/Fund-Analytics-Backend/internal/model"
)

// RowResult is the outcome of mapping one CSV data row. A row either
// produces a record or is skipped with a reason; skipping is a per-row
// condition, not an error.
type RowResult struct {
	Record  model.FundRecord
	Skipped bool
	Reason  string
}

// Ok wraps a successfully mapped record.
func Ok(record model.FundRecord) RowResult {
	return RowResult{Record: record}
}

// Skipped marks a row excluded from the collection.
func Skipped(reason string) RowResult {
	return RowResult{Skipped: true, Reason: reason}
}

// feed schema column names; column order is not significant and missing
// columns degrade to field defaults, not errors.
const (
	colSchemeName   = "scheme_name"
	colCategory     = "category"
	colFundSize     = "fund_size_cr"
	colNav          = "nav"
	colExpenseRatio = "expense_ratio"
	colFundAge      = "fund_age_yr"
	colRiskLevel    = "risk_level"
	colReturns1Y    = "returns_1yr"
	colReturns3Y    = "returns_3yr"
	colReturns5Y    = "returns_5yr"
	colFundManager  = "fund_manager"
	colRating       = "rating"
	colSubCategory  = "sub_category"
)

// ParseFeed parses the remote feed CSV into canonical fund records.
//
// The first line must be a header row. Individual malformed or
// incomplete rows are skipped and the remainder is parsed; only a
// top-level failure (unreadable header) is an error. The returned slice
// is never nil.
func ParseFeed(csvText string) ([]model.FundRecord, error) {
	results, err := ParseFeedRows(csvText)
	if err != nil {
		return []model.FundRecord{}, err
	}

	records := make([]model.FundRecord, 0, len(results))
	for _, res := range results {
		if res.Skipped {
			log.Printf("ingest: skipping feed row: %s", res.Reason)
			continue
		}
		records = append(records, res.Record)
	}
	return records, nil
}

// ParseFeedRows parses the feed CSV and reports the per-row outcome,
// making the defaults-versus-drop policy auditable row by row.
func ParseFeedRows(csvText string) ([]RowResult, error) {
	reader := newCSVReader(csvText)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrIngestion, err)
	}
	columns := headerIndex(header)

	now := time.Now()
	results := []RowResult{}
	index := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row; skip it and keep parsing the remainder.
			results = append(results, Skipped(fmt.Sprintf("row %d: %v", index+2, err)))
			index++
			continue
		}
		results = append(results, mapFeedRow(index, fieldGetter(columns, row), now))
		index++
	}

	return results, nil
}

// mapFeedRow converts one feed data row into a RowResult, applying the
// canonical field defaults and coercions. index is the zero-based data
// row position used to build a collision-free record ID.
func mapFeedRow(index int, get func(string) string, now time.Time) RowResult {
	name := strings.TrimSpace(get(colSchemeName))
	if name == "" {
		// +2 to report the physical line (header is line 1).
		return Skipped(fmt.Sprintf("row %d: missing %s", index+2, colSchemeName))
	}

	return Ok(model.FundRecord{
		// Combining position and name keeps IDs unique even when scheme
		// names repeat in the feed.
		ID:           fmt.Sprintf("%d_%s", index, name),
		Name:         name,
		Category:     defaultString(get(colCategory), "Unknown"),
		AUM:          nonNegative(safeFloat(get(colFundSize))),
		Nav:          navOrDefault(safeFloat(get(colNav))),
		ExpenseRatio: nonNegative(safeFloat(get(colExpenseRatio))),
		Returns: model.Returns{
			OneYear:   safeFloat(get(colReturns1Y)),
			ThreeYear: safeFloat(get(colReturns3Y)),
			FiveYear:  safeFloat(get(colReturns5Y)),
		},
		InceptionDate: inceptionFromAge(safeFloat(get(colFundAge)), now),
		RiskLevel:     model.RiskLevelFromCode(safeInt(get(colRiskLevel))),
		FundManager:   defaultString(get(colFundManager), "N/A"),
		SubCategory:   defaultString(get(colSubCategory), "N/A"),
		Rating:        safeInt(get(colRating)),
	})
}

// newCSVReader builds a reader tolerant of ragged rows; field counts are
// reconciled against the header by position, with missing cells reading
// as empty.
func newCSVReader(csvText string) *csv.Reader {
	reader := csv.NewReader(strings.NewReader(csvText))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader
}

// headerIndex maps trimmed column names to their positions.
func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	return columns
}

// fieldGetter returns a lookup over one row keyed by column name.
// Unknown columns and short rows yield "".
func fieldGetter(columns map[string]int, row []string) func(string) string {
	return func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}
}

// safeFloat coerces a CSV cell to a float64, mapping anything
// unparseable (including NaN and infinities) to 0.
func safeFloat(value string) float64 {
	num, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return 0
	}
	return num
}

// safeInt coerces a CSV cell to an int, truncating fractional values and
// mapping anything unparseable to 0.
func safeInt(value string) int {
	return int(safeFloat(value))
}

// nonNegative treats negative values as parse failures, coercing them to
// the documented 0 default.
func nonNegative(value float64) float64 {
	if value < 0 {
		return 0
	}
	return value
}

// navOrDefault substitutes the 100.0 sentinel when the NAV is absent,
// unparseable, or non-positive. The sentinel is not a measured value.
func navOrDefault(nav float64) float64 {
	if nav <= 0 {
		return 100.0
	}
	return nav
}

// inceptionFromAge back-computes an ISO inception date from a
// fund-age-in-years figure: January 1 of currentYear - floor(age). This
// is a lossy approximation carried over for compatibility with displayed
// dates, not a true inception day. Age 0 or unparseable yields today.
func inceptionFromAge(ageYears float64, now time.Time) string {
	if ageYears == 0 {
		return now.Format("2006-01-02")
	}
	inceptionYear := now.Year() - int(math.Floor(ageYears))
	return fmt.Sprintf("%04d-01-01", inceptionYear)
}

// defaultString substitutes def for empty or whitespace-only values.
func defaultString(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}
