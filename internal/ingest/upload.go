package ingest

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fundsight/Fund-Analytics-Backend/internal/apperrors"
	"github.com/fundsight/Fund-Analytics-Backend/internal/model"
)

// upload schema column names. Sectors and holdings are colon/comma
// delimited mini-records ("Financial:32,Technology:18"); fields using
// the delimiter must be quoted in the CSV.
const (
	uploadColName          = "name"
	uploadColCategory      = "category"
	uploadColAUM           = "aum"
	uploadColNav           = "nav"
	uploadColExpenseRatio  = "expenseRatio"
	uploadColOneYear       = "oneYearReturn"
	uploadColThreeYear     = "threeYearReturn"
	uploadColFiveYear      = "fiveYearReturn"
	uploadColRiskLevel     = "riskLevel"
	uploadColInceptionDate = "inceptionDate"
	uploadColFundManager   = "fundManager"
	uploadColBenchmark     = "benchmark"
	uploadColSectors       = "sectors"
	uploadColHoldings      = "holdings"
)

// uploadRiskLevels is the accepted risk vocabulary for uploads. Values
// outside it normalize to Moderate so uploaded records stay canonical.
var uploadRiskLevels = map[string]model.RiskLevel{
	string(model.RiskLow):            model.RiskLow,
	string(model.RiskLowToModerate):  model.RiskLowToModerate,
	string(model.RiskModerate):       model.RiskModerate,
	string(model.RiskModeratelyHigh): model.RiskModeratelyHigh,
	string(model.RiskHigh):           model.RiskHigh,
	string(model.RiskVeryHigh):       model.RiskVeryHigh,
}

// ParseUpload parses a user-supplied CSV in the upload schema into
// canonical fund records.
//
// Unlike the feed parser, rows without a name are not dropped: they get
// a positional "Fund N" placeholder, matching the dashboard's upload
// behavior. NAV has no 100.0 sentinel on this path; absent values stay 0.
func ParseUpload(csvText string) ([]model.FundRecord, error) {
	reader := newCSVReader(csvText)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidCSVHeaders, err)
	}
	columns := headerIndex(header)
	if len(columns) == 0 {
		return nil, apperrors.ErrInvalidCSVHeaders
	}

	now := time.Now()
	records := []model.FundRecord{}
	index := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", apperrors.ErrIngestion, index+2, err)
		}
		records = append(records, mapUploadRow(index, fieldGetter(columns, row), now))
		index++
	}

	if len(records) == 0 {
		return nil, apperrors.ErrEmptyCSV
	}
	return records, nil
}

// mapUploadRow converts one upload data row into a canonical record.
func mapUploadRow(index int, get func(string) string, now time.Time) model.FundRecord {
	return model.FundRecord{
		ID:           fmt.Sprintf("fund-%d", index+1),
		Name:         defaultString(get(uploadColName), fmt.Sprintf("Fund %d", index+1)),
		Category:     defaultString(get(uploadColCategory), "Unknown"),
		AUM:          nonNegative(safeFloat(get(uploadColAUM))),
		Nav:          nonNegative(safeFloat(get(uploadColNav))),
		ExpenseRatio: nonNegative(safeFloat(get(uploadColExpenseRatio))),
		Returns: model.Returns{
			OneYear:   safeFloat(get(uploadColOneYear)),
			ThreeYear: safeFloat(get(uploadColThreeYear)),
			FiveYear:  safeFloat(get(uploadColFiveYear)),
		},
		RiskLevel:     uploadRiskLevel(get(uploadColRiskLevel)),
		InceptionDate: defaultString(get(uploadColInceptionDate), now.Format("2006-01-02")),
		FundManager:   defaultString(get(uploadColFundManager), "N/A"),
		SubCategory:   "N/A",
		Benchmark:     strings.TrimSpace(get(uploadColBenchmark)),
		Sectors:       parseSectors(get(uploadColSectors)),
		Holdings:      parseHoldings(get(uploadColHoldings)),
	}
}

// uploadRiskLevel normalizes a free-form risk string against the fixed
// vocabulary, defaulting to Moderate.
func uploadRiskLevel(value string) model.RiskLevel {
	if level, ok := uploadRiskLevels[strings.TrimSpace(value)]; ok {
		return level
	}
	return model.RiskModerate
}

// parseSectors parses a "Financial:32,Technology:18" mini-record.
// An empty field or any malformed pair yields nil; partial sector data
// is worse than none for the allocation chart.
func parseSectors(data string) []model.SectorAllocation {
	pairs, ok := parsePairs(data)
	if !ok {
		return nil
	}
	sectors := make([]model.SectorAllocation, len(pairs))
	for i, p := range pairs {
		sectors[i] = model.SectorAllocation{Name: p.name, Allocation: p.value}
	}
	return sectors
}

// parseHoldings parses a "HDFC Bank:8.5,Infosys:6.2" mini-record with
// the same all-or-nothing policy as parseSectors.
func parseHoldings(data string) []model.Holding {
	pairs, ok := parsePairs(data)
	if !ok {
		return nil
	}
	holdings := make([]model.Holding, len(pairs))
	for i, p := range pairs {
		holdings[i] = model.Holding{Name: p.name, Percentage: p.value}
	}
	return holdings
}

type namedValue struct {
	name  string
	value float64
}

func parsePairs(data string) ([]namedValue, bool) {
	if strings.TrimSpace(data) == "" {
		return nil, false
	}
	parts := strings.Split(data, ",")
	pairs := make([]namedValue, 0, len(parts))
	for _, part := range parts {
		name, value, found := strings.Cut(part, ":")
		if !found || strings.TrimSpace(name) == "" {
			return nil, false
		}
		pairs = append(pairs, namedValue{
			name:  strings.TrimSpace(name),
			value: safeFloat(value),
		})
	}
	return pairs, true
}
