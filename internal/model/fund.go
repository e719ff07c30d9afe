package model

// RiskLevel is the coarse ordinal risk classification used by the dashboard.
// Values are ordered from least to most risky.
type RiskLevel string

const (
	RiskLow            RiskLevel = "Low"
	RiskLowToModerate  RiskLevel = "Low to Moderate"
	RiskModerate       RiskLevel = "Moderate"
	RiskModeratelyHigh RiskLevel = "Moderately High"
	RiskHigh           RiskLevel = "High"
	RiskVeryHigh       RiskLevel = "Very High"
)

// RiskLevelFromCode maps the feed's numeric 1-6 risk code to a RiskLevel.
// Unrecognized or missing codes map to Moderate, a neutral default rather
// than a measured classification.
func RiskLevelFromCode(code int) RiskLevel {
	switch code {
	case 1:
		return RiskLow
	case 2:
		return RiskLowToModerate
	case 3:
		return RiskModerate
	case 4:
		return RiskModeratelyHigh
	case 5:
		return RiskHigh
	case 6:
		return RiskVeryHigh
	default:
		return RiskModerate
	}
}

// Returns holds the fixed three-horizon return percentages for a fund.
// All three horizons are always present; missing source values default to 0.
type Returns struct {
	OneYear   float64 `json:"1y"`
	ThreeYear float64 `json:"3y"`
	FiveYear  float64 `json:"5y"`
}

// SectorAllocation is one entry of an uploaded fund's sector breakdown.
type SectorAllocation struct {
	Name       string  `json:"name"`
	Allocation float64 `json:"allocation"`
}

// Holding is one entry of an uploaded fund's top-holdings breakdown.
type Holding struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// FundRecord is the canonical in-memory representation of a mutual fund.
//
// Records are normalized on ingestion: numeric fields are never NaN, the
// returns struct always has all three horizons, and every record has a
// non-empty Name and an ID unique within its collection. A Nav of 100.0
// may be the sentinel default rather than a measured value; callers must
// not treat the default as real.
type FundRecord struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Category      string             `json:"category"`
	AUM           float64            `json:"aum"`
	Nav           float64            `json:"nav"`
	ExpenseRatio  float64            `json:"expenseRatio"`
	Returns       Returns            `json:"returns"`
	RiskLevel     RiskLevel          `json:"riskLevel"`
	InceptionDate string             `json:"inceptionDate"`
	FundManager   string             `json:"fundManager"`
	SubCategory   string             `json:"subCategory"`
	Rating        int                `json:"rating"`
	Benchmark     string             `json:"benchmark,omitempty"`
	Sectors       []SectorAllocation `json:"sectors,omitempty"`
	Holdings      []Holding          `json:"holdings,omitempty"`
}
