package model

// MaxKeyPoints caps the number of executive-summary bullets kept per report.
const MaxKeyPoints = 5

// Direction is the predicted price movement of a report.
type Direction string

const (
	DirectionBullish Direction = "看漲"
	DirectionBearish Direction = "看跌"
	DirectionNeutral Direction = "中性"
)

// Directions lists the closed direction vocabulary.
var Directions = []Direction{DirectionBullish, DirectionBearish, DirectionNeutral}

// RiskLevel is the overall risk rating of a report. Empty means unknown.
type RiskLevel string

const (
	RiskLow    RiskLevel = "低"
	RiskMedium RiskLevel = "中"
	RiskHigh   RiskLevel = "高"
)

// RiskLevels lists the closed risk vocabulary.
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh}

// PricingPrediction holds the fields of a report's pricing section.
// An empty string means the field was not found.
type PricingPrediction struct {
	TargetPrice  string    // "<value> <unit>", e.g. "150.00 USD"
	CurrentPrice string    // same shape as TargetPrice
	Direction    Direction
	TimeRange    string
}

// Report is one parsed research report. It is built once and not modified.
type Report struct {
	FileName  string
	Version   int
	Date      string // YYYY-MM-DD
	Content   string
	Sections  *Sections
	Pricing   PricingPrediction
	KeyPoints []string
	Risk      RiskLevel
}
