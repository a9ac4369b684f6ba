package trend

import (
	"ResearchDigest/internal/calculator"
	"ResearchDigest/internal/model"
)

// MinReports is the number of reports needed for a trend comparison.
const MinReports = 2

// DirectionTrend compares the first and last report's direction.
type DirectionTrend struct {
	From    model.Direction
	To      model.Direction
	Changed bool
}

// PriceTrend compares the first and last report's target price.
type PriceTrend struct {
	From   string
	To     string
	Change string // e.g. "+20.00%"
}

// Trend is the comparison between the earliest and latest report.
// A nil field means the endpoints lacked the data for that comparison.
type Trend struct {
	Direction *DirectionTrend
	Price     *PriceTrend
}

// Evaluate compares the first and last of the ordered reports.
// It returns nil when fewer than MinReports reports are given.
func Evaluate(reports []*model.Report) *Trend {
	if len(reports) < MinReports {
		return nil
	}
	first := reports[0].Pricing
	last := reports[len(reports)-1].Pricing

	t := &Trend{}

	if first.Direction != "" && last.Direction != "" {
		t.Direction = &DirectionTrend{
			From:    first.Direction,
			To:      last.Direction,
			Changed: first.Direction != last.Direction,
		}
	}

	if first.TargetPrice != "" && last.TargetPrice != "" {
		if change, ok := calculator.PriceChange(first.TargetPrice, last.TargetPrice); ok {
			t.Price = &PriceTrend{From: first.TargetPrice, To: last.TargetPrice, Change: change}
		}
	}

	return t
}
