package parser

// Rules names the section headings and field labels the extractor looks for.
// Headings are matched exactly; labels are matched literally.
type Rules struct {
	PricingSection string
	SummarySection string
	RiskSection    string

	TargetPriceLabel  string
	CurrentPriceLabel string
	DirectionLabel    string
	TimeRangeLabel    string
	RiskLevelLabel    string
}

// DefaultRules returns the Traditional Chinese headings and labels used by the research reports.
func DefaultRules() Rules {
	return Rules{
		PricingSection: "定價預測",
		SummarySection: "執行摘要",
		RiskSection:    "風險評估",

		TargetPriceLabel:  "目標價格",
		CurrentPriceLabel: "當前價格",
		DirectionLabel:    "預測方向",
		TimeRangeLabel:    "時間範圍",
		RiskLevelLabel:    "整體風險等級",
	}
}

// withDefaults fills empty fields from DefaultRules.
func (r Rules) withDefaults() Rules {
	d := DefaultRules()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&r.PricingSection, d.PricingSection)
	fill(&r.SummarySection, d.SummarySection)
	fill(&r.RiskSection, d.RiskSection)
	fill(&r.TargetPriceLabel, d.TargetPriceLabel)
	fill(&r.CurrentPriceLabel, d.CurrentPriceLabel)
	fill(&r.DirectionLabel, d.DirectionLabel)
	fill(&r.TimeRangeLabel, d.TimeRangeLabel)
	fill(&r.RiskLevelLabel, d.RiskLevelLabel)
	return r
}
