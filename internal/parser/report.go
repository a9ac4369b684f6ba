package parser

import (
	"ResearchDigest/internal/model"
)

// ParseReport builds a Report from a file name and its content.
// The returned report carries whatever metadata the name yields; callers
// decide whether a report without version or date is kept.
func (e *Extractor) ParseReport(fileName, content string) (*model.Report, FileMeta) {
	meta := ParseFileName(fileName)
	sections := SplitSections(content)

	r := &model.Report{
		FileName: fileName,
		Version:  meta.Version,
		Date:     meta.Date,
		Content:  content,
		Sections: sections,
	}

	if body, ok := sections.Get(e.rules.PricingSection); ok {
		r.Pricing = e.Pricing(body)
	}
	if body, ok := sections.Get(e.rules.SummarySection); ok {
		r.KeyPoints = e.KeyPoints(body)
	}
	if body, ok := sections.Get(e.rules.RiskSection); ok {
		r.Risk = e.Risk(body)
	}

	return r, meta
}
