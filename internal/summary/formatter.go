package summary

import (
	"fmt"
	"strings"
	"time"

	"ResearchDigest/internal/calculator"
	"ResearchDigest/internal/model"
	"ResearchDigest/internal/parser"
	"ResearchDigest/internal/trend"
)

const (
	placeholder   = "-"
	timeLayout    = "2006-01-02 15:04:05"
	sectionBreak  = "---\n\n"
	noKeyPoints   = "（未提取到關鍵觀點）"
	noTrend       = "需要至少兩份報告才能進行趨勢分析。"
	footerNote    = "*此摘要由自動化腳本生成，如有疑問請查閱原始研究報告。*"
	titleSuffix   = "研究對比摘要"
	noReportsBody = "尚未有研究報告。"
)

// Format renders the comparison summary for reports, which must already be
// sorted by version. generatedAt is printed in the header.
func Format(stockCode string, reports []*model.Report, generatedAt time.Time) string {
	if len(reports) == 0 {
		return fmt.Sprintf("# %s %s\n\n%s\n", stockCode, titleSuffix, noReportsBody)
	}

	var b strings.Builder
	writeHeader(&b, stockCode, reports, generatedAt)
	writePriceTable(&b, reports)
	writeKeyPoints(&b, reports)
	writeRiskTable(&b, reports)
	writeTrend(&b, trend.Evaluate(reports))
	b.WriteString(footerNote)
	b.WriteString("\n")
	return b.String()
}

func writeHeader(b *strings.Builder, stockCode string, reports []*model.Report, generatedAt time.Time) {
	title := stockCode
	if name := parser.StockName(reports[0].Content); name != "" {
		title += " " + name
	}
	b.WriteString(fmt.Sprintf("# %s %s\n\n", title, titleSuffix))
	b.WriteString(fmt.Sprintf("> **生成時間**：%s  \n", generatedAt.Format(timeLayout)))
	b.WriteString(fmt.Sprintf("> **研究報告數量**：%d 份\n\n", len(reports)))
	b.WriteString(sectionBreak)
}

// writePriceTable compares each target price with the last report that had one.
// Reports without a target price show "-" and leave the comparison base unchanged.
func writePriceTable(b *strings.Builder, reports []*model.Report) {
	b.WriteString("## 價格預測變化\n\n")
	b.WriteString("| 版本 | 研究日期 | 目標價格 | 當前價格 | 預測方向 | 時間範圍 | 變化幅度 |\n")
	b.WriteString("|------|---------|---------|---------|---------|---------|---------|\n")

	prevTarget := ""
	for _, r := range reports {
		p := r.Pricing
		change := placeholder
		if prevTarget != "" && p.TargetPrice != "" {
			if c, ok := calculator.PriceChange(prevTarget, p.TargetPrice); ok {
				change = c
			}
		}
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s | %s |\n",
			versionLabel(r), r.Date,
			orDash(p.TargetPrice), orDash(p.CurrentPrice), orDash(string(p.Direction)), orDash(p.TimeRange),
			change))

		if p.TargetPrice != "" {
			prevTarget = p.TargetPrice
		}
	}
	b.WriteString("\n")
	b.WriteString(sectionBreak)
}

func writeKeyPoints(b *strings.Builder, reports []*model.Report) {
	b.WriteString("## 關鍵觀點演變\n\n")
	for _, r := range reports {
		b.WriteString(fmt.Sprintf("### %s - %s\n\n", versionLabel(r), r.Date))
		if len(r.KeyPoints) == 0 {
			b.WriteString("- " + noKeyPoints + "\n")
		}
		for _, point := range r.KeyPoints {
			b.WriteString("- " + point + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(sectionBreak)
}

func writeRiskTable(b *strings.Builder, reports []*model.Report) {
	b.WriteString("## 風險評估變化\n\n")
	b.WriteString("| 版本 | 研究日期 | 風險等級 |\n")
	b.WriteString("|------|---------|---------|\n")
	for _, r := range reports {
		b.WriteString(fmt.Sprintf("| %s | %s | %s |\n", versionLabel(r), r.Date, orDash(string(r.Risk))))
	}
	b.WriteString("\n")
	b.WriteString(sectionBreak)
}

func writeTrend(b *strings.Builder, t *trend.Trend) {
	b.WriteString("## 趨勢分析\n\n")
	if t == nil {
		b.WriteString(noTrend + "\n\n")
		b.WriteString(sectionBreak)
		return
	}

	if d := t.Direction; d != nil {
		if d.Changed {
			b.WriteString(fmt.Sprintf("**預測方向變化**：從「%s」轉為「%s」\n\n", d.From, d.To))
		} else {
			b.WriteString(fmt.Sprintf("**預測方向**：維持「%s」\n\n", d.To))
		}
	}
	if p := t.Price; p != nil {
		b.WriteString(fmt.Sprintf("**目標價格變化**：從 %s 到 %s（%s）\n\n", p.From, p.To, p.Change))
	}
	b.WriteString(sectionBreak)
}

func versionLabel(r *model.Report) string {
	return fmt.Sprintf("v%03d", r.Version)
}

func orDash(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}
