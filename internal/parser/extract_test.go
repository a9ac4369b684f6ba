package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ResearchDigest/internal/model"
)

func TestExtractor_Pricing(t *testing.T) {
	e := NewExtractor(DefaultRules())

	body := "- 目標價格：1,250.50 TWD\n" +
		"- 當前價格:  980 TWD\n" +
		"- 預測方向：看漲\n" +
		"- 時間範圍：  未來 6-12 個月  \n"

	p := e.Pricing(body)
	assert.Equal(t, "1,250.50 TWD", p.TargetPrice)
	assert.Equal(t, "980 TWD", p.CurrentPrice)
	assert.Equal(t, model.DirectionBullish, p.Direction)
	assert.Equal(t, "未來 6-12 個月", p.TimeRange)
}

func TestExtractor_PricingTolerance(t *testing.T) {
	e := NewExtractor(DefaultRules())

	tests := []struct {
		name string
		body string
		want string
	}{
		{"half-width colon", "目標價格:150 USD", "150 USD"},
		{"space before colon", "目標價格 ：150 USD", "150 USD"},
		{"tabs", "目標價格\t:\t150.00\tUSD", "150.00 USD"},
		{"bold label", "- **目標價格**：150 USD", "150 USD"},
		{"bold label colon inside", "- **目標價格：** 150 USD", "150 USD"},
		{"unit glued", "目標價格：150元", "150 元"},
		{"no unit", "目標價格：150", "150"},
		{"unit not taken from next line", "目標價格：150\n當前價格：120 USD", "150"},
		{"no number", "目標價格：待定", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Pricing(tt.body).TargetPrice)
		})
	}
}

func TestExtractor_PricingPartial(t *testing.T) {
	e := NewExtractor(DefaultRules())

	p := e.Pricing("目標價格：100 USD\n其他內容")
	assert.Equal(t, "100 USD", p.TargetPrice)
	assert.Empty(t, p.CurrentPrice)
	assert.Empty(t, p.Direction)
	assert.Empty(t, p.TimeRange)

	assert.Equal(t, model.PricingPrediction{}, e.Pricing(""))
}

func TestExtractor_Direction(t *testing.T) {
	e := NewExtractor(DefaultRules())

	tests := []struct {
		body string
		want model.Direction
	}{
		{"預測方向：看漲", model.DirectionBullish},
		{"預測方向: 看跌", model.DirectionBearish},
		{"預測方向 ： 中性", model.DirectionNeutral},
		{"預測方向：看漲（短期）", model.DirectionBullish},
		{"預測方向：震盪", ""},
		{"預測方向：bullish", ""},
		{"方向：看漲", ""},
		{"預測方向：中性偏看漲", ""},
		{"預測方向：看漲趨勢", ""},
		{"預測方向：看跌。\r\n時間範圍：一季", model.DirectionBearish},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.Pricing(tt.body).Direction, tt.body)
	}
}

func TestExtractor_Risk(t *testing.T) {
	e := NewExtractor(DefaultRules())

	assert.Equal(t, model.RiskMedium, e.Risk("### 細項\n- 整體風險等級：中"))
	assert.Equal(t, model.RiskHigh, e.Risk("**整體風險等級**: 高"))
	assert.Equal(t, model.RiskLow, e.Risk("整體風險等級：低"))
	assert.Equal(t, model.RiskLevel(""), e.Risk("整體風險等級：未知"))
	assert.Equal(t, model.RiskLevel(""), e.Risk("風險等級：高"))
	assert.Equal(t, model.RiskLevel(""), e.Risk(""))
}

func TestExtractor_RiskRejectsCompoundValues(t *testing.T) {
	e := NewExtractor(DefaultRules())

	tests := []struct {
		body string
		want model.RiskLevel
	}{
		{"整體風險等級：中高", ""},
		{"整體風險等級：低至中", ""},
		{"整體風險等級：高2", ""},
		{"整體風險等級：高（需留意匯率）", model.RiskHigh},
		{"整體風險等級：**中**", model.RiskMedium},
		{"整體風險等級：低\r\n其他：中高", model.RiskLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.Risk(tt.body), tt.body)
	}
}

func TestExtractor_KeyPoints(t *testing.T) {
	e := NewExtractor(DefaultRules())

	body := "前言\n" +
		"- 第一點\n" +
		"  * 第二點  \n" +
		"-沒有空格\n" +
		"+ 不是列表\n" +
		"1. 編號不算\n" +
		"- 第三點\n"
	assert.Equal(t, []string{"第一點", "第二點", "第三點"}, e.KeyPoints(body))
	assert.Empty(t, e.KeyPoints(""))
}

func TestExtractor_KeyPointsCap(t *testing.T) {
	e := NewExtractor(DefaultRules())

	body := "- 1\n- 2\n- 3\n- 4\n- 5\n- 6\n- 7\n"
	points := e.KeyPoints(body)
	assert.Len(t, points, model.MaxKeyPoints)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, points)
}

func TestExtractor_CustomRules(t *testing.T) {
	e := NewExtractor(Rules{
		PricingSection:   "Pricing Prediction",
		TargetPriceLabel: "Target Price",
	})

	assert.Equal(t, "Pricing Prediction", e.Rules().PricingSection)
	assert.Equal(t, "執行摘要", e.Rules().SummarySection)
	assert.Equal(t, "150 USD", e.Pricing("- Target Price: 150 USD").TargetPrice)
}

func TestStockName(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"# 2330 台積電 研究報告 v1\n", "台積電"},
		{"前言\n#  AAPL   Apple Inc.\n", "Apple"},
		{"## 2330 台積電\n", ""},
		{"# 標題\n", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StockName(tt.content), tt.content)
	}
}
