package parser

import (
	"regexp"
	"strings"

	"ResearchDigest/internal/model"
)

// PriceToken matches the numeric part of a price: digits with optional
// thousands separators and decimal point.
const PriceToken = `[\d,]+\.?\d*`

var (
	bulletPrefixes = []string{"- ", "* "}
	stockNameRe    = regexp.MustCompile(`(?m)^#[ \t]*[\p{L}\p{N}_]+[ \t]+(\S+)`)
)

// Extractor pulls typed fields out of section bodies. All methods are total:
// a missing section or non-matching line yields an empty value.
type Extractor struct {
	rules Rules

	targetRe    *regexp.Regexp
	currentRe   *regexp.Regexp
	directionRe *regexp.Regexp
	timeRangeRe *regexp.Regexp
	riskRe      *regexp.Regexp
}

// NewExtractor compiles the label patterns for rules. Empty rule fields fall back to DefaultRules.
func NewExtractor(rules Rules) *Extractor {
	rules = rules.withDefaults()

	directions := make([]string, len(model.Directions))
	for i, d := range model.Directions {
		directions[i] = string(d)
	}
	risks := make([]string, len(model.RiskLevels))
	for i, r := range model.RiskLevels {
		risks[i] = string(r)
	}

	return &Extractor{
		rules:       rules,
		targetRe:    regexp.MustCompile(labelPattern(rules.TargetPriceLabel) + `(` + PriceToken + `)[ \t]*(\S*)`),
		currentRe:   regexp.MustCompile(labelPattern(rules.CurrentPriceLabel) + `(` + PriceToken + `)[ \t]*(\S*)`),
		directionRe: regexp.MustCompile(`(?m)` + labelPattern(rules.DirectionLabel) + vocabulary(directions)),
		timeRangeRe: regexp.MustCompile(labelPattern(rules.TimeRangeLabel) + `([^\r\n]+)`),
		riskRe:      regexp.MustCompile(`(?m)` + labelPattern(rules.RiskLevelLabel) + vocabulary(risks)),
	}
}

// labelPattern matches "label：" or "label:" with optional bold markers and
// spaces or tabs around the colon, staying on one line.
func labelPattern(label string) string {
	return regexp.QuoteMeta(label) + `(?:\*\*)?[ \t]*[：:][ \t]*(?:\*\*)?[ \t]*`
}

// vocabulary matches exactly one of words. The word must end the line or be
// followed by a non-letter, non-digit rune, so "中高" or "中性偏看漲" match
// nothing while "看漲（短期）" still yields "看漲".
func vocabulary(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return `(` + strings.Join(quoted, "|") + `)(?:[^\p{L}\p{N}\r\n]|\r?$)`
}

// Rules returns the effective rules.
func (e *Extractor) Rules() Rules {
	return e.rules
}

// Pricing extracts target price, current price, direction and time range.
func (e *Extractor) Pricing(body string) model.PricingPrediction {
	var p model.PricingPrediction
	if body == "" {
		return p
	}
	p.TargetPrice = matchPrice(e.targetRe, body)
	p.CurrentPrice = matchPrice(e.currentRe, body)
	if m := e.directionRe.FindStringSubmatch(body); m != nil {
		p.Direction = model.Direction(m[1])
	}
	if m := e.timeRangeRe.FindStringSubmatch(body); m != nil {
		p.TimeRange = strings.TrimSpace(m[1])
	}
	return p
}

func matchPrice(re *regexp.Regexp, body string) string {
	m := re.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	unit := strings.TrimSpace(m[2])
	if unit == "" {
		return m[1]
	}
	return m[1] + " " + unit
}

// Risk extracts the overall risk level.
func (e *Extractor) Risk(body string) model.RiskLevel {
	if body == "" {
		return ""
	}
	if m := e.riskRe.FindStringSubmatch(body); m != nil {
		return model.RiskLevel(m[1])
	}
	return ""
}

// KeyPoints returns up to model.MaxKeyPoints bullet lines in document order.
func (e *Extractor) KeyPoints(body string) []string {
	var points []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		for _, prefix := range bulletPrefixes {
			if strings.HasPrefix(line, prefix) {
				points = append(points, strings.TrimSpace(line[len(prefix):]))
				break
			}
		}
		if len(points) == model.MaxKeyPoints {
			break
		}
	}
	return points
}

// StockName returns the first token after the leading word of the first
// top-level heading, e.g. "台積電" from "# 2330 台積電 研究報告". Best effort.
func StockName(content string) string {
	if m := stockNameRe.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return ""
}
