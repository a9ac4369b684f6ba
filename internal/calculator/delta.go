package calculator

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var priceNumberRe = regexp.MustCompile(`[\d,]+\.?\d*`)

var hundred = decimal.NewFromInt(100)

// ParsePrice returns the leading numeric value of a "<value> <unit>" price
// string, with thousands separators removed. The unit is ignored.
func ParsePrice(price string) (decimal.Decimal, error) {
	token := priceNumberRe.FindString(price)
	if token == "" {
		return decimal.Zero, errors.New("no numeric token in price")
	}
	token = strings.TrimSuffix(strings.ReplaceAll(token, ",", ""), ".")
	if token == "" {
		return decimal.Zero, errors.New("empty numeric token in price")
	}
	return decimal.NewFromString(token)
}

// PriceChange returns the percentage change from one price to another,
// formatted like "+20.00%", "-5.25%" or "0.00%". It reports false when either
// price is absent or unparseable, or when from is zero.
func PriceChange(from, to string) (string, bool) {
	if from == "" || to == "" {
		return "", false
	}
	a, err := ParsePrice(from)
	if err != nil {
		return "", false
	}
	b, err := ParsePrice(to)
	if err != nil {
		return "", false
	}
	if a.IsZero() {
		return "", false
	}

	// Half away from zero; the sign follows the rounded value, so changes
	// that round to zero print as "0.00%" either way.
	change := b.Sub(a).Div(a).Mul(hundred).Round(2)
	sign := ""
	if change.IsPositive() {
		sign = "+"
	}
	return sign + change.StringFixed(2) + "%", true
}
