package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"150.00 USD", "150", true},
		{"1,234.5 TWD", "1234.5", true},
		{"100. USD", "100", true},
		{"約 88 元", "88", true},
		{"USD", "", false},
		{",,, USD", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePrice(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestPriceChange(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     string
		ok       bool
	}{
		{"increase", "100 USD", "120 USD", "+20.00%", true},
		{"decrease", "200 USD", "150 USD", "-25.00%", true},
		{"unchanged", "150.00 USD", "150.00 USD", "0.00%", true},
		{"thousands separators", "1,000 TWD", "1,250 TWD", "+25.00%", true},
		{"rounding", "3 USD", "4 USD", "+33.33%", true},
		{"tie rounds up", "8 USD", "8.01 USD", "+0.13%", true},
		{"negative tie rounds away from zero", "8 USD", "7.99 USD", "-0.13%", true},
		{"tiny drop is zero", "100000", "99999.999", "0.00%", true},
		{"tiny rise is zero", "100000", "100000.001", "0.00%", true},
		{"units ignored", "100 USD", "110 TWD", "+10.00%", true},
		{"absent from", "", "50 X", "", false},
		{"absent to", "50 X", "", "", false},
		{"zero from", "0 X", "50 X", "", false},
		{"malformed", ",, X", "50 X", "", false},
		{"no number", "待定", "50 X", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PriceChange(tt.from, tt.to)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriceChange_SameValueIsZero(t *testing.T) {
	for _, p := range []string{"1 USD", "0.5 X", "99,999.99 TWD", "42"} {
		got, ok := PriceChange(p, p)
		assert.True(t, ok, p)
		assert.Equal(t, "0.00%", got, p)
	}
}
