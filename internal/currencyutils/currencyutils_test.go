package currencyutils

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
	}{
		{"Simple decimal", "150.00", 15000},
		{"One decimal place", "75.5", 7550},
		{"Integer", "200", 20000},
		{"Dollar sign", "$123.45", 12345},
		{"Grouping separator", "$1,234.56", 123456},
		{"Multiple grouping separators", "1,234,567.89", 123456789},
		{"Surrounding spaces", "  42.10  ", 4210},
		{"Negative", "-12.34", -1234},
		{"Negative with dollar sign", "-$12.34", -1234},
		{"Half rounds away from zero", "0.005", 1},
		{"Negative half rounds away from zero", "-0.005", -1},
		{"Below half rounds down", "1.004", 100},
		{"Zero", "0", 0},
		{"Empty", "", 0},
		{"Only dollar sign", "$", 0},
		{"Non-numeric", "abc", 0},
		{"Malformed decimal", "12.34.56", 0},
		{"NaN", "NaN", 0},
		{"Infinity", "Infinity", 0},
		{"Out of range", "999999999999999999999", 0},
		{"Largest whole dollars", "92233720368547758.07", 9223372036854775807},
		{"Exponent form", "1.5e2", 15000},
		{"Large exponent", "1e400", 0},
		{"Huge exponent", "1e100000000", 0},
		{"Huge negative exponent", "1e-100000000", 0},
		{"Tiny with dollar sign", "$5e-4", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseMinorUnits(tc.input))
		})
	}
}

func TestParseMinorUnits_MatchesRoundedHundredths(t *testing.T) {
	for _, s := range []string{"0.01", "19.99", "6000", "1234.5", "0.125", "99.995"} {
		d := decimal.RequireFromString(s)
		expected := d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
		assert.Equal(t, expected, ParseMinorUnits(s), s)
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"12.5", "12.5", true},
		{" 100 ", "100", true},
		{"0e100000000", "0", true},
		{"2.5e1", "25", true},
		{"1e-100000000", "0", true},
		{"1e17", "0", false},
		{"1e100000000", "0", false},
		{"-1e100000000", "0", false},
		{"half", "0", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			d, ok := ParseDecimal(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(d), "got %s", d)
		})
	}
}

func TestParseAmount(t *testing.T) {
	d, ok := ParseAmount("$1,250.00")
	assert.True(t, ok)
	assert.True(t, decimal.NewFromInt(1250).Equal(d))

	_, ok = ParseAmount("$")
	assert.False(t, ok)

	_, ok = ParseAmount("1e30")
	assert.False(t, ok)
}

func TestStandardizeAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"$1,234.56", "1234.56"},
		{" 12 ", "12"},
		{"-$5", "-5"},
		{"- $5", "-5"},
		{"1,000", "1000"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, StandardizeAmount(tc.input), tc.input)
	}
}

func TestFormatMinorUnits(t *testing.T) {
	assert.Equal(t, "6000.00", FormatMinorUnits(600000))
	assert.Equal(t, "0.05", FormatMinorUnits(5))
	assert.Equal(t, "$75.50", FormatUSD(7550))
	assert.Equal(t, "-$12.50", FormatUSD(-1250))
	assert.Contains(t, FormatUSD(math.MinInt64), "-$")
}

func TestPercentOf(t *testing.T) {
	tests := []struct {
		cents    int64
		percent  string
		expected int64
	}{
		{600000, "50", 300000},
		{600000, "0", 0},
		{600000, "100", 600000},
		{1001, "50", 501},
		{999, "33.3333", 333},
		{1, "50", 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, PercentOf(tc.cents, decimal.RequireFromString(tc.percent)))
	}
}
