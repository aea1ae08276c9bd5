// Package currencyutils converts between currency text and integer minor
// units (cents).
package currencyutils

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// StandardizeAmount removes a leading "$" (optionally after a minus sign),
// surrounding whitespace and every "," grouping separator.
func StandardizeAmount(amountStr string) string {
	s := strings.TrimSpace(amountStr)

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = strings.TrimSpace(s[1:])
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if negative {
		return "-" + s
	}
	return s
}

// Amounts are bounded so that cents fit in an int64: at most 17 integer
// digits. Values under a tenth of a cent collapse to zero.
const (
	maxIntegerDigits = 17
	minMagnitude     = -2
)

// ParseDecimal parses plain decimal text, exponent form included. It reports
// false for unparseable or out-of-range input. The magnitude is checked
// before any arithmetic so "1e100000000" costs no more than its length.
func ParseDecimal(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, false
	}
	if d.IsZero() {
		return decimal.Zero, true
	}

	magnitude := int64(d.NumDigits()) + int64(d.Exponent())
	if magnitude > maxIntegerDigits {
		return decimal.Zero, false
	}
	if magnitude < minMagnitude {
		return decimal.Zero, true
	}
	return d, true
}

// ParseAmount standardizes currency text and parses it with ParseDecimal.
func ParseAmount(amountStr string) (decimal.Decimal, bool) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" || standardized == "-" {
		return decimal.Zero, false
	}
	return ParseDecimal(standardized)
}

// ParseMinorUnits parses currency text such as "$1,234.56" into minor units
// (123456). Rounding is half away from zero: "0.005" -> 1, "-0.005" -> -1.
//
// Unparseable, non-finite or out-of-range input returns 0. Callers treat 0
// as "invalid amount"; no error is reported.
func ParseMinorUnits(amountStr string) int64 {
	amount, ok := ParseAmount(amountStr)
	if !ok {
		return 0
	}

	cents := amount.Mul(hundred).Round(0)
	bi := cents.BigInt()
	if !bi.IsInt64() {
		return 0
	}
	return bi.Int64()
}

// ToDecimal converts minor units back into a decimal amount.
func ToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// FormatMinorUnits renders minor units with two decimals and no grouping,
// e.g. 600000 -> "6000.00".
func FormatMinorUnits(cents int64) string {
	return ToDecimal(cents).StringFixed(2)
}

// FormatUSD renders minor units as "$6000.00" (or "-$12.50").
func FormatUSD(cents int64) string {
	if cents < 0 {
		if cents == math.MinInt64 {
			return "-$" + ToDecimal(cents).Abs().StringFixed(2)
		}
		return "-$" + FormatMinorUnits(-cents)
	}
	return "$" + FormatMinorUnits(cents)
}

// PercentOf returns round(cents * percent / 100), rounding half away from
// zero.
func PercentOf(cents int64, percent decimal.Decimal) int64 {
	return decimal.NewFromInt(cents).Mul(percent).Div(hundred).Round(0).IntPart()
}
