package utils

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// CentsToDollars converts integer minor units into a display amount.
// All amounts cross the API boundary as cents; only edges that render or
// accept dollars go through these two.
func CentsToDollars(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(hundred)
}

// DollarsToCents converts a dollar amount into integer minor units.
// Rounds to the nearest cent, so 12.339 and 12.341 both land on 1234.
func DollarsToCents(dollars decimal.Decimal) int64 {
	return dollars.Mul(hundred).Round(0).IntPart()
}

// DollarStringToCents parses a dollar string like "12.34" into cents.
func DollarStringToCents(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return DollarsToCents(d), nil
}
