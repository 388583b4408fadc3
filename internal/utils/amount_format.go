package utils

import "github.com/shopspring/decimal"

// FormatAmount renders amount with exactly scale decimal places, padding with zeros.
// Example: 1500.25 with scale 4 returns "1500.2500"
func FormatAmount(amount decimal.Decimal, scale int) string {
	return amount.StringFixed(int32(scale))
}
