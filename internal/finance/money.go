package finance

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatINR renders an amount in rupees as a display string with the
// currency symbol and grouping, e.g. "₹1,234.50".
func FormatINR(amount float64) string {
	minor := decimal.NewFromFloat(amount).Shift(2).Round(0).IntPart()
	return money.New(minor, money.INR).Display()
}
