package fbitda

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// amountTiers are checked in order, the first tier whose floor is reached
// formats the amount. Only the billion tier keeps a decimal digit.
var amountTiers = []struct {
	floor    decimal.Decimal
	fraction int
	template string
}{
	{decimal.New(1, 9), 1, "$1B"},
	{decimal.New(1, 6), 0, "$1 million"},
	{decimal.New(1, 3), 0, "$1K"},
}

// FormatAmount formats a valuation amount for display, the tier quotient
// has no thousands separator:
//
//	>= 1e9  "$2.5B"
//	>= 1e6  "$250 million"
//	>= 1e3  "$250K"
//	else    "$250"
func FormatAmount(amount decimal.Decimal) string {
	for _, t := range amountTiers {
		if amount.GreaterThanOrEqual(t.floor) {
			return formatUSD(amount.Div(t.floor), t.fraction, "", t.template)
		}
	}
	return formatUSD(amount, 0, "", "$1")
}

// formatUSD rounds v to fraction digits and renders it with the dollar grapheme.
// An empty thousand prints the digits bare.
func formatUSD(v decimal.Decimal, fraction int, thousand, template string) string {
	cur := money.GetCurrency(money.USD)
	minor := v.Shift(int32(fraction)).Round(0)
	if !minor.BigInt().IsInt64() {
		// Too large for go-money minor units, printed without separators.
		s := strings.Replace(template, "1", v.Abs().StringFixed(int32(fraction)), 1)
		s = strings.Replace(s, "$", cur.Grapheme, 1)
		if v.IsNegative() {
			s = "-" + s
		}
		return s
	}
	f := money.NewFormatter(fraction, ".", thousand, cur.Grapheme, template)
	return f.Format(minor.IntPart())
}

// FormatClock formats a number of seconds as HH:MM:SS. Hours are not
// wrapped, 100 hours and above simply use more digits.
func FormatClock(totalSeconds int64) string {
	e := NewElapsedTime(totalSeconds)
	return fmt.Sprintf("%02d:%02d:%02d", e.Hours, e.Minutes, e.Seconds)
}
