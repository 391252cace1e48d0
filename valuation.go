package fbitda

import "github.com/shopspring/decimal"

// Ceiling is the valuation amount mapped to 100%: one billion.
var Ceiling = decimal.New(1, 9)

var hundred = decimal.NewFromInt(100)

// Valuation is derived from SimulationInputs. It is never mutated directly.
type Valuation struct {
	Amount     decimal.Decimal // full precision, never rounded
	Percentage Percent         // Amount relative to Ceiling, clamped to [0, 100]
	Ceiling    decimal.Decimal
}

// Calculate computes the valuation of the inputs:
//
//	amount     = ebitda * multiple * factorScore
//	percentage = min(amount / ceiling * 100, 100), floored at 0
func Calculate(in SimulationInputs) Valuation {
	amount := in.EBITDA.Mul(in.Multiple).Mul(in.FactorScore)

	pct := amount.Mul(hundred).Div(Ceiling)
	switch {
	case pct.GreaterThan(hundred):
		pct = hundred
	case pct.IsNegative():
		pct = decimal.Zero
	}

	return Valuation{
		Amount:     amount,
		Percentage: Percent(pct.InexactFloat64()),
		Ceiling:    Ceiling,
	}
}

// Equal reports whether both valuations are identical.
func (v Valuation) Equal(w Valuation) bool {
	return v.Amount.Equal(w.Amount) && v.Percentage.Equal(w.Percentage) && v.Ceiling.Equal(w.Ceiling)
}

// String returns the amount formatted for display.
func (v Valuation) String() string { return FormatAmount(v.Amount) }

func (v Valuation) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("amount", jsonNumber(v.Amount))
	w.Append("percentage", float64(v.Percentage))
	w.Append("ceiling", jsonNumber(v.Ceiling))
	w.Append("display", v.String())
	return w.MarshalJSON()
}
