package fbitda

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// parseNumber converts a raw form value into a decimal.
// It reports false for anything that is not a finite number.
func parseNumber(raw any) (decimal.Decimal, bool) {
	switch v := raw.(type) {
	case decimal.Decimal:
		return finite(v)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Decimal{}, false
		}
		return finite(d)
	case json.Number:
		return parseNumber(string(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Decimal{}, false
		}
		return newDecimal(v), true
	case float32:
		return parseNumber(float64(v))
	case int:
		return newDecimal(v), true
	case int32:
		return newDecimal(v), true
	case int64:
		return newDecimal(v), true
	default:
		return decimal.Decimal{}, false
	}
}

// Orders of magnitude a float64 can hold. Decimals are unbounded, a number
// beyond maxOrder would be infinite once used as a float64 and can make
// arithmetic arbitrarily slow.
const (
	maxOrder = 308
	minOrder = -324
)

// finite reports false for decimals above the float64 range. Decimals below
// it underflow to zero.
func finite(d decimal.Decimal) (decimal.Decimal, bool) {
	if d.IsZero() {
		return decimal.Zero, true
	}
	// order is the power of ten of the leading digit.
	order := int64(d.NumDigits()) + int64(d.Exponent()) - 1
	switch {
	case order > maxOrder:
		return decimal.Decimal{}, false
	case order < minOrder:
		return decimal.Zero, true
	}
	return d, true
}

// parseText converts a raw form value into the text stored verbatim.
func parseText(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// jsonNumber writes a decimal as a plain JSON number rather than the quoted
// string decimal.Decimal marshals to.
func jsonNumber(d decimal.Decimal) json.Number { return json.Number(d.String()) }
