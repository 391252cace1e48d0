package fbitda

import "github.com/shopspring/decimal"

// SimulationInputs holds the terms entered by the input team.
type SimulationInputs struct {
	EBITDA       decimal.Decimal
	InterestRate decimal.Decimal // in percent
	Multiple     decimal.Decimal
	FactorScore  decimal.Decimal // between 1 and 5
	CompanyName  string
	Description  string
}

// DefaultInputs returns the inputs every session starts with.
func DefaultInputs() SimulationInputs {
	return SimulationInputs{
		EBITDA:       newDecimal(10),
		InterestRate: newDecimal(5),
		Multiple:     newDecimal(10),
		FactorScore:  newDecimal(3),
		CompanyName:  "Acme Corp",
		Description:  "",
	}
}

// Number returns the value of a numeric field.
func (in SimulationInputs) Number(f Field) (decimal.Decimal, bool) {
	switch f {
	case FieldEBITDA:
		return in.EBITDA, true
	case FieldInterestRate:
		return in.InterestRate, true
	case FieldMultiple:
		return in.Multiple, true
	case FieldFactorScore:
		return in.FactorScore, true
	}
	return decimal.Decimal{}, false
}

// Text returns the value of a text field.
func (in SimulationInputs) Text(f Field) (string, bool) {
	switch f {
	case FieldCompanyName:
		return in.CompanyName, true
	case FieldDescription:
		return in.Description, true
	}
	return "", false
}

// Value returns the value of any field as a string.
func (in SimulationInputs) Value(f Field) string {
	if d, ok := in.Number(f); ok {
		return d.String()
	}
	s, _ := in.Text(f)
	return s
}

func (in *SimulationInputs) setNumber(f Field, d decimal.Decimal) {
	switch f {
	case FieldEBITDA:
		in.EBITDA = d
	case FieldInterestRate:
		in.InterestRate = d
	case FieldMultiple:
		in.Multiple = d
	case FieldFactorScore:
		in.FactorScore = d
	}
}

func (in *SimulationInputs) setText(f Field, s string) {
	switch f {
	case FieldCompanyName:
		in.CompanyName = s
	case FieldDescription:
		in.Description = s
	}
}

// Equal reports whether both inputs hold the same values.
func (in SimulationInputs) Equal(other SimulationInputs) bool {
	for _, f := range fields {
		if f.IsNumeric() {
			a, _ := in.Number(f)
			b, _ := other.Number(f)
			if !a.Equal(b) {
				return false
			}
			continue
		}
		if in.Value(f) != other.Value(f) {
			return false
		}
	}
	return true
}

// MarshalJSON writes the inputs as an object keyed by field name, numbers
// as JSON numbers.
func (in SimulationInputs) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, f := range fields {
		if d, ok := in.Number(f); ok {
			w.Append(string(f), jsonNumber(d))
			continue
		}
		s, _ := in.Text(f)
		w.Append(string(f), s)
	}
	return w.MarshalJSON()
}
