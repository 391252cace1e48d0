package fbitda

import (
	"fmt"
	"strings"
)

// Field names one of the simulation inputs.
type Field string

const (
	FieldEBITDA       Field = "ebitda"
	FieldInterestRate Field = "interestRate"
	FieldMultiple     Field = "multiple"
	FieldFactorScore  Field = "factorScore"
	FieldCompanyName  Field = "companyName"
	FieldDescription  Field = "description"
)

// numFields is the size of every per-field table.
const numFields = 6

// fields in display order. The position of a field in this list is its index
// in per-field tables.
var fields = [numFields]Field{
	FieldEBITDA,
	FieldInterestRate,
	FieldMultiple,
	FieldFactorScore,
	FieldCompanyName,
	FieldDescription,
}

// Fields returns all input fields in display order.
func Fields() []Field { return fields[:] }

// index returns the position of f in per-field tables, or -1.
func (f Field) index() int {
	for i, g := range fields {
		if g == f {
			return i
		}
	}
	return -1
}

// Valid reports whether f is one of the known input fields.
func (f Field) Valid() bool { return f.index() >= 0 }

// IsNumeric reports whether the field holds a number. The other fields hold text.
func (f Field) IsNumeric() bool {
	switch f {
	case FieldEBITDA, FieldInterestRate, FieldMultiple, FieldFactorScore:
		return true
	}
	return false
}

func (f Field) String() string { return string(f) }

// ParseField parses a field name. Matching ignores case, dashes and
// underscores so that "interest_rate" and "InterestRate" both work.
func ParseField(s string) (Field, error) {
	norm := func(s string) string {
		s = strings.ToLower(strings.TrimSpace(s))
		return strings.NewReplacer("_", "", "-", "").Replace(s)
	}
	want := norm(s)
	for _, f := range fields {
		if norm(string(f)) == want {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown field %q", s)
}
