package fbitda

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

//go:embed terms.yaml
var termsYAML []byte

// Kind tells how a term value is displayed.
type Kind string

const (
	KindCurrency   Kind = "currency"
	KindPercentage Kind = "percentage"
	KindDecimal    Kind = "decimal"
	KindText       Kind = "text"
)

// Band is a named range of values used to classify a term value.
type Band struct {
	Name        string
	Min, Max    decimal.Decimal
	Description string
}

// Severity of an Advice.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Advisory is a warning triggered when a value crosses a threshold.
type Advisory struct {
	Above     bool // true for "above", false for "below"
	Threshold decimal.Decimal
	Code      string
	Message   string
}

func (a Advisory) applies(d decimal.Decimal) bool {
	if a.Above {
		return d.GreaterThan(a.Threshold)
	}
	return d.LessThan(a.Threshold)
}

// Term holds everything known about an input field.
type Term struct {
	Field       Field
	Display     string
	Description string
	Kind        Kind
	Unit        string
	Precision   int32
	Min, Max    *decimal.Decimal // hard bounds, nil when unbounded
	Bands       []Band
	Advisories  []Advisory
}

// Accepts reports whether d lies within the term's hard bounds.
func (t Term) Accepts(d decimal.Decimal) bool {
	if t.Min != nil && d.LessThan(*t.Min) {
		return false
	}
	if t.Max != nil && d.GreaterThan(*t.Max) {
		return false
	}
	return true
}

// Classify returns the first band containing d.
func (t Term) Classify(d decimal.Decimal) (Band, bool) {
	for _, b := range t.Bands {
		if d.GreaterThanOrEqual(b.Min) && d.LessThanOrEqual(b.Max) {
			return b, true
		}
	}
	return Band{}, false
}

// Range describes the hard bounds, or the span of the bands when unbounded.
func (t Term) Range() string {
	lo, hi := t.Min, t.Max
	if lo == nil && len(t.Bands) > 0 {
		lo = &t.Bands[0].Min
	}
	if hi == nil && len(t.Bands) > 0 {
		hi = &t.Bands[len(t.Bands)-1].Max
	}
	if lo == nil || hi == nil {
		return ""
	}
	return t.Format(*lo) + " - " + t.Format(*hi)
}

// Format formats a value of this term for display.
func (t Term) Format(d decimal.Decimal) string {
	switch t.Kind {
	case KindCurrency:
		return formatUSD(d, int(t.Precision), ",", "$1")
	case KindPercentage:
		return d.StringFixed(t.Precision) + "%"
	default:
		return d.StringFixed(t.Precision) + t.Unit
	}
}

// Advise returns the classification and warnings applying to d.
func (t Term) Advise(d decimal.Decimal) []Advice {
	var advice []Advice
	if b, ok := t.Classify(d); ok {
		advice = append(advice, Advice{
			Field:    t.Field,
			Severity: SeverityInfo,
			Code:     "BUSINESS_CLASSIFICATION",
			Message:  fmt.Sprintf("%s: %s (%s)", t.Display, b.Description, b.Name),
		})
	} else if len(t.Bands) > 0 {
		advice = append(advice, Advice{
			Field:    t.Field,
			Severity: SeverityWarning,
			Code:     "OUTSIDE_BUSINESS_RANGE",
			Message:  fmt.Sprintf("%s of %s is outside typical business ranges", t.Display, t.Format(d)),
		})
	}
	for _, a := range t.Advisories {
		if a.applies(d) {
			advice = append(advice, Advice{Field: t.Field, Severity: SeverityWarning, Code: a.Code, Message: a.Message})
		}
	}
	return advice
}

// Advice is one informational or warning message about an input value.
type Advice struct {
	Field    Field    `json:"field"`
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
}

// Catalog holds the terms of every input field.
type Catalog struct {
	terms [numFields]Term
}

// Lookup returns the term of a field.
func (c *Catalog) Lookup(f Field) (Term, bool) {
	i := f.index()
	if i < 0 {
		return Term{}, false
	}
	return c.terms[i], true
}

// All returns all terms in display order.
func (c *Catalog) All() []Term { return c.terms[:] }

// Advise returns the advice for every numeric input.
func (c *Catalog) Advise(in SimulationInputs) []Advice {
	var advice []Advice
	for _, t := range c.terms {
		if d, ok := in.Number(t.Field); ok {
			advice = append(advice, t.Advise(d)...)
		}
	}
	return advice
}

// Terms returns the catalog embedded in the package.
var Terms = sync.OnceValue(func() *Catalog {
	c, err := ParseCatalog(termsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded terms.yaml: %v", err))
	}
	return c
})

// ParseCatalog parses a YAML term catalog. Every field must be described exactly once.
func ParseCatalog(data []byte) (*Catalog, error) {
	// yaml proxy, decimals are strings to keep them exact.
	type jband struct {
		Name        string `yaml:"name"`
		Min         string `yaml:"min"`
		Max         string `yaml:"max"`
		Description string `yaml:"description"`
	}
	type jadvisory struct {
		Condition string `yaml:"condition"`
		Threshold string `yaml:"threshold"`
		Code      string `yaml:"code"`
		Message   string `yaml:"message"`
	}
	type jterm struct {
		Field       string      `yaml:"field"`
		Display     string      `yaml:"display"`
		Description string      `yaml:"description"`
		Kind        string      `yaml:"kind"`
		Unit        string      `yaml:"unit"`
		Precision   int32       `yaml:"precision"`
		Min         string      `yaml:"min"`
		Max         string      `yaml:"max"`
		Bands       []jband     `yaml:"bands"`
		Advisories  []jadvisory `yaml:"advisories"`
	}
	var doc struct {
		Terms []jterm `yaml:"terms"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse terms: %w", err)
	}

	optional := func(s string) (*decimal.Decimal, error) {
		if s == "" {
			return nil, nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, err
		}
		return &d, nil
	}

	c := new(Catalog)
	var seen [numFields]bool
	for _, jt := range doc.Terms {
		f, err := ParseField(jt.Field)
		if err != nil {
			return nil, fmt.Errorf("parse terms: %w", err)
		}
		i := f.index()
		if seen[i] {
			return nil, fmt.Errorf("parse terms: field %q is already defined", f)
		}
		seen[i] = true

		t := Term{
			Field:       f,
			Display:     jt.Display,
			Description: jt.Description,
			Kind:        Kind(jt.Kind),
			Unit:        jt.Unit,
			Precision:   jt.Precision,
		}
		if t.Min, err = optional(jt.Min); err != nil {
			return nil, fmt.Errorf("parse terms: %q min: %w", f, err)
		}
		if t.Max, err = optional(jt.Max); err != nil {
			return nil, fmt.Errorf("parse terms: %q max: %w", f, err)
		}
		for _, jb := range jt.Bands {
			lo, err := decimal.NewFromString(jb.Min)
			if err != nil {
				return nil, fmt.Errorf("parse terms: %q band %q: %w", f, jb.Name, err)
			}
			hi, err := decimal.NewFromString(jb.Max)
			if err != nil {
				return nil, fmt.Errorf("parse terms: %q band %q: %w", f, jb.Name, err)
			}
			t.Bands = append(t.Bands, Band{Name: jb.Name, Min: lo, Max: hi, Description: jb.Description})
		}
		for _, ja := range jt.Advisories {
			threshold, err := decimal.NewFromString(ja.Threshold)
			if err != nil {
				return nil, fmt.Errorf("parse terms: %q advisory %q: %w", f, ja.Code, err)
			}
			if ja.Condition != "above" && ja.Condition != "below" {
				return nil, fmt.Errorf("parse terms: %q advisory %q: unknown condition %q", f, ja.Code, ja.Condition)
			}
			t.Advisories = append(t.Advisories, Advisory{
				Above:     ja.Condition == "above",
				Threshold: threshold,
				Code:      ja.Code,
				Message:   ja.Message,
			})
		}
		c.terms[i] = t
	}
	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("parse terms: field %q is not defined", fields[i])
		}
	}
	return c, nil
}
