package renderer

import "github.com/etnz/fbitda"

// Catalog is the view of the term catalog.
type Catalog struct {
	Terms []Term `json:"terms"`
}

// Term describes one input field.
type Term struct {
	Field       string `json:"field"`
	Display     string `json:"display"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
	Range       string `json:"range,omitempty"`
	Enforced    bool   `json:"enforced,omitempty"` // the range is a hard bound
	Bands       []Band `json:"bands,omitempty"`
}

// Band is a named class of values.
type Band struct {
	Name        string `json:"name"`
	From        string `json:"from"`
	To          string `json:"to"`
	Description string `json:"description"`
}

// NewCatalog builds the view of c.
func NewCatalog(c *fbitda.Catalog) *Catalog {
	v := &Catalog{}
	for _, t := range c.All() {
		term := Term{
			Field:       t.Field.String(),
			Display:     t.Display,
			Description: t.Description,
			Kind:        string(t.Kind),
			Range:       t.Range(),
			Enforced:    t.Min != nil || t.Max != nil,
		}
		for _, b := range t.Bands {
			term.Bands = append(term.Bands, Band{
				Name:        b.Name,
				From:        t.Format(b.Min),
				To:          t.Format(b.Max),
				Description: b.Description,
			})
		}
		v.Terms = append(v.Terms, term)
	}
	return v
}
