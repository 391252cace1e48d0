package renderer

import (
	"strings"

	"github.com/etnz/fbitda"
)

// Dashboard is the view of a game as seen by one team.
type Dashboard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Player      string `json:"player"`
	Session     string `json:"session"`
	Clock       string `json:"clock"`
	Company     string `json:"company"`
	Rows        []Row  `json:"rows"`

	Valuation  string `json:"valuation"`
	Percentage string `json:"percentage"`
	Ceiling    string `json:"ceiling"`
	Gauge      string `json:"gauge"`

	Complete bool     `json:"complete"`
	Pending  []string `json:"pending,omitempty"` // display names of the fields to be determined
	Guidance bool     `json:"guidance"`
	Hint     string   `json:"hint"`
}

// Row is one input field of the dashboard.
type Row struct {
	Field    string `json:"field"`
	Display  string `json:"display"`
	Value    string `json:"value"`
	Range    string `json:"range"`
	Class    string `json:"class"`
	Status   string `json:"status"`
	Approved bool   `json:"approved"`
}

// gaugeWidth is the number of cells of the valuation gauge.
const gaugeWidth = 20

// NewDashboard builds the dashboard of a snapshot, described with the terms of c.
func NewDashboard(s fbitda.Snapshot, c *fbitda.Catalog) *Dashboard {
	d := &Dashboard{
		Title:       s.User.Role.Title(),
		Description: s.User.Role.Description(),
		Player:      s.User.Name,
		Session:     s.SessionID,
		Clock:       s.Elapsed.String(),
		Company:     s.Inputs.CompanyName,
		Valuation:   s.Valuation.String(),
		Percentage:  s.Valuation.Percentage.String(),
		Ceiling:     fbitda.FormatAmount(s.Valuation.Ceiling),
		Gauge:       gauge(float64(s.Valuation.Percentage)),
		Complete:    s.Complete(),
		Guidance:    s.Visibility.Guidance,
		Hint:        hint(s),
	}
	if d.Player == "" {
		d.Player = "anonymous"
	}
	if strings.TrimSpace(d.Company) == "" {
		d.Company = "Unnamed Company"
	}

	for _, f := range fbitda.Fields() {
		term, _ := c.Lookup(f)
		row := Row{
			Field:    f.String(),
			Display:  term.Display,
			Range:    term.Range(),
			Status:   s.Reviews.Status(f).Label(),
			Approved: s.Reviews.Status(f) == fbitda.Approved,
		}
		if row.Display == "" {
			row.Display = f.String()
		}
		if v, ok := s.Inputs.Number(f); ok {
			row.Value = term.Format(v)
			if b, ok := term.Classify(v); ok {
				row.Class = b.Name
			} else if len(term.Bands) > 0 {
				row.Class = "Outside typical range"
			}
		} else {
			row.Value = s.Inputs.Value(f)
		}
		if !row.Approved {
			d.Pending = append(d.Pending, row.Display)
		}
		d.Rows = append(d.Rows, row)
	}
	return d
}

// gauge draws pct, between 0 and 100, as a bar of gaugeWidth cells.
func gauge(pct float64) string {
	filled := int(pct/100*gaugeWidth + 0.5)
	filled = max(0, min(filled, gaugeWidth))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", gaugeWidth-filled) + "]"
}

func hint(s fbitda.Snapshot) string {
	switch {
	case s.CanEdit():
		return "Enter the terms with `set <field> <value>`. The valuation is updated on every change."
	case s.CanReview():
		return "Review each term with `approve <field>` or `tbd <field>`. The deal closes when every term is approved."
	}
	return "Pick a team with `login -role team1` to enter terms or `login -role team2` to review them."
}
