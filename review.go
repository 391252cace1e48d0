package fbitda

import (
	"fmt"
	"strings"
)

// ReviewStatus is the review team's verdict on a field.
type ReviewStatus int

const (
	ToBeDetermined ReviewStatus = iota
	Approved
)

func (s ReviewStatus) String() string {
	if s == Approved {
		return "ok"
	}
	return "tbd"
}

// Label is the human readable status.
func (s ReviewStatus) Label() string {
	if s == Approved {
		return "Approved"
	}
	return "To be determined"
}

// Toggle switches between ToBeDetermined and Approved.
func (s ReviewStatus) Toggle() ReviewStatus {
	if s == Approved {
		return ToBeDetermined
	}
	return Approved
}

// ParseReviewStatus accepts "ok"/"approved" and "tbd"/"pending".
func ParseReviewStatus(s string) (ReviewStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ok", "approved", "approve":
		return Approved, nil
	case "tbd", "pending", "tobedetermined":
		return ToBeDetermined, nil
	}
	return ToBeDetermined, fmt.Errorf("unknown review status %q", s)
}

func (s ReviewStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Reviews holds exactly one ReviewStatus per input field.
type Reviews struct {
	status [numFields]ReviewStatus
}

// DefaultReviews approves every field except the description.
func DefaultReviews() Reviews {
	var r Reviews
	for i, f := range fields {
		r.status[i] = Approved
		if f == FieldDescription {
			r.status[i] = ToBeDetermined
		}
	}
	return r
}

// Status returns the status of a field. Unknown fields are ToBeDetermined.
func (r Reviews) Status(f Field) ReviewStatus {
	i := f.index()
	if i < 0 {
		return ToBeDetermined
	}
	return r.status[i]
}

func (r *Reviews) set(f Field, s ReviewStatus) bool {
	i := f.index()
	if i < 0 || r.status[i] == s {
		return false
	}
	r.status[i] = s
	return true
}

// AllApproved reports whether every field is Approved, ending the game.
func (r Reviews) AllApproved() bool {
	for _, s := range r.status {
		if s != Approved {
			return false
		}
	}
	return true
}

// Pending returns the fields still to be determined, in display order.
func (r Reviews) Pending() []Field {
	var pending []Field
	for i, s := range r.status {
		if s != Approved {
			pending = append(pending, fields[i])
		}
	}
	return pending
}

func (r Reviews) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for i, f := range fields {
		w.Append(string(f), r.status[i])
	}
	return w.MarshalJSON()
}
