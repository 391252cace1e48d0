package fbitda

// Snapshot is an immutable copy of a Store state.
type Snapshot struct {
	SessionID  string
	Inputs     SimulationInputs
	Valuation  Valuation
	Reviews    Reviews
	Elapsed    ElapsedTime
	User       UserContext
	Visibility Visibility
}

// Complete reports whether the review team approved every field.
func (s Snapshot) Complete() bool { return s.Reviews.AllApproved() }

// Persisted returns the part of the snapshot that survives a restart.
func (s Snapshot) Persisted() PersistedSubset {
	return PersistedSubset{FirstTimeGuidanceOpen: s.Visibility.Guidance, User: s.User}
}

// CanEdit reports whether the snapshot's user may edit inputs.
func (s Snapshot) CanEdit() bool { return Permitted(s.User.Role, OpUpdateInput) }

// CanReview reports whether the snapshot's user may review fields.
func (s Snapshot) CanReview() bool { return Permitted(s.User.Role, OpUpdateFieldStatus) }

func (s Snapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("sessionId", s.SessionID)
	w.Append("user", s.User)
	w.Append("inputs", s.Inputs)
	w.Append("valuation", s.Valuation)
	w.Append("reviews", s.Reviews)
	w.Append("elapsed", s.Elapsed)
	w.Append("visibility", s.Visibility)
	w.Append("complete", s.Complete())
	return w.MarshalJSON()
}
