package fbitda

// UserContext identifies who is playing and as which team.
type UserContext struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Visibility holds the transient UI flags.
type Visibility struct {
	Guidance bool `json:"guidance"` // first-time guidance panel
	Video    bool `json:"video"`    // video overlay
	Text     bool `json:"text"`     // text overlay
}

// Flag names one of the Visibility booleans.
type Flag int

const (
	FlagGuidance Flag = iota
	FlagVideo
	FlagText
)

func (f Flag) String() string {
	switch f {
	case FlagGuidance:
		return "guidance"
	case FlagVideo:
		return "video"
	case FlagText:
		return "text"
	}
	return "unknown"
}

// DefaultVisibility opens the first-time guidance and closes both overlays.
func DefaultVisibility() Visibility { return Visibility{Guidance: true} }

// Get returns the value of a flag.
func (v Visibility) Get(f Flag) bool {
	switch f {
	case FlagGuidance:
		return v.Guidance
	case FlagVideo:
		return v.Video
	case FlagText:
		return v.Text
	}
	return false
}

func (v *Visibility) set(f Flag, value bool) bool {
	var p *bool
	switch f {
	case FlagGuidance:
		p = &v.Guidance
	case FlagVideo:
		p = &v.Video
	case FlagText:
		p = &v.Text
	default:
		return false
	}
	if *p == value {
		return false
	}
	*p = value
	return true
}
