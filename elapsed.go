package fbitda

// ElapsedTime is the session duration, both as a total and broken down.
type ElapsedTime struct {
	Hours        int64
	Minutes      int64
	Seconds      int64
	TotalSeconds int64
}

// NewElapsedTime breaks down a number of seconds. Negative values count as zero.
func NewElapsedTime(totalSeconds int64) ElapsedTime {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return ElapsedTime{
		Hours:        totalSeconds / 3600,
		Minutes:      totalSeconds % 3600 / 60,
		Seconds:      totalSeconds % 60,
		TotalSeconds: totalSeconds,
	}
}

// String returns the HH:MM:SS clock.
func (e ElapsedTime) String() string { return FormatClock(e.TotalSeconds) }

func (e ElapsedTime) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("hours", e.Hours)
	w.Append("minutes", e.Minutes)
	w.Append("seconds", e.Seconds)
	w.Append("totalSeconds", e.TotalSeconds)
	w.Append("clock", e.String())
	return w.MarshalJSON()
}
