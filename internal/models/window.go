package models

import "time"

// Window is a caller-specified relative date range for history queries.
// Anything outside the known set means "all history".
type Window string

const (
	Window1W Window = "1W"
	Window1M Window = "1M"
	Window6M Window = "6M"
	Window1Y Window = "1Y"
)

// Cutoff maps the window to its inclusive lower bound relative to today.
// The second return is false when the window is empty or unrecognized, in
// which case no cutoff applies and the full history is returned.
func (w Window) Cutoff(today time.Time) (time.Time, bool) {
	switch w {
	case Window1W:
		return today.AddDate(0, 0, -7), true
	case Window1M:
		return today.AddDate(0, -1, 0), true
	case Window6M:
		return today.AddDate(0, -6, 0), true
	case Window1Y:
		return today.AddDate(-1, 0, 0), true
	}
	return time.Time{}, false
}

// Period represents an inclusive date range.
type Period struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}
