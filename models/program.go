package models

import (
	"time"
)

// Program is a single guide entry for a channel. Instances are constructed
// during guide parsing or fallback generation and never mutated afterwards;
// the whole set is discarded on the next successful refresh.
type Program struct {
	Title       string
	Description string
	Category    string
	Start       time.Time
	Stop        time.Time
}

// IsLive reports whether the program is on air at the given time.
func (p Program) IsLive(now time.Time) bool {
	return !now.Before(p.Start) && now.Before(p.Stop)
}

// Progress returns how far through the program "now" is, as a percentage.
// It is 0 before the program starts and 100 once it has finished.
func (p Program) Progress(now time.Time) float64 {
	if now.Before(p.Start) {
		return 0
	}
	if !now.Before(p.Stop) {
		return 100
	}
	total := p.Stop.Sub(p.Start).Seconds()
	elapsed := now.Sub(p.Start).Seconds()
	return elapsed / total * 100
}

// DurationMins returns the scheduled length of the program in minutes.
func (p Program) DurationMins() int {
	return int(p.Stop.Sub(p.Start).Minutes())
}

// RemainingMins returns minutes left on air, or 0 when the program is not live.
func (p Program) RemainingMins(now time.Time) int {
	if !p.IsLive(now) {
		return 0
	}
	remaining := int(p.Stop.Sub(now).Minutes())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ProgramView is the JSON shape served by /api/tv-guide. The live/progress
// fields are computed against an explicit "now" so responses are a snapshot.
type ProgramView struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Start         string  `json:"start"`
	Stop          string  `json:"stop"`
	TimeStr       string  `json:"timeStr"`
	IsLive        bool    `json:"isLive"`
	Progress      float64 `json:"progress"`
	RemainingMins int     `json:"remainingMins"`
	DurationMins  int     `json:"durationMins"`
}

// View renders the program for the API. "3:04 PM" keeps the hour without a
// leading zero, matching the guide UI's expected timeStr format.
func (p Program) View(now time.Time) ProgramView {
	return ProgramView{
		Title:         p.Title,
		Description:   p.Description,
		Category:      p.Category,
		Start:         p.Start.Format(time.RFC3339),
		Stop:          p.Stop.Format(time.RFC3339),
		TimeStr:       p.Start.Format("3:04 PM") + " - " + p.Stop.Format("3:04 PM"),
		IsLive:        p.IsLive(now),
		Progress:      p.Progress(now),
		RemainingMins: p.RemainingMins(now),
		DurationMins:  p.DurationMins(),
	}
}
