package domain

import (
	"time"
)

// CalendarEvent is an existing reservation owned by the calendar provider.
// Start or end may be missing on upstream entries (all-day events and the
// like) - such events are malformed from the engine's point of view.
type CalendarEvent struct {
	ID        string    `json:"id"`
	Summary   string    `json:"summary"`
	StartTime time.Time `json:"begin"`
	EndTime   time.Time `json:"end"`
}

func (e CalendarEvent) Malformed() bool {
	return e.StartTime.IsZero() || e.EndTime.IsZero()
}

// EventPayload is what the engine hands to the calendar provider on insert.
type EventPayload struct {
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	TimeZone    string
}
