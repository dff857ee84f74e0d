package domain

import (
	"time"
)

// BusinessDay is one calendar date together with the operating window that
// bounds which slots are candidates. Date is midnight in the business
// timezone; Open and Close are offsets from that midnight.
type BusinessDay struct {
	Date  time.Time
	Open  time.Duration
	Close time.Duration
}

// SlotGrid is the static catalog definition: every candidate slot of a
// business day has the same fixed duration.
type SlotGrid struct {
	SlotDuration time.Duration
}

type TimeSlot struct {
	StartTime time.Time `json:"begin"`
	EndTime   time.Time `json:"end"`
}

// Label is the wall-clock form the storefront exchanges, e.g. "08:30".
func (s TimeSlot) Label() string {
	return s.StartTime.Format("15:04")
}

// At resolves an offset from midnight to a wall-clock instant on the day.
// time.Date pins the wall clock, so slot labels stay put across DST
// transitions instead of drifting with the absolute offset.
func (d BusinessDay) At(offset time.Duration) time.Time {
	return time.Date(d.Date.Year(), d.Date.Month(), d.Date.Day(), 0, int(offset/time.Minute), 0, 0, d.Date.Location())
}

// Generate enumerates the candidate slots of a day in ascending order.
// A trailing period shorter than the slot duration is dropped, so no slot
// ever ends past the closing time.
func (g SlotGrid) Generate(day BusinessDay) []TimeSlot {
	var slots []TimeSlot

	if g.SlotDuration <= 0 {
		return slots
	}

	for offset := day.Open; offset+g.SlotDuration <= day.Close; offset += g.SlotDuration {
		slots = append(slots, TimeSlot{
			StartTime: day.At(offset),
			EndTime:   day.At(offset + g.SlotDuration),
		})
	}

	return slots
}
