package services

import (
	"github.com/Stefan-Trajkovski/Saloon/internal/core/domain"
)

// Overlaps reports whether the slot and event intersect under half-open
// interval semantics [start, end). Touching boundaries are not an overlap:
// an event ending exactly when a slot starts leaves that slot free.
func Overlaps(slot domain.TimeSlot, event domain.CalendarEvent) bool {
	return slot.StartTime.Before(event.EndTime) && slot.EndTime.After(event.StartTime)
}

// Occupied reports whether any well-formed event intersects the slot.
// Malformed events (missing start or end) never occupy anything.
func Occupied(slot domain.TimeSlot, events []domain.CalendarEvent) bool {
	for _, event := range events {
		if event.Malformed() {
			continue
		}
		if Overlaps(slot, event) {
			return true
		}
	}
	return false
}

// FreeSlots intersects a day's slot catalog against the existing events and
// returns the unoccupied slots in ascending start-time order. Pure, no I/O.
func FreeSlots(day domain.BusinessDay, grid domain.SlotGrid, events []domain.CalendarEvent) []domain.TimeSlot {
	free := make([]domain.TimeSlot, 0)

	for _, slot := range grid.Generate(day) {
		if !Occupied(slot, events) {
			free = append(free, slot)
		}
	}

	return free
}
