package services

import (
	"testing"
	"time"

	"github.com/Stefan-Trajkovski/Saloon/internal/core/domain"
)

var testGrid = domain.SlotGrid{SlotDuration: 30 * time.Minute}

func testDay() domain.BusinessDay {
	return domain.BusinessDay{
		Date:  time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
		Open:  8 * time.Hour,
		Close: 20 * time.Hour,
	}
}

func eventAt(day domain.BusinessDay, start, end time.Duration) domain.CalendarEvent {
	return domain.CalendarEvent{
		ID:        "existing",
		StartTime: day.Date.Add(start),
		EndTime:   day.Date.Add(end),
	}
}

func labels(slots []domain.TimeSlot) map[string]bool {
	m := make(map[string]bool, len(slots))
	for _, slot := range slots {
		m[slot.Label()] = true
	}
	return m
}

func TestFreeSlots_EmptyCalendar(t *testing.T) {
	free := FreeSlots(testDay(), testGrid, nil)

	if len(free) != 24 {
		t.Fatalf("expected 24 free slots, got %d", len(free))
	}
	if free[0].Label() != "08:00" || free[23].Label() != "19:30" {
		t.Fatalf("expected catalog 08:00..19:30, got %s..%s", free[0].Label(), free[23].Label())
	}
}

func TestFreeSlots_PartiallyCoveringEvent(t *testing.T) {
	day := testDay()
	// 09:00-09:45 covers the 09:00 slot fully and the 09:30 slot partially.
	events := []domain.CalendarEvent{eventAt(day, 9*time.Hour, 9*time.Hour+45*time.Minute)}

	free := FreeSlots(day, testGrid, events)
	if len(free) != 22 {
		t.Fatalf("expected 22 free slots, got %d", len(free))
	}

	byLabel := labels(free)
	for _, taken := range []string{"09:00", "09:30"} {
		if byLabel[taken] {
			t.Fatalf("slot %s should be occupied", taken)
		}
	}
	for _, open := range []string{"08:30", "10:00"} {
		if !byLabel[open] {
			t.Fatalf("slot %s should be free", open)
		}
	}
}

func TestOverlaps_BoundaryTouchIsNotOverlap(t *testing.T) {
	day := testDay()
	slot := domain.TimeSlot{
		StartTime: day.Date.Add(10 * time.Hour),
		EndTime:   day.Date.Add(10*time.Hour + 30*time.Minute),
	}

	endsAtSlotStart := eventAt(day, 9*time.Hour, 10*time.Hour)
	if Overlaps(slot, endsAtSlotStart) {
		t.Fatal("event ending exactly at slot start must not overlap")
	}

	startsAtSlotEnd := eventAt(day, 10*time.Hour+30*time.Minute, 11*time.Hour)
	if Overlaps(slot, startsAtSlotEnd) {
		t.Fatal("event starting exactly at slot end must not overlap")
	}

	oneMinuteIn := eventAt(day, 10*time.Hour+29*time.Minute, 11*time.Hour)
	if !Overlaps(slot, oneMinuteIn) {
		t.Fatal("event entering the slot by one minute must overlap")
	}
}

func TestFreeSlots_MalformedEventsAreSkipped(t *testing.T) {
	day := testDay()
	events := []domain.CalendarEvent{
		{ID: "all-day"},
		{ID: "no-end", StartTime: day.Date.Add(9 * time.Hour)},
		{ID: "no-start", EndTime: day.Date.Add(10 * time.Hour)},
	}

	free := FreeSlots(day, testGrid, events)
	if len(free) != 24 {
		t.Fatalf("malformed events must not occupy slots: expected 24 free, got %d", len(free))
	}
}

func TestFreeSlots_UnsortedEvents(t *testing.T) {
	day := testDay()
	events := []domain.CalendarEvent{
		eventAt(day, 18*time.Hour, 18*time.Hour+30*time.Minute),
		eventAt(day, 8*time.Hour, 8*time.Hour+30*time.Minute),
	}

	free := FreeSlots(day, testGrid, events)
	if len(free) != 22 {
		t.Fatalf("expected 22 free slots, got %d", len(free))
	}
	for i := 1; i < len(free); i++ {
		if !free[i-1].StartTime.Before(free[i].StartTime) {
			t.Fatalf("free slots not in ascending order at index %d", i)
		}
	}
}
