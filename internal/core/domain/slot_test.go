package domain

import (
	"testing"
	"time"
)

func testDay(open, close time.Duration) BusinessDay {
	return BusinessDay{
		Date:  time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
		Open:  open,
		Close: close,
	}
}

func TestSlotGridGenerate_FullDay(t *testing.T) {
	grid := SlotGrid{SlotDuration: 30 * time.Minute}
	slots := grid.Generate(testDay(8*time.Hour, 20*time.Hour))

	if len(slots) != 24 {
		t.Fatalf("expected 24 slots, got %d", len(slots))
	}
	if slots[0].Label() != "08:00" {
		t.Fatalf("expected first slot 08:00, got %s", slots[0].Label())
	}
	if slots[23].Label() != "19:30" {
		t.Fatalf("expected last slot 19:30, got %s", slots[23].Label())
	}
}

func TestSlotGridGenerate_OrderedAndNonOverlapping(t *testing.T) {
	grid := SlotGrid{SlotDuration: 30 * time.Minute}
	day := testDay(8*time.Hour, 20*time.Hour)
	slots := grid.Generate(day)

	for i, slot := range slots {
		if !slot.EndTime.Equal(slot.StartTime.Add(grid.SlotDuration)) {
			t.Fatalf("slot %d has wrong duration: %s - %s", i, slot.StartTime, slot.EndTime)
		}
		if slot.StartTime.Before(day.Date.Add(day.Open)) || slot.EndTime.After(day.Date.Add(day.Close)) {
			t.Fatalf("slot %d outside operating window: %s - %s", i, slot.StartTime, slot.EndTime)
		}
		if i > 0 && slots[i-1].EndTime.After(slot.StartTime) {
			t.Fatalf("slot %d overlaps its predecessor", i)
		}
	}
}

func TestSlotGridGenerate_DropsTrailingPartial(t *testing.T) {
	grid := SlotGrid{SlotDuration: 30 * time.Minute}
	// 08:00-09:10 fits two whole slots; the trailing 10 minutes are dropped.
	slots := grid.Generate(testDay(8*time.Hour, 9*time.Hour+10*time.Minute))

	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[1].Label() != "08:30" {
		t.Fatalf("expected last slot 08:30, got %s", slots[1].Label())
	}
}

func TestSlotGridGenerate_KeepsWallClockAcrossDSTChange(t *testing.T) {
	location, err := time.LoadLocation("Europe/Skopje")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}

	grid := SlotGrid{SlotDuration: 30 * time.Minute}
	day := BusinessDay{
		// Clocks jump 02:00 -> 03:00 on this date; slot times must stay on
		// the wall clock, not shift by the skipped hour.
		Date:  time.Date(2026, 3, 29, 0, 0, 0, 0, location),
		Open:  8 * time.Hour,
		Close: 20 * time.Hour,
	}
	slots := grid.Generate(day)

	if len(slots) != 24 {
		t.Fatalf("expected 24 slots, got %d", len(slots))
	}
	if slots[0].Label() != "08:00" {
		t.Fatalf("expected first slot 08:00, got %s", slots[0].Label())
	}
	if got := slots[0].StartTime.Hour(); got != 8 {
		t.Fatalf("expected local hour 8, got %d", got)
	}
	if slots[23].Label() != "19:30" {
		t.Fatalf("expected last slot 19:30, got %s", slots[23].Label())
	}
}

func TestSlotGridGenerate_Deterministic(t *testing.T) {
	grid := SlotGrid{SlotDuration: 30 * time.Minute}
	day := testDay(8*time.Hour, 20*time.Hour)

	first := grid.Generate(day)
	second := grid.Generate(day)

	if len(first) != len(second) {
		t.Fatalf("generate not deterministic: %d vs %d slots", len(first), len(second))
	}
	for i := range first {
		if !first[i].StartTime.Equal(second[i].StartTime) {
			t.Fatalf("slot %d differs between runs", i)
		}
	}
}
