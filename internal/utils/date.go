package utils

import (
	"time"
)

// StartOfDay returns the same date at 00:00 in the same timezone.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartNextDay returns the following date at 00:00 in the same timezone.
func StartNextDay(t time.Time) time.Time {
	return StartOfDay(t.AddDate(0, 0, 1))
}
