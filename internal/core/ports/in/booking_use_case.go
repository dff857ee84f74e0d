package in

import (
	"context"
	"time"

	"github.com/Stefan-Trajkovski/Saloon/internal/core/domain"
)

type BookingUseCase interface {
	// Free slots of the catalog for one business date
	FreeSlots(ctx context.Context, date time.Time) ([]domain.TimeSlot, error)

	// Validate a request and commit it against the calendar
	Book(ctx context.Context, request domain.BookingRequest) (*domain.CalendarEvent, error)
}
