package out

import (
	"context"
	"time"

	"github.com/Stefan-Trajkovski/Saloon/internal/core/domain"
)

// CalendarPort is the narrow surface of the backing calendar. The engine
// never assumes the provider returns events sorted.
type CalendarPort interface {
	// Events intersecting [timeMin, timeMax]
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]domain.CalendarEvent, error)

	// Insert a new event and return the created handle
	InsertEvent(ctx context.Context, payload domain.EventPayload) (*domain.CalendarEvent, error)
}
