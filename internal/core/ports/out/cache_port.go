package out

import (
	"context"
	"time"

	"github.com/Stefan-Trajkovski/Saloon/internal/core/domain"
)

// CachePort caches computed free slots per business date. Bookings must
// invalidate the date they landed on.
type CachePort interface {
	GetFreeSlots(ctx context.Context, date time.Time) ([]domain.TimeSlot, bool)
	StoreFreeSlots(ctx context.Context, date time.Time, slots []domain.TimeSlot)
	InvalidateDate(ctx context.Context, date time.Time)
}
