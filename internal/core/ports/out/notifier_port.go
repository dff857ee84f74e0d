package out

import (
	"context"

	"github.com/Stefan-Trajkovski/Saloon/internal/core/domain"
)

// NotifierPort receives a best-effort message after a successful booking.
// Errors are logged by the caller and never undo the booking.
type NotifierPort interface {
	NotifyBooked(ctx context.Context, notification domain.BookingNotification) error
}
