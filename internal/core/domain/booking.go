package domain

import (
	"time"

	"github.com/google/uuid"
)

// EmailNotProvided is substituted into event descriptions and notifications
// when the client left the optional email field empty.
const EmailNotProvided = "Not provided"

// BookingRequest is the client-submitted tuple. Date and Time are kept as
// the raw wire strings ("2006-01-02", "15:04") until presence validation has
// passed; the coordinator parses them in the business timezone.
type BookingRequest struct {
	ID      uuid.UUID
	Name    string
	Phone   string
	Email   string
	Service string
	Date    string
	Time    string
}

// MissingFields returns the required fields absent from the request, in the
// order the storefront form presents them. Email is optional.
func (r BookingRequest) MissingFields() []string {
	var missing []string

	if r.Name == "" {
		missing = append(missing, "name")
	}
	if r.Phone == "" {
		missing = append(missing, "phone")
	}
	if r.Service == "" {
		missing = append(missing, "service")
	}
	if r.Date == "" {
		missing = append(missing, "date")
	}
	if r.Time == "" {
		missing = append(missing, "time")
	}

	return missing
}

func (r BookingRequest) EmailOrDefault() string {
	if r.Email == "" {
		return EmailNotProvided
	}
	return r.Email
}

// BookingNotification is the fire-and-forget payload handed to the notifier
// after a successful commit.
type BookingNotification struct {
	BookingID uuid.UUID
	EventID   string
	Name      string
	Phone     string
	Email     string
	Service   string
	StartTime time.Time
	EndTime   time.Time
}
