package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Stefan-Trajkovski/Saloon/internal/config"
	"github.com/Stefan-Trajkovski/Saloon/internal/core/domain"
	"github.com/Stefan-Trajkovski/Saloon/internal/core/ports/out"
	"github.com/Stefan-Trajkovski/Saloon/internal/utils"
)

type BookingService struct {
	calendarPort out.CalendarPort
	notifierPort out.NotifierPort
	cachePort    out.CachePort
	logger       out.LoggerPort
	grid         domain.SlotGrid
	open         time.Duration
	close        time.Duration
	timezone     string
	location     *time.Location
	locks        *dateLocks
}

func NewBookingService(
	cfg *config.Config,
	calendarPort out.CalendarPort,
	notifierPort out.NotifierPort,
	cachePort out.CachePort,
	logger out.LoggerPort,
) *BookingService {
	return &BookingService{
		calendarPort: calendarPort,
		notifierPort: notifierPort,
		cachePort:    cachePort,
		logger:       logger.WithModule("BookingService"),
		grid:         domain.SlotGrid{SlotDuration: cfg.Business.SlotDuration},
		open:         cfg.Business.OpenOffset,
		close:        cfg.Business.CloseOffset,
		timezone:     cfg.App.Timezone,
		location:     cfg.Location,
		locks:        newDateLocks(),
	}
}

func (s *BookingService) businessDay(date time.Time) domain.BusinessDay {
	return domain.BusinessDay{
		Date:  utils.StartOfDay(date.In(s.location)),
		Open:  s.open,
		Close: s.close,
	}
}

func (s *BookingService) FreeSlots(ctx context.Context, date time.Time) ([]domain.TimeSlot, error) {
	day := s.businessDay(date)

	if s.cachePort != nil {
		if slots, exists := s.cachePort.GetFreeSlots(ctx, day.Date); exists {
			s.logger.Debug("slots.free.cache.hit", out.LogFields{
				"date":       day.Date.Format("2006-01-02"),
				"slotsCount": len(slots),
			})
			return slots, nil
		}
	}

	// Compute and store under the same per-date lock bookings take. A
	// computation whose event snapshot predates a concurrent booking must
	// not store its result after that booking invalidated the date.
	lock := s.locks.forDate(day.Date.Format("2006-01-02"))
	lock.Lock()
	defer lock.Unlock()

	if s.cachePort != nil {
		if slots, exists := s.cachePort.GetFreeSlots(ctx, day.Date); exists {
			return slots, nil
		}
	}

	// Existing events in the full civil day, not just the operating window,
	// so entries straddling the window edges still count.
	events, err := s.calendarPort.ListEvents(ctx, day.Date, utils.StartNextDay(day.Date))
	if err != nil {
		s.logger.Error("slots.free.events.fetch_failed", out.LogFields{
			"date":  day.Date.Format("2006-01-02"),
			"error": err.Error(),
		})
		return nil, &domain.ProviderError{Op: "list", Err: err}
	}

	free := FreeSlots(day, s.grid, events)

	if s.cachePort != nil {
		s.cachePort.StoreFreeSlots(ctx, day.Date, free)
	}

	s.logger.Debug("slots.free.computed", out.LogFields{
		"date":        day.Date.Format("2006-01-02"),
		"eventsCount": len(events),
		"slotsCount":  len(free),
	})

	return free, nil
}

func (s *BookingService) Book(ctx context.Context, request domain.BookingRequest) (*domain.CalendarEvent, error) {
	if missing := request.MissingFields(); len(missing) > 0 {
		s.logger.Warn("booking.validate.failed", out.LogFields{
			"bookingId": request.ID,
			"missing":   missing,
		})
		return nil, &domain.ValidationError{Fields: missing}
	}

	date, err := time.ParseInLocation("2006-01-02", request.Date, s.location)
	if err != nil {
		return nil, &domain.ValidationError{Fields: []string{"date"}}
	}
	clock, err := time.Parse("15:04", request.Time)
	if err != nil {
		return nil, &domain.ValidationError{Fields: []string{"time"}}
	}

	// Pin the requested wall-clock time in the business timezone; adding an
	// offset to midnight would drift by an hour on DST-transition days.
	start := time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, s.location)
	slot := domain.TimeSlot{
		StartTime: start,
		EndTime:   start.Add(s.grid.SlotDuration),
	}

	day := s.businessDay(date)

	// Serialize read-check-write per date. Another in-flight booking for the
	// same day cannot slip between the occupancy re-check and the insert.
	lock := s.locks.forDate(day.Date.Format("2006-01-02"))
	lock.Lock()
	defer lock.Unlock()
	events, err := s.calendarPort.ListEvents(ctx, day.Date, utils.StartNextDay(day.Date))
	if err != nil {
		s.logger.Error("booking.events.fetch_failed", out.LogFields{
			"bookingId": request.ID,
			"error":     err.Error(),
		})
		return nil, &domain.ProviderError{Op: "list", Err: err}
	}

	// Mandatory re-check: availability the caller saw earlier is stale by now.
	if Occupied(slot, events) {
		s.logger.Info("booking.slot.conflict", out.LogFields{
			"bookingId": request.ID,
			"date":      request.Date,
			"time":      request.Time,
		})
		return nil, domain.ErrSlotConflict
	}

	payload := domain.EventPayload{
		Summary: fmt.Sprintf("Appointment: %s", request.Service),
		Description: fmt.Sprintf("Name: %s\nPhone: %s\nEmail: %s",
			request.Name, request.Phone, request.EmailOrDefault()),
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		TimeZone:  s.timezone,
	}

	event, err := s.calendarPort.InsertEvent(ctx, payload)
	if err != nil {
		s.logger.Error("booking.event.insert_failed", out.LogFields{
			"bookingId": request.ID,
			"error":     err.Error(),
		})
		return nil, &domain.ProviderError{Op: "insert", Err: err}
	}

	if s.cachePort != nil {
		s.cachePort.InvalidateDate(ctx, day.Date)
	}

	s.notifyBooked(ctx, request, event, slot)

	s.logger.Info("booking.commit.success", out.LogFields{
		"bookingId": request.ID,
		"eventId":   event.ID,
		"date":      request.Date,
		"time":      request.Time,
	})

	return event, nil
}

// Notifier failures are logged and swallowed - a committed booking never
// degrades to an error because the notification did not go out.
func (s *BookingService) notifyBooked(ctx context.Context, request domain.BookingRequest, event *domain.CalendarEvent, slot domain.TimeSlot) {
	if s.notifierPort == nil {
		return
	}

	notification := domain.BookingNotification{
		BookingID: request.ID,
		EventID:   event.ID,
		Name:      request.Name,
		Phone:     request.Phone,
		Email:     request.EmailOrDefault(),
		Service:   request.Service,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
	}

	if err := s.notifierPort.NotifyBooked(ctx, notification); err != nil {
		s.logger.Warn("booking.notify.failed", out.LogFields{
			"bookingId": request.ID,
			"eventId":   event.ID,
			"error":     err.Error(),
		})
	}
}
