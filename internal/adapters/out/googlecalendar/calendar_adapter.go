package googlecalendar

import (
	"context"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/Stefan-Trajkovski/Saloon/internal/config"
	"github.com/Stefan-Trajkovski/Saloon/internal/core/domain"
	"github.com/Stefan-Trajkovski/Saloon/internal/core/ports/out"
)

// CalendarAdapter implements the calendar port against Google Calendar v3,
// authorized through a pre-provisioned service-account key file.
type CalendarAdapter struct {
	service    *calendar.Service
	calendarID string
	logger     out.LoggerPort
}

func NewCalendarAdapter(ctx context.Context, cfg *config.Config, logger out.LoggerPort) (*CalendarAdapter, error) {
	keyData, err := os.ReadFile(cfg.Calendar.Keyfile)
	if err != nil {
		logger.Error("calendar.keyfile.read_failed", out.LogFields{
			"keyfile": cfg.Calendar.Keyfile,
			"error":   err.Error(),
		})
		return nil, err
	}

	jwtConfig, err := google.JWTConfigFromJSON(keyData, calendar.CalendarScope)
	if err != nil {
		logger.Error("calendar.credentials.parse_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	service, err := calendar.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	if err != nil {
		logger.Error("calendar.service.init_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &CalendarAdapter{
		service:    service,
		calendarID: cfg.Calendar.ID,
		logger:     logger,
	}, nil
}

func (a *CalendarAdapter) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]domain.CalendarEvent, error) {
	response, err := a.service.Events.List(a.calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		Context(ctx).
		Do()
	if err != nil {
		a.logger.Error("calendar.events.list_failed", out.LogFields{
			"calendarId": a.calendarID,
			"timeMin":    timeMin.Format(time.RFC3339),
			"timeMax":    timeMax.Format(time.RFC3339),
			"error":      err.Error(),
			"status":     googleStatus(err),
		})
		return nil, err
	}

	events := make([]domain.CalendarEvent, 0, len(response.Items))
	for _, item := range response.Items {
		// All-day entries carry only a date; their times stay zero and the
		// availability engine skips them.
		events = append(events, domain.CalendarEvent{
			ID:        item.Id,
			Summary:   item.Summary,
			StartTime: parseEventTime(item.Start),
			EndTime:   parseEventTime(item.End),
		})
	}

	a.logger.Debug("calendar.events.list_success", out.LogFields{
		"calendarId":  a.calendarID,
		"eventsCount": len(events),
	})

	return events, nil
}

func (a *CalendarAdapter) InsertEvent(ctx context.Context, payload domain.EventPayload) (*domain.CalendarEvent, error) {
	event := &calendar.Event{
		Summary:     payload.Summary,
		Description: payload.Description,
		Start: &calendar.EventDateTime{
			DateTime: payload.StartTime.Format(time.RFC3339),
			TimeZone: payload.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: payload.EndTime.Format(time.RFC3339),
			TimeZone: payload.TimeZone,
		},
	}

	created, err := a.service.Events.Insert(a.calendarID, event).Context(ctx).Do()
	if err != nil {
		a.logger.Error("calendar.events.insert_failed", out.LogFields{
			"calendarId": a.calendarID,
			"summary":    payload.Summary,
			"error":      err.Error(),
			"status":     googleStatus(err),
		})
		return nil, err
	}

	a.logger.Info("calendar.events.insert_success", out.LogFields{
		"calendarId": a.calendarID,
		"eventId":    created.Id,
	})

	return &domain.CalendarEvent{
		ID:        created.Id,
		Summary:   created.Summary,
		StartTime: parseEventTime(created.Start),
		EndTime:   parseEventTime(created.End),
	}, nil
}

func parseEventTime(edt *calendar.EventDateTime) time.Time {
	if edt == nil || edt.DateTime == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, edt.DateTime)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func googleStatus(err error) int {
	if apiErr, ok := err.(*googleapi.Error); ok {
		return apiErr.Code
	}
	return 0
}
