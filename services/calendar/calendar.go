// Package calendar is the studio owner's calendar sink. Appointment entries
// are best effort: a sink failure is logged and never rolls back a booking.
package calendar

import (
	"context"
	"fmt"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"beautycrave/config"
)

// Sink receives confirmed appointments.
type Sink interface {
	AddAppointment(ctx context.Context, title, notes string, start, end time.Time) error
}

// GoogleCalendarSink writes appointments to the owner's Google Calendar.
type GoogleCalendarSink struct {
	svc        *gcal.Service
	calendarID string
}

// NewGoogleCalendarSink builds a sink from the configured service account
// credentials.
func NewGoogleCalendarSink(ctx context.Context) (*GoogleCalendarSink, error) {
	if config.AppConfig.CalendarCredentialsFile == "" {
		return nil, fmt.Errorf("no calendar credentials configured")
	}
	svc, err := gcal.NewService(ctx, option.WithCredentialsFile(config.AppConfig.CalendarCredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar service: %w", err)
	}
	return &GoogleCalendarSink{svc: svc, calendarID: config.AppConfig.CalendarID}, nil
}

// AddAppointment creates one calendar entry for a booking.
func (s *GoogleCalendarSink) AddAppointment(ctx context.Context, title, notes string, start, end time.Time) error {
	event := &gcal.Event{
		Summary:     title,
		Description: notes,
		Start:       &gcal.EventDateTime{DateTime: start.Format(time.RFC3339)},
		End:         &gcal.EventDateTime{DateTime: end.Format(time.RFC3339)},
	}
	if _, err := s.svc.Events.Insert(s.calendarID, event).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to insert calendar event: %w", err)
	}
	return nil
}

// NoopSink is used when no calendar is configured.
type NoopSink struct{}

func (NoopSink) AddAppointment(ctx context.Context, title, notes string, start, end time.Time) error {
	return nil
}
