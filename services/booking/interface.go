package booking

import (
	"context"
	"time"

	"beautycrave/models"
)

// BookingService is the application surface over the scheduling engine:
// schedule lifecycle, the booking commands and the derived views. Expected
// booking failures come back as *scheduling.BookingError.
type BookingService interface {
	// CreateSchedule opens a new business day; slots are generated exactly
	// once, here.
	CreateSchedule(ctx context.Context, date time.Time) (*models.DaySchedule, error)
	// ListSchedules returns all schedules ordered by date ascending.
	ListSchedules(ctx context.Context) ([]models.DaySchedule, error)
	// GetSchedule fetches a schedule by ID (owner surface).
	GetSchedule(ctx context.Context, scheduleID string) (*models.DaySchedule, error)
	// GetScheduleByToken fetches a schedule by share token (public surface).
	GetScheduleByToken(ctx context.Context, token string) (*models.DaySchedule, error)
	// Availability lists every slot that could host the given service set.
	Availability(ctx context.Context, token string, serviceIDs []string) ([]models.TimeSlot, error)
	// Reserve books a slot run for a customer, addressed by share token.
	Reserve(ctx context.Context, token string, req models.ReserveRequest) (*models.DaySchedule, error)
	// Cancel frees the booking anchored at the given primary slot.
	Cancel(ctx context.Context, scheduleID, slotID string) (*models.DaySchedule, error)
	// Update moves/edits a booking within one schedule.
	Update(ctx context.Context, scheduleID string, req models.UpdateBookingRequest) (*models.DaySchedule, error)
	// Move transfers a booking to a different schedule.
	Move(ctx context.Context, req models.MoveBookingRequest) (*models.DaySchedule, error)
	// Stats computes the derived views for one schedule.
	Stats(ctx context.Context, scheduleID string) (*models.ScheduleStats, error)
	// Catalog returns the studio's service offering.
	Catalog() []models.Service
	// ShareLink renders the public booking URL for a schedule.
	ShareLink(schedule models.DaySchedule) string
}
