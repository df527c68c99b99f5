package scheduleRepo

import (
	"context"

	"beautycrave/models"
)

// ScheduleChange is one emission from the live document feed: the schedule
// before and after a write. Before is nil when the store cannot supply the
// pre-image (e.g. inserts).
type ScheduleChange struct {
	Before *models.DaySchedule
	After  *models.DaySchedule
}

// ScheduleRepository is the data access contract of the booking engine. The
// mutating operations are transactional: each re-reads the authoritative
// document and re-validates occupancy inside the store transaction, so a
// booking that lost the race surfaces as a BookingError, never as a partial
// write.
type ScheduleRepository interface {
	// Create persists a freshly generated schedule. The date is unique.
	Create(ctx context.Context, schedule *models.DaySchedule) error
	// GetByID retrieves a schedule by its unique ID.
	GetByID(ctx context.Context, id string) (*models.DaySchedule, error)
	// GetByToken retrieves a schedule by its shareable link token.
	GetByToken(ctx context.Context, token string) (*models.DaySchedule, error)
	// ListAll returns every schedule ordered by date ascending.
	ListAll(ctx context.Context) ([]models.DaySchedule, error)
	// Reserve books a run of slots for a customer.
	Reserve(ctx context.Context, scheduleID, slotID string, customer models.Customer, services []models.Service) (*models.DaySchedule, error)
	// Cancel frees the booking anchored at the given primary slot.
	Cancel(ctx context.Context, scheduleID, slotID string) (*models.DaySchedule, error)
	// Rebook moves a booking to a new primary slot on the same schedule.
	Rebook(ctx context.Context, scheduleID, originalSlotID, newSlotID string, customer models.Customer, services []models.Service) (*models.DaySchedule, error)
	// Watch streams document changes for the notification pipeline.
	Watch(ctx context.Context) (<-chan ScheduleChange, error)
}
