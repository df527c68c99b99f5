package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	scheduleRepo "beautycrave/database/repository/schedule"
	"beautycrave/models"
	"beautycrave/services/calendar"
	"beautycrave/services/scheduling"
)

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      scheduleRepo.ScheduleRepository
	Calendar  calendar.Sink
	Catalogue []models.Service
	Hours     scheduling.Hours
	Phone     scheduling.PhoneRule
	WebDomain string
	Logger    *zap.Logger
}

// CreateSchedule opens a new business day. The share token is UUID-class
// random: holding the link is the only credential the public surface needs.
func (svc *DefaultBookingService) CreateSchedule(ctx context.Context, date time.Time) (*models.DaySchedule, error) {
	schedule := &models.DaySchedule{
		ID:         uuid.NewString(),
		Date:       time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		ShareToken: uuid.NewString(),
		TimeSlots:  scheduling.GenerateSlots(date, svc.Hours),
	}
	if err := svc.Repo.Create(ctx, schedule); err != nil {
		return nil, err
	}
	svc.Logger.Info("schedule created",
		zap.String("scheduleId", schedule.ID),
		zap.Time("date", schedule.Date),
		zap.Int("slots", len(schedule.TimeSlots)))
	return schedule, nil
}

func (svc *DefaultBookingService) ListSchedules(ctx context.Context) ([]models.DaySchedule, error) {
	return svc.Repo.ListAll(ctx)
}

func (svc *DefaultBookingService) GetSchedule(ctx context.Context, scheduleID string) (*models.DaySchedule, error) {
	return svc.Repo.GetByID(ctx, scheduleID)
}

func (svc *DefaultBookingService) GetScheduleByToken(ctx context.Context, token string) (*models.DaySchedule, error) {
	return svc.Repo.GetByToken(ctx, token)
}

// Availability computes the candidate primary slots for a service set.
func (svc *DefaultBookingService) Availability(ctx context.Context, token string, serviceIDs []string) ([]models.TimeSlot, error) {
	services, berr := svc.resolveServices(serviceIDs)
	if berr != nil {
		return nil, berr
	}
	schedule, err := svc.Repo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return scheduling.AvailableSlots(*schedule, services, svc.Hours), nil
}

// Reserve validates the request locally first (cheap, catches bad input and
// stale state before any transaction), then commits through the repository,
// which re-validates inside the store transaction. On success the
// appointment is pushed to the calendar sink best effort.
func (svc *DefaultBookingService) Reserve(ctx context.Context, token string, req models.ReserveRequest) (*models.DaySchedule, error) {
	services, berr := svc.resolveServices(req.ServiceIDs)
	if berr != nil {
		return nil, berr
	}
	schedule, err := svc.Repo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if _, berr := scheduling.PlanReservation(*schedule, req.SlotID, req.Customer, services, svc.Hours, svc.Phone); berr != nil {
		return nil, berr
	}

	updated, err := svc.Repo.Reserve(ctx, schedule.ID, req.SlotID, req.Customer, services)
	if err != nil {
		return nil, err
	}

	svc.addToCalendar(ctx, updated, req.SlotID)
	return updated, nil
}

// Cancel frees the booking anchored at slotID. Cancelling an already-free
// range is a no-op by design.
func (svc *DefaultBookingService) Cancel(ctx context.Context, scheduleID, slotID string) (*models.DaySchedule, error) {
	return svc.Repo.Cancel(ctx, scheduleID, slotID)
}

// Update moves/edits a booking within one schedule. Overlap between the old
// and new range is tolerated; the repository commits the cancel and reserve
// halves in one transaction.
func (svc *DefaultBookingService) Update(ctx context.Context, scheduleID string, req models.UpdateBookingRequest) (*models.DaySchedule, error) {
	services, berr := svc.resolveServices(req.ServiceIDs)
	if berr != nil {
		return nil, berr
	}
	updated, err := svc.Repo.Rebook(ctx, scheduleID, req.OriginalSlotID, req.NewSlotID, req.Customer, services)
	if err != nil {
		return nil, err
	}
	svc.addToCalendar(ctx, updated, req.NewSlotID)
	return updated, nil
}

// Move transfers a booking to another schedule. The destination is
// validated and reserved first; the source range is only freed once the
// destination commit succeeded, so a rejected destination leaves the source
// untouched.
func (svc *DefaultBookingService) Move(ctx context.Context, req models.MoveBookingRequest) (*models.DaySchedule, error) {
	services, berr := svc.resolveServices(req.ServiceIDs)
	if berr != nil {
		return nil, berr
	}

	source, err := svc.Repo.GetByID(ctx, req.FromScheduleID)
	if err != nil {
		return nil, err
	}
	cancelPlan, berr := scheduling.PlanCancellation(*source, req.OriginalSlotID, svc.Hours)
	if berr != nil {
		return nil, berr
	}
	if len(cancelPlan.Indices) == 0 {
		return nil, scheduling.NewBookingError(scheduling.CodeUnknownError, "slot %s holds no booking to move", req.OriginalSlotID)
	}

	dest, err := svc.Repo.Reserve(ctx, req.ToScheduleID, req.NewSlotID, req.Customer, services)
	if err != nil {
		return nil, err
	}

	if _, err := svc.Repo.Cancel(ctx, req.FromScheduleID, req.OriginalSlotID); err != nil {
		// The destination booking is committed; surface the dangling source
		// so the owner can clear it, rather than losing the appointment.
		svc.Logger.Error("move: source cancel failed after destination commit",
			zap.String("fromScheduleId", req.FromScheduleID),
			zap.String("slotId", req.OriginalSlotID),
			zap.Error(err))
		return dest, err
	}

	svc.addToCalendar(ctx, dest, req.NewSlotID)
	return dest, nil
}

// Stats recomputes the derived views from slot state.
func (svc *DefaultBookingService) Stats(ctx context.Context, scheduleID string) (*models.ScheduleStats, error) {
	schedule, err := svc.Repo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	return &models.ScheduleStats{
		ScheduleID:   schedule.ID,
		Date:         schedule.Date,
		BookingCount: scheduling.BookingCount(*schedule, svc.Hours),
		DailyRevenue: scheduling.DailyRevenue(*schedule, svc.Hours),
		Bookings:     scheduling.UniqueBookings(*schedule, svc.Hours),
	}, nil
}

func (svc *DefaultBookingService) Catalog() []models.Service {
	return svc.Catalogue
}

// ShareLink renders the public booking URL for a schedule.
func (svc *DefaultBookingService) ShareLink(schedule models.DaySchedule) string {
	return fmt.Sprintf("%s/book/%s", strings.TrimSuffix(svc.WebDomain, "/"), schedule.ShareToken)
}

// resolveServices maps catalog ids to services, rejecting unknown ids and
// the empty set.
func (svc *DefaultBookingService) resolveServices(ids []string) ([]models.Service, *scheduling.BookingError) {
	if len(ids) == 0 {
		return nil, scheduling.NewBookingError(scheduling.CodeUnknownError, "no services selected")
	}
	byID := make(map[string]models.Service, len(svc.Catalogue))
	for _, s := range svc.Catalogue {
		byID[s.ID] = s
	}
	out := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			return nil, scheduling.NewBookingError(scheduling.CodeUnknownError, "unknown service %q", id)
		}
		out = append(out, s)
	}
	return out, nil
}

// addToCalendar pushes the booked appointment to the calendar sink. Sink
// failures are logged, never propagated: the booking already committed.
func (svc *DefaultBookingService) addToCalendar(ctx context.Context, schedule *models.DaySchedule, slotID string) {
	i := schedule.SlotIndex(slotID)
	if i < 0 || !schedule.TimeSlots[i].IsPrimary() {
		return
	}
	slot := schedule.TimeSlots[i]

	names := make([]string, 0, len(slot.Services))
	for _, s := range slot.Services {
		names = append(names, s.Name)
	}
	title := fmt.Sprintf("%s - %s", slot.CustomerName, strings.Join(names, ", "))
	notes := fmt.Sprintf("Phone: %s\nServices: %s\nTotal: %.0f kr",
		slot.CustomerPhone, strings.Join(names, ", "), models.TotalPrice(slot.Services))

	if err := svc.Calendar.AddAppointment(ctx, title, notes, slot.StartTime, slot.EndTime()); err != nil {
		svc.Logger.Warn("calendar sink failed",
			zap.String("slotId", slot.ID),
			zap.Error(err))
	}
}
