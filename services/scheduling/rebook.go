package scheduling

import "beautycrave/models"

// RebookingPlan is a same-schedule update: free the original range, occupy
// the new one. Both halves are validated before either is applied, so a
// rejected new range never leaves a half-cancelled booking behind.
type RebookingPlan struct {
	Cancel  *CancellationPlan
	Reserve *ReservationPlan
}

// PlanRebooking validates moving a booking from originalSlotID to newSlotID
// within one schedule. Slots belonging to the original range count as
// available for the new range, so shifting an appointment onto an
// overlapping start time works.
func PlanRebooking(s models.DaySchedule, originalSlotID, newSlotID string, customer models.Customer, services []models.Service, h Hours, rule PhoneRule) (*RebookingPlan, *BookingError) {
	cancel, berr := PlanCancellation(s, originalSlotID, h)
	if berr != nil {
		return nil, berr
	}
	if len(cancel.Indices) == 0 {
		return nil, NewBookingError(CodeUnknownError, "slot %s holds no booking to update", originalSlotID)
	}

	freed := make(map[int]bool, len(cancel.Indices))
	for _, j := range cancel.Indices {
		freed[j] = true
	}
	reserve, berr := planReservation(s, newSlotID, customer, services, h, rule, freed)
	if berr != nil {
		return nil, berr
	}
	return &RebookingPlan{Cancel: cancel, Reserve: reserve}, nil
}

// ApplyRebooking frees the old range then books the new one.
func ApplyRebooking(s *models.DaySchedule, plan *RebookingPlan) {
	ApplyCancellation(s, plan.Cancel)
	ApplyReservation(s, plan.Reserve)
}
