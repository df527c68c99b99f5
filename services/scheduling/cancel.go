package scheduling

import "beautycrave/models"

// CancellationPlan is the slot range a cancellation frees. An empty Indices
// slice means the primary slot holds no booking and the cancel is a no-op.
type CancellationPlan struct {
	PrimaryIndex int
	Indices      []int
}

// PlanCancellation resolves the range a booking occupies, keyed off the
// primary slot's own service list. Continuation slots carry no marker of
// their own, so cancelling one of them (or an already-free slot) is a safe
// no-op rather than an error. An unknown slot id is UnknownError.
func PlanCancellation(s models.DaySchedule, slotID string, h Hours) (*CancellationPlan, *BookingError) {
	i := s.SlotIndex(slotID)
	if i < 0 {
		return nil, NewBookingError(CodeUnknownError, "slot %s not found", slotID)
	}
	slot := s.TimeSlots[i]
	if !slot.IsBooked || len(slot.Services) == 0 {
		return &CancellationPlan{PrimaryIndex: i}, nil
	}

	needed := h.SlotsNeeded(slot.Services)
	indices := make([]int, 0, needed)
	for j := i; j < i+needed && j < len(s.TimeSlots); j++ {
		indices = append(indices, j)
	}
	return &CancellationPlan{PrimaryIndex: i, Indices: indices}, nil
}

// ApplyCancellation resets every slot in the planned range to empty.
func ApplyCancellation(s *models.DaySchedule, plan *CancellationPlan) {
	for _, j := range plan.Indices {
		slot := &s.TimeSlots[j]
		slot.IsBooked = false
		slot.CustomerName = ""
		slot.CustomerPhone = ""
		slot.CustomerEmail = ""
		slot.Notes = ""
		slot.Services = nil
	}
}
