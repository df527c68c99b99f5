package scheduling

import "beautycrave/models"

// AvailableSlots returns every slot that could serve as the primary slot for
// a booking of the given service set: the slot is free, the appointment ends
// by closing time, and the whole consecutive run it needs is free. An empty
// service set yields no available slots. A linear scan is plenty at a few
// dozen slots per day.
func AvailableSlots(s models.DaySchedule, services []models.Service, h Hours) []models.TimeSlot {
	needed := h.SlotsNeeded(services)
	if needed == 0 {
		return nil
	}
	closing := h.ClosingTime(s.Date)

	var out []models.TimeSlot
	for i, slot := range s.TimeSlots {
		if !runAvailable(s.TimeSlots, i, needed, nil) {
			continue
		}
		if slot.StartTime.Add(serviceSpan(services)).After(closing) {
			continue
		}
		out = append(out, slot)
	}
	return out
}

// runAvailable reports whether the `needed` consecutive slots starting at
// index i all exist and are unbooked. Indices in freed are treated as
// available; update/move passes the range it is about to release.
func runAvailable(slots []models.TimeSlot, i, needed int, freed map[int]bool) bool {
	if i+needed > len(slots) {
		return false
	}
	for j := i; j < i+needed; j++ {
		if slots[j].IsBooked && !freed[j] {
			return false
		}
	}
	return true
}
