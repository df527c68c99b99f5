package scheduling

import "beautycrave/models"

// UniqueBookings returns the primary slot of every booking on the schedule,
// in start-time order. Continuation slots don't self-identify, so this is a
// scan with memory: each primary found consumes the run its services claim.
func UniqueBookings(s models.DaySchedule, h Hours) []models.TimeSlot {
	var out []models.TimeSlot
	for i := 0; i < len(s.TimeSlots); {
		slot := s.TimeSlots[i]
		if slot.IsPrimary() {
			out = append(out, slot)
			i += h.SlotsNeeded(slot.Services)
			continue
		}
		i++
	}
	return out
}

// BookingCount is the number of distinct bookings on the schedule.
func BookingCount(s models.DaySchedule, h Hours) int {
	return len(UniqueBookings(s, h))
}

// DailyRevenue sums the service prices of every booking on the schedule,
// independent of how many continuation slots each one claims.
func DailyRevenue(s models.DaySchedule, h Hours) float64 {
	total := 0.0
	for _, slot := range UniqueBookings(s, h) {
		total += models.TotalPrice(slot.Services)
	}
	return total
}
