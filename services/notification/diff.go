package notification

import "beautycrave/models"

// DiffNewBookings compares two states of one schedule document and returns a
// confirmation payload for every primary slot whose IsBooked flipped false
// to true with contact info attached. Continuation slots flip too but carry
// no phone, so they never match. With no pre-image every booked primary
// counts as new; the worker de-duplicates by slot id.
func DiffNewBookings(before, after *models.DaySchedule) []models.ConfirmationPayload {
	if after == nil {
		return nil
	}

	var out []models.ConfirmationPayload
	for i, slot := range after.TimeSlots {
		if !slot.IsPrimary() || slot.CustomerPhone == "" {
			continue
		}
		if before != nil && i < len(before.TimeSlots) && before.TimeSlots[i].IsBooked {
			continue
		}
		out = append(out, models.ConfirmationPayload{
			ScheduleID:    after.ID,
			Date:          after.Date,
			SlotID:        slot.ID,
			CustomerName:  slot.CustomerName,
			CustomerPhone: slot.CustomerPhone,
			CustomerEmail: slot.CustomerEmail,
			StartTime:     slot.StartTime,
			EndTime:       slot.EndTime(),
			Services:      slot.Services,
			TotalPrice:    models.TotalPrice(slot.Services),
		})
	}
	return out
}
