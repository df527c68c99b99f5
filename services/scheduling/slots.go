package scheduling

import (
	"time"

	"github.com/google/uuid"

	"beautycrave/models"
)

// GenerateSlots produces the full slot sequence for one business day:
// uniform ticks from opening time up to one granularity tick before close.
// It runs exactly once, when a schedule is created; regenerating over an
// existing schedule would wipe its booking state.
func GenerateSlots(date time.Time, h Hours) []models.TimeSlot {
	day := midnight(date)
	slots := make([]models.TimeSlot, 0, h.SlotCount())
	for m := h.OpenMinute; m+h.SlotMinutes <= h.CloseMinute; m += h.SlotMinutes {
		slots = append(slots, models.TimeSlot{
			ID:        uuid.NewString(),
			StartTime: day.Add(time.Duration(m) * time.Minute),
		})
	}
	return slots
}
