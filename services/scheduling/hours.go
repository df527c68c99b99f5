// Package scheduling holds the pure slot arithmetic of the studio: slot
// generation, availability search, reservation planning and the derived
// views. Functions here take and return explicit Schedule values and never
// touch storage; the repository re-runs the same plans inside its
// transactions.
package scheduling

import (
	"time"

	"beautycrave/models"
)

// Hours describes the studio's business day as minutes from midnight plus
// the slot granularity.
type Hours struct {
	OpenMinute  int
	CloseMinute int
	SlotMinutes int
}

// DefaultHours is 09:00-22:00 at 15-minute granularity.
var DefaultHours = Hours{OpenMinute: 9 * 60, CloseMinute: 22 * 60, SlotMinutes: 15}

// SlotCount is the number of slots a day holds. The last slot starts one
// granularity tick before close so every slot can host at least the
// shortest service.
func (h Hours) SlotCount() int {
	return (h.CloseMinute - h.OpenMinute) / h.SlotMinutes
}

// ClosingTime returns the business close as an absolute time on the
// schedule's day.
func (h Hours) ClosingTime(date time.Time) time.Time {
	return midnight(date).Add(time.Duration(h.CloseMinute) * time.Minute)
}

// SlotsNeeded is how many consecutive slots a service set occupies.
func (h Hours) SlotsNeeded(services []models.Service) int {
	d := models.TotalDuration(services)
	if d <= 0 {
		return 0
	}
	return (d + h.SlotMinutes - 1) / h.SlotMinutes
}

func serviceSpan(services []models.Service) time.Duration {
	return time.Duration(models.TotalDuration(services)) * time.Minute
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
