package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"beautycrave/models"
)

func testDate() time.Time {
	return time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
}

func testSchedule(t *testing.T) models.DaySchedule {
	t.Helper()
	return models.DaySchedule{
		ID:         "sched-1",
		Date:       testDate(),
		ShareToken: "token-1",
		TimeSlots:  GenerateSlots(testDate(), DefaultHours),
	}
}

// svc builds a throwaway service of the given duration.
func svc(name string, minutes int, price float64) models.Service {
	return models.Service{ID: name, Name: name, DurationMinutes: minutes, Price: price}
}

func TestGenerateSlots(t *testing.T) {
	slots := GenerateSlots(testDate(), DefaultHours)

	// 09:00 through 21:45 at 15-minute ticks.
	assert.Len(t, slots, 52)
	assert.Equal(t, 9, slots[0].StartTime.Hour())
	assert.Equal(t, 0, slots[0].StartTime.Minute())
	last := slots[len(slots)-1]
	assert.Equal(t, 21, last.StartTime.Hour())
	assert.Equal(t, 45, last.StartTime.Minute())

	seen := make(map[string]bool)
	for i, s := range slots {
		assert.False(t, s.IsBooked)
		assert.NotEmpty(t, s.ID)
		assert.False(t, seen[s.ID], "slot ids must be unique")
		seen[s.ID] = true
		if i > 0 {
			gap := s.StartTime.Sub(slots[i-1].StartTime)
			assert.Equal(t, 15*time.Minute, gap, "slots must be uniformly spaced")
		}
	}
}

func TestGenerateSlotsCustomHours(t *testing.T) {
	h := Hours{OpenMinute: 10 * 60, CloseMinute: 12 * 60, SlotMinutes: 30}
	slots := GenerateSlots(testDate(), h)

	assert.Len(t, slots, 4)
	assert.Equal(t, 10, slots[0].StartTime.Hour())
	assert.Equal(t, 11, slots[3].StartTime.Hour())
	assert.Equal(t, 30, slots[3].StartTime.Minute())
}

func TestSlotsNeeded(t *testing.T) {
	tests := []struct {
		name     string
		services []models.Service
		want     int
	}{
		{"no services", nil, 0},
		{"single tick", []models.Service{svc("a", 15, 100)}, 1},
		{"exact multiple", []models.Service{svc("a", 45, 100)}, 3},
		{"rounds up", []models.Service{svc("a", 40, 100)}, 3},
		{"combined", []models.Service{svc("a", 45, 100), svc("b", 30, 50)}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultHours.SlotsNeeded(tt.services))
		})
	}
}
