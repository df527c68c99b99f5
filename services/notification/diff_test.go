package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beautycrave/models"
)

func slotAt(hour, minute int, id string) models.TimeSlot {
	return models.TimeSlot{
		ID:        id,
		StartTime: time.Date(2026, 9, 14, hour, minute, 0, 0, time.UTC),
	}
}

func testSchedule() models.DaySchedule {
	return models.DaySchedule{
		ID:   "sched-1",
		Date: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		TimeSlots: []models.TimeSlot{
			slotAt(9, 0, "slot-0"),
			slotAt(9, 15, "slot-1"),
			slotAt(9, 30, "slot-2"),
			slotAt(9, 45, "slot-3"),
		},
	}
}

func book(s *models.DaySchedule, primary int, continuation int) {
	slot := &s.TimeSlots[primary]
	slot.IsBooked = true
	slot.CustomerName = "Maria Jensen"
	slot.CustomerPhone = "+4512345678"
	slot.Services = []models.Service{{ID: "gel", Name: "Gel Nails", DurationMinutes: 30, Price: 400}}
	for i := primary + 1; i <= primary+continuation; i++ {
		s.TimeSlots[i].IsBooked = true
	}
}

func TestDiffDetectsNewBooking(t *testing.T) {
	before := testSchedule()
	after := testSchedule()
	book(&after, 0, 1)

	payloads := DiffNewBookings(&before, &after)
	require.Len(t, payloads, 1)

	p := payloads[0]
	assert.Equal(t, "sched-1", p.ScheduleID)
	assert.Equal(t, "slot-0", p.SlotID)
	assert.Equal(t, "Maria Jensen", p.CustomerName)
	assert.Equal(t, "+4512345678", p.CustomerPhone)
	assert.Equal(t, after.TimeSlots[0].StartTime, p.StartTime)
	assert.Equal(t, after.TimeSlots[0].StartTime.Add(30*time.Minute), p.EndTime)
	assert.InDelta(t, 400, p.TotalPrice, 0.001)
}

func TestDiffIgnoresContinuationSlots(t *testing.T) {
	before := testSchedule()
	after := testSchedule()
	book(&after, 0, 2)

	payloads := DiffNewBookings(&before, &after)
	// Three slots flipped but only the primary carries contact info.
	require.Len(t, payloads, 1)
	assert.Equal(t, "slot-0", payloads[0].SlotID)
}

func TestDiffIgnoresPreexistingBookings(t *testing.T) {
	before := testSchedule()
	book(&before, 0, 1)
	after := testSchedule()
	book(&after, 0, 1)

	assert.Empty(t, DiffNewBookings(&before, &after))
}

func TestDiffDetectsSecondBookingOnly(t *testing.T) {
	before := testSchedule()
	book(&before, 0, 0)
	after := testSchedule()
	book(&after, 0, 0)
	book(&after, 2, 0)

	payloads := DiffNewBookings(&before, &after)
	require.Len(t, payloads, 1)
	assert.Equal(t, "slot-2", payloads[0].SlotID)
}

func TestDiffWithoutPreimageCountsAllBookings(t *testing.T) {
	after := testSchedule()
	book(&after, 0, 0)
	book(&after, 2, 0)

	assert.Len(t, DiffNewBookings(nil, &after), 2)
}

func TestDiffNilAfter(t *testing.T) {
	before := testSchedule()
	assert.Empty(t, DiffNewBookings(&before, nil))
}
