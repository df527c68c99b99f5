package scheduling

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beautycrave/models"
)

func validCustomer() models.Customer {
	return models.Customer{Name: "Maria Jensen", Phone: "+45 12 34 56 78", Email: "maria@example.dk"}
}

func TestValidateCustomer(t *testing.T) {
	tests := []struct {
		name     string
		customer models.Customer
		wantCode string
	}{
		{"valid", validCustomer(), ""},
		{"valid compact phone", models.Customer{Name: "Bo", Phone: "+4512345678"}, ""},
		{"name too short", models.Customer{Name: " A ", Phone: "+4512345678"}, CodeInvalidName},
		{"name too long", models.Customer{Name: strings.Repeat("a", 51), Phone: "+4512345678"}, CodeInvalidName},
		{"seven digits", models.Customer{Name: "Maria", Phone: "+451234567"}, CodeInvalidPhoneNumber},
		{"nine digits", models.Customer{Name: "Maria", Phone: "+45123456789"}, CodeInvalidPhoneNumber},
		{"wrong prefix", models.Customer{Name: "Maria", Phone: "0012345678"}, CodeInvalidPhoneNumber},
		{"letters in number", models.Customer{Name: "Maria", Phone: "+45abcd5678"}, CodeInvalidPhoneNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, berr := ValidateCustomer(tt.customer, DefaultPhoneRule)
			if tt.wantCode == "" {
				require.Nil(t, berr)
				assert.NotContains(t, got.Phone, " ")
				return
			}
			require.NotNil(t, berr)
			assert.Equal(t, tt.wantCode, berr.Code)
		})
	}
}

// Scenario: a 45-minute service set booked at 09:00 occupies 09:00, 09:15
// and 09:30; only the first slot carries customer data.
func TestReserveMarksPrimaryAndContinuations(t *testing.T) {
	s := testSchedule(t)
	services := []models.Service{svc("manicure", 45, 450)}

	plan, berr := PlanReservation(s, s.TimeSlots[0].ID, validCustomer(), services, DefaultHours, DefaultPhoneRule)
	require.Nil(t, berr)
	ApplyReservation(&s, plan)

	for i := 0; i < 3; i++ {
		assert.True(t, s.TimeSlots[i].IsBooked, "slot %d should be booked", i)
	}
	assert.False(t, s.TimeSlots[3].IsBooked)

	primary := s.TimeSlots[0]
	assert.Equal(t, "Maria Jensen", primary.CustomerName)
	assert.Equal(t, "+4512345678", primary.CustomerPhone)
	assert.Len(t, primary.Services, 1)

	for i := 1; i < 3; i++ {
		cont := s.TimeSlots[i]
		assert.Empty(t, cont.CustomerName)
		assert.Empty(t, cont.CustomerPhone)
		assert.Empty(t, cont.Services)
	}
}

func TestReserveRejectsBookedPrimary(t *testing.T) {
	s := testSchedule(t)
	services := []models.Service{svc("a", 15, 100)}
	plan, berr := PlanReservation(s, s.TimeSlots[0].ID, validCustomer(), services, DefaultHours, DefaultPhoneRule)
	require.Nil(t, berr)
	ApplyReservation(&s, plan)

	_, berr = PlanReservation(s, s.TimeSlots[0].ID, validCustomer(), services, DefaultHours, DefaultPhoneRule)
	require.NotNil(t, berr)
	assert.Equal(t, CodeSlotAlreadyBooked, berr.Code)
}

func TestReserveRejectsBlockedRun(t *testing.T) {
	s := testSchedule(t)
	// Occupy 09:30.
	plan, berr := PlanReservation(s, s.TimeSlots[2].ID, validCustomer(), []models.Service{svc("a", 15, 100)}, DefaultHours, DefaultPhoneRule)
	require.Nil(t, berr)
	ApplyReservation(&s, plan)

	// A 45-minute booking at 09:00 needs 09:00-09:30 and must fail.
	_, berr = PlanReservation(s, s.TimeSlots[0].ID, validCustomer(), []models.Service{svc("b", 45, 100)}, DefaultHours, DefaultPhoneRule)
	require.NotNil(t, berr)
	assert.Equal(t, CodeInsufficientSlots, berr.Code)
}

func TestReserveRejectsPastClosing(t *testing.T) {
	s := testSchedule(t)
	last := s.TimeSlots[len(s.TimeSlots)-1] // 21:45

	_, berr := PlanReservation(s, last.ID, validCustomer(), []models.Service{svc("a", 30, 100)}, DefaultHours, DefaultPhoneRule)
	require.NotNil(t, berr)
	assert.Equal(t, CodeInsufficientSlots, berr.Code)
}

func TestReserveUnknownSlot(t *testing.T) {
	s := testSchedule(t)
	_, berr := PlanReservation(s, "nope", validCustomer(), []models.Service{svc("a", 15, 100)}, DefaultHours, DefaultPhoneRule)
	require.NotNil(t, berr)
	assert.Equal(t, CodeUnknownError, berr.Code)
}

// Reserve followed by cancel restores field-level equality with the
// original schedule.
func TestReserveCancelRoundTrip(t *testing.T) {
	s := testSchedule(t)
	before := s.Clone()
	services := []models.Service{svc("pedicure", 90, 550)}

	plan, berr := PlanReservation(s, s.TimeSlots[8].ID, validCustomer(), services, DefaultHours, DefaultPhoneRule)
	require.Nil(t, berr)
	ApplyReservation(&s, plan)

	cancel, berr := PlanCancellation(s, s.TimeSlots[8].ID, DefaultHours)
	require.Nil(t, berr)
	ApplyCancellation(&s, cancel)

	assert.Equal(t, before, s)
}

func TestCancelIsIdempotent(t *testing.T) {
	s := testSchedule(t)
	services := []models.Service{svc("a", 30, 100)}
	plan, berr := PlanReservation(s, s.TimeSlots[0].ID, validCustomer(), services, DefaultHours, DefaultPhoneRule)
	require.Nil(t, berr)
	ApplyReservation(&s, plan)

	cancel, berr := PlanCancellation(s, s.TimeSlots[0].ID, DefaultHours)
	require.Nil(t, berr)
	ApplyCancellation(&s, cancel)
	after := s.Clone()

	// Cancelling the same, now-free slot again changes nothing and errors
	// nothing.
	cancel, berr = PlanCancellation(s, s.TimeSlots[0].ID, DefaultHours)
	require.Nil(t, berr)
	assert.Empty(t, cancel.Indices)
	ApplyCancellation(&s, cancel)
	assert.Equal(t, after, s)
}

func TestCancelContinuationSlotIsNoOp(t *testing.T) {
	s := testSchedule(t)
	services := []models.Service{svc("a", 45, 100)}
	plan, berr := PlanReservation(s, s.TimeSlots[0].ID, validCustomer(), services, DefaultHours, DefaultPhoneRule)
	require.Nil(t, berr)
	ApplyReservation(&s, plan)

	// Slot 1 is a continuation: booked but carrying no services, so there is
	// no duration to key a release off.
	cancel, berr := PlanCancellation(s, s.TimeSlots[1].ID, DefaultHours)
	require.Nil(t, berr)
	assert.Empty(t, cancel.Indices)
}

// Scenario: moving a 30-minute booking from 10:00 to 10:15 succeeds because
// the new range's overlap with the old range is self-freed.
func TestRebookingToleratesOverlap(t *testing.T) {
	s := testSchedule(t)
	services := []models.Service{svc("a", 30, 100)}
	plan, berr := PlanReservation(s, s.TimeSlots[4].ID, validCustomer(), services, DefaultHours, DefaultPhoneRule) // 10:00
	require.Nil(t, berr)
	ApplyReservation(&s, plan)

	rebook, berr := PlanRebooking(s, s.TimeSlots[4].ID, s.TimeSlots[5].ID, validCustomer(), services, DefaultHours, DefaultPhoneRule) // 10:15
	require.Nil(t, berr)
	ApplyRebooking(&s, rebook)

	assert.False(t, s.TimeSlots[4].IsBooked)
	assert.True(t, s.TimeSlots[5].IsBooked)
	assert.True(t, s.TimeSlots[6].IsBooked)
	assert.False(t, s.TimeSlots[7].IsBooked)
	assert.Equal(t, "Maria Jensen", s.TimeSlots[5].CustomerName)
	assert.Empty(t, s.TimeSlots[4].CustomerName)
}

func TestRebookingFailsBeforeMutating(t *testing.T) {
	s := testSchedule(t)
	services := []models.Service{svc("a", 30, 100)}
	plan, berr := PlanReservation(s, s.TimeSlots[0].ID, validCustomer(), services, DefaultHours, DefaultPhoneRule)
	require.Nil(t, berr)
	ApplyReservation(&s, plan)
	// Block the target range.
	plan, berr = PlanReservation(s, s.TimeSlots[10].ID, validCustomer(), services, DefaultHours, DefaultPhoneRule)
	require.Nil(t, berr)
	ApplyReservation(&s, plan)
	before := s.Clone()

	_, berr = PlanRebooking(s, s.TimeSlots[0].ID, s.TimeSlots[10].ID, validCustomer(), services, DefaultHours, DefaultPhoneRule)
	require.NotNil(t, berr)
	assert.Equal(t, CodeSlotAlreadyBooked, berr.Code)
	assert.Equal(t, before, s, "a rejected rebooking must not touch the schedule")
}

func TestRebookingOfNonBookingFails(t *testing.T) {
	s := testSchedule(t)
	_, berr := PlanRebooking(s, s.TimeSlots[0].ID, s.TimeSlots[1].ID, validCustomer(), []models.Service{svc("a", 15, 100)}, DefaultHours, DefaultPhoneRule)
	require.NotNil(t, berr)
	assert.Equal(t, CodeUnknownError, berr.Code)
}
