package scheduling

import "beautycrave/models"

// ReservationPlan is a validated reservation: the slot indices to occupy and
// the normalized customer data. Planning mutates nothing; Apply commits the
// plan to a schedule value.
type ReservationPlan struct {
	PrimaryIndex int
	Indices      []int
	Customer     models.Customer
	Services     []models.Service
}

// PlanReservation validates a booking request against the schedule's current
// slot state, short-circuiting on the first failure in request order: name,
// phone, primary slot occupancy, then the consecutive run.
func PlanReservation(s models.DaySchedule, slotID string, customer models.Customer, services []models.Service, h Hours, rule PhoneRule) (*ReservationPlan, *BookingError) {
	return planReservation(s, slotID, customer, services, h, rule, nil)
}

func planReservation(s models.DaySchedule, slotID string, customer models.Customer, services []models.Service, h Hours, rule PhoneRule, freed map[int]bool) (*ReservationPlan, *BookingError) {
	customer, berr := ValidateCustomer(customer, rule)
	if berr != nil {
		return nil, berr
	}
	if len(services) == 0 {
		return nil, NewBookingError(CodeUnknownError, "no services selected")
	}

	i := s.SlotIndex(slotID)
	if i < 0 {
		return nil, NewBookingError(CodeUnknownError, "slot %s not found", slotID)
	}
	if s.TimeSlots[i].IsBooked && !freed[i] {
		return nil, NewBookingError(CodeSlotAlreadyBooked, "slot at %s is already booked", s.TimeSlots[i].StartTime.Format("15:04"))
	}

	needed := h.SlotsNeeded(services)
	if s.TimeSlots[i].StartTime.Add(serviceSpan(services)).After(h.ClosingTime(s.Date)) {
		return nil, NewBookingError(CodeInsufficientSlots, "appointment would run past closing time")
	}
	if !runAvailable(s.TimeSlots, i, needed, freed) {
		return nil, NewBookingError(CodeInsufficientSlots, "not enough free consecutive slots for the selected services")
	}

	indices := make([]int, 0, needed)
	for j := i; j < i+needed; j++ {
		indices = append(indices, j)
	}
	return &ReservationPlan{PrimaryIndex: i, Indices: indices, Customer: customer, Services: services}, nil
}

// ApplyReservation marks the planned run booked. The primary slot takes the
// customer and service data, continuation slots only the booked flag.
func ApplyReservation(s *models.DaySchedule, plan *ReservationPlan) {
	for _, j := range plan.Indices {
		s.TimeSlots[j].IsBooked = true
	}
	primary := &s.TimeSlots[plan.PrimaryIndex]
	primary.CustomerName = plan.Customer.Name
	primary.CustomerPhone = plan.Customer.Phone
	primary.CustomerEmail = plan.Customer.Email
	primary.Notes = plan.Customer.Notes
	primary.Services = plan.Services
}
