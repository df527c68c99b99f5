package models

import "time"

// Customer holds the contact details a booking request carries. Email and
// notes are optional.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// ReserveRequest is the public booking page payload.
type ReserveRequest struct {
	SlotID     string   `json:"slotId" binding:"required"`
	Customer   Customer `json:"customer" binding:"required"`
	ServiceIDs []string `json:"serviceIds" binding:"required"`
}

// UpdateBookingRequest moves a booking to a new primary slot on the same
// schedule, optionally editing customer details and services.
type UpdateBookingRequest struct {
	OriginalSlotID string   `json:"originalSlotId" binding:"required"`
	NewSlotID      string   `json:"newSlotId" binding:"required"`
	Customer       Customer `json:"customer" binding:"required"`
	ServiceIDs     []string `json:"serviceIds" binding:"required"`
}

// MoveBookingRequest moves a booking across schedules (a different day).
type MoveBookingRequest struct {
	FromScheduleID string   `json:"fromScheduleId" binding:"required"`
	ToScheduleID   string   `json:"toScheduleId" binding:"required"`
	OriginalSlotID string   `json:"originalSlotId" binding:"required"`
	NewSlotID      string   `json:"newSlotId" binding:"required"`
	Customer       Customer `json:"customer" binding:"required"`
	ServiceIDs     []string `json:"serviceIds" binding:"required"`
}

// ScheduleStats is the owner dashboard view over one schedule. Derived from
// slot state on demand, never stored.
type ScheduleStats struct {
	ScheduleID   string     `json:"scheduleId"`
	Date         time.Time  `json:"date"`
	BookingCount int        `json:"bookingCount"`
	DailyRevenue float64    `json:"dailyRevenue"`
	Bookings     []TimeSlot `json:"bookings"`
}
