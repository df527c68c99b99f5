package models

import "time"

// ConfirmationPayload is the queued message produced when a schedule
// document diff shows a newly booked primary slot.
type ConfirmationPayload struct {
	ScheduleID    string    `json:"scheduleId"`
	Date          time.Time `json:"date"`
	SlotID        string    `json:"slotId"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Services      []Service `json:"services"`
	TotalPrice    float64   `json:"totalPrice"`
}
