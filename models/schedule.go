package models

import "time"

// TimeSlot is one fixed-length tick of a business day. A booking occupies a
// run of consecutive slots: the first ("primary") slot carries the customer
// and service data, the following ("continuation") slots only IsBooked.
type TimeSlot struct {
	ID            string    `bson:"id" json:"id"`
	StartTime     time.Time `bson:"startTime" json:"startTime"`
	IsBooked      bool      `bson:"isBooked" json:"isBooked"`
	CustomerName  string    `bson:"customerName,omitempty" json:"customerName,omitempty"`
	CustomerPhone string    `bson:"customerPhone,omitempty" json:"customerPhone,omitempty"`
	CustomerEmail string    `bson:"customerEmail,omitempty" json:"customerEmail,omitempty"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Services      []Service `bson:"services,omitempty" json:"services,omitempty"`
}

// EndTime derives the appointment end from the attached services. Only
// meaningful on primary slots; for a free or continuation slot it equals
// StartTime.
func (t TimeSlot) EndTime() time.Time {
	return t.StartTime.Add(time.Duration(TotalDuration(t.Services)) * time.Minute)
}

// IsPrimary reports whether the slot is the head of a booking. Continuation
// slots carry no customer data of their own.
func (t TimeSlot) IsPrimary() bool {
	return t.IsBooked && t.CustomerName != "" && len(t.Services) > 0
}

// DaySchedule is one business day's full slot sequence. It is persisted as a
// single document addressed by ShareToken from the public booking page.
type DaySchedule struct {
	ID         string     `bson:"id" json:"id"`
	Date       time.Time  `bson:"date" json:"date"`
	ShareToken string     `bson:"shareToken" json:"shareToken"`
	TimeSlots  []TimeSlot `bson:"timeSlots" json:"timeSlots"`
}

// SlotIndex returns the position of the slot with the given id, or -1.
func (s DaySchedule) SlotIndex(slotID string) int {
	for i := range s.TimeSlots {
		if s.TimeSlots[i].ID == slotID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy so plan/apply steps never alias repository state.
func (s DaySchedule) Clone() DaySchedule {
	out := s
	out.TimeSlots = make([]TimeSlot, len(s.TimeSlots))
	copy(out.TimeSlots, s.TimeSlots)
	for i := range out.TimeSlots {
		if len(s.TimeSlots[i].Services) > 0 {
			out.TimeSlots[i].Services = append([]Service(nil), s.TimeSlots[i].Services...)
		}
	}
	return out
}
