package models

import "time"

// Slot is one bookable window of the day's availability report. Slots are
// derived fresh on every query and never persisted.
type Slot struct {
	Date time.Time `json:"date"`
	Time time.Time `json:"time"`
	// Available is 1 when the slot is free and 0 when taken.
	Available     int    `json:"available"`
	AppointmentID *int64 `json:"appointmentId"`
}
