package models

import "time"

// Appointment is a persisted booking of the single schedulable resource.
// Instants are stored in UTC; the id is assigned by the store on insert.
type Appointment struct {
	ID        int64     `bson:"id" json:"id"`
	StartAt   time.Time `bson:"startAt" json:"startAt"`
	EndAt     time.Time `bson:"endAt" json:"endAt"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
