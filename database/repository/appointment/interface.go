// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"slotbook/database"
	"slotbook/models"
)

// AppointmentRepository is the record store consumed by the scheduling core.
type AppointmentRepository interface {
	// FindInRange returns appointments fully inside [from, to), ordered by start.
	FindInRange(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	// FindOverlapping returns appointments clashing with [start, end) under the
	// half-open overlap rule, pushed down as a store query.
	FindOverlapping(ctx context.Context, start, end time.Time) ([]models.Appointment, error)
	// FindByID returns the appointment with the given id, or nil when absent.
	FindByID(ctx context.Context, id int64) (*models.Appointment, error)
	Insert(ctx context.Context, appt *models.Appointment) (*models.Appointment, error)
	Delete(ctx context.Context, id int64) error
	// DeleteEndedBefore removes appointments whose end instant precedes cutoff.
	DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type mongoAppointmentRepo struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database("slotbook")
	repo := &mongoAppointmentRepo{
		coll:     db.Collection("appointments"),
		counters: db.Collection("counters"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		log.Printf("appointment repo: %v", err)
	}
	return repo
}
