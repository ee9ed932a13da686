package scheduling

import (
	"context"
	"time"

	"slotbook/models"
)

// SchedulingService is the appointment engine consumed by the transport
// layer. It receives already-typed instants and ids; parsing belongs to the
// handlers.
type SchedulingService interface {
	// Availability returns the ordered slot report for date's local day.
	Availability(ctx context.Context, date time.Time) ([]models.Slot, error)
	// Book validates and persists a new appointment with exactly the given
	// absolute instants.
	Book(ctx context.Context, start, end time.Time) (*models.Appointment, error)
	// Cancel hard-deletes a future appointment by id.
	Cancel(ctx context.Context, id int64) error
}
