package scheduling

import (
	"context"
	"time"

	appointmentRepo "slotbook/database/repository/appointment"
	"slotbook/models"
)

// AvailabilityPlanner produces the per-slot availability report for a day.
// Planning is a pure read; the same inputs always yield the same report.
type AvailabilityPlanner struct {
	Repo   appointmentRepo.AppointmentRepository
	Policy *Policy
}

// PlanDay builds the slot grid for date's local calendar day and marks each
// slot with the first appointment occupying it, if any.
func (pl *AvailabilityPlanner) PlanDay(ctx context.Context, date time.Time) ([]models.Slot, error) {
	dayStart := pl.Policy.DayStart(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	utcDayStart := dayStart.UTC()
	appts, err := pl.Repo.FindInRange(ctx, utcDayStart, dayEnd.UTC())
	if err != nil {
		return nil, err
	}

	opStart, opEnd := pl.Policy.OperationWindow(dayStart)

	var slots []models.Slot
	for _, grid := range SlotGrid(opStart.UTC(), opEnd.UTC(), pl.Policy.SlotDuration) {
		slot := models.Slot{
			Date:      utcDayStart,
			Time:      grid.Start,
			Available: 1,
		}
		for i := range appts {
			occupied := Interval{Start: appts[i].StartAt, End: appts[i].EndAt}
			if occupied.Overlaps(grid) {
				id := appts[i].ID
				slot.Available = 0
				slot.AppointmentID = &id
				break
			}
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
