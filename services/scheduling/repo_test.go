package scheduling

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"slotbook/config"
	"slotbook/models"
)

// memRepo is an in-memory AppointmentRepository used across the package
// tests. It mirrors the store's query semantics, including the pushed-down
// overlap predicate.
type memRepo struct {
	mu    sync.Mutex
	seq   int64
	items map[int64]models.Appointment
}

func newMemRepo() *memRepo {
	return &memRepo{items: make(map[int64]models.Appointment)}
}

func (r *memRepo) FindInRange(_ context.Context, from, to time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.items {
		if !a.StartAt.Before(from) && a.EndAt.Before(to) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartAt.Before(out[j].StartAt) })
	return out, nil
}

func (r *memRepo) FindOverlapping(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.items {
		spansStart := !a.StartAt.After(start) && a.EndAt.After(start)
		spansEnd := a.StartAt.Before(end) && !a.EndAt.Before(end)
		if spansStart || spansEnd {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memRepo) FindByID(_ context.Context, id int64) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *memRepo) Insert(_ context.Context, appt *models.Appointment) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	now := time.Now().UTC()
	appt.ID = r.seq
	appt.CreatedAt = now
	appt.UpdatedAt = now
	r.items[appt.ID] = *appt
	saved := *appt
	return &saved, nil
}

func (r *memRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.items, id)
	return nil
}

func (r *memRepo) DeleteEndedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for id, a := range r.items {
		if a.EndAt.Before(cutoff) {
			delete(r.items, id)
			deleted++
		}
	}
	return deleted, nil
}

// testPolicy is the shared policy fixture: half-hour slots, 9-17 operation
// hours in Singapore, lunch hour blocked, Christmas blocked.
func testPolicy(t interface{ Fatalf(string, ...interface{}) }) *Policy {
	policy, err := NewPolicy(config.Config{
		OperationStartHour:     9,
		OperationEndHour:       17,
		SlotDurationMinutes:    30,
		MaxAppointmentSlotSpan: 4,
		Timezone:               "Asia/Singapore",
		BlockedDates:           []string{"2030-12-25"},
		BlockedTimes:           []config.HourRange{{StartHour: 12, EndHour: 13}},
	})
	if err != nil {
		t.Fatalf("building test policy: %v", err)
	}
	return policy
}

// local builds an instant from business-zone wall-clock components.
func local(p *Policy, year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, p.Location)
}
