package scheduling

import (
	"context"
	"time"

	"go.uber.org/zap"

	appointmentRepo "slotbook/database/repository/appointment"
	"slotbook/models"
	"slotbook/utils"
)

// DefaultSchedulingService wires the planner and validator to the record
// store. It holds no per-request state; Policy is read-only after startup.
type DefaultSchedulingService struct {
	Repo      appointmentRepo.AppointmentRepository
	Policy    *Policy
	Cache     *AvailabilityCache
	Planner   *AvailabilityPlanner
	Validator *Validator

	// Clock overrides time.Now in tests; leave nil in production.
	Clock func() time.Time
}

// NewSchedulingService assembles the engine. cache may be nil.
func NewSchedulingService(repo appointmentRepo.AppointmentRepository, policy *Policy, cache *AvailabilityCache) *DefaultSchedulingService {
	return &DefaultSchedulingService{
		Repo:      repo,
		Policy:    policy,
		Cache:     cache,
		Planner:   &AvailabilityPlanner{Repo: repo, Policy: policy},
		Validator: &Validator{Repo: repo, Policy: policy},
	}
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// dayKey is the cache key component for the local day containing t.
func (s *DefaultSchedulingService) dayKey(t time.Time) string {
	return s.Policy.DayStart(t).Format(dateLayout)
}

func (s *DefaultSchedulingService) Availability(ctx context.Context, date time.Time) ([]models.Slot, error) {
	day := s.dayKey(date)
	if slots, ok := s.Cache.Get(ctx, day); ok {
		return slots, nil
	}

	slots, err := s.Planner.PlanDay(ctx, date)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, day, slots)
	return slots, nil
}

func (s *DefaultSchedulingService) Book(ctx context.Context, start, end time.Time) (*models.Appointment, error) {
	if err := s.Validator.Validate(ctx, start, end, s.now()); err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		StartAt: start.UTC(),
		EndAt:   end.UTC(),
	}
	saved, err := s.Repo.Insert(ctx, appt)
	if err != nil {
		return nil, err
	}

	s.Cache.Invalidate(ctx, s.dayKey(saved.StartAt))
	utils.GetLogger().Info("appointment booked",
		zap.Int64("id", saved.ID),
		zap.Time("startAt", saved.StartAt),
		zap.Time("endAt", saved.EndAt))
	return saved, nil
}

// Cancel compares against the absolute current instant, unlike booking's
// past-check which runs in the business timezone.
func (s *DefaultSchedulingService) Cancel(ctx context.Context, id int64) error {
	appt, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if appt == nil {
		return ErrNotFound
	}
	if appt.StartAt.Before(s.now().UTC()) {
		return ErrPastAppointment
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}

	s.Cache.Invalidate(ctx, s.dayKey(appt.StartAt))
	utils.GetLogger().Info("appointment cancelled", zap.Int64("id", id))
	return nil
}
