package scheduling

import (
	"context"
	"time"

	appointmentRepo "slotbook/database/repository/appointment"
)

// Validator gates appointment creation. Rules run in a fixed order and the
// first failure decides the reported reason; reordering them changes which
// reason the caller sees.
type Validator struct {
	Repo   appointmentRepo.AppointmentRepository
	Policy *Policy
}

// bookingRequest carries both representations of the requested window: the
// absolute instants for clash detection and the business-zone views for
// every policy rule.
type bookingRequest struct {
	start, end           time.Time
	localStart, localEnd time.Time
	localNow             time.Time
	dayStart             time.Time
}

type rule func(ctx context.Context, req *bookingRequest) error

// Validate checks a requested [start, end) window against all booking rules.
// It returns nil when the appointment may be created, a *RejectError for a
// rule failure, or the store's error unchanged when the clash query fails.
func (v *Validator) Validate(ctx context.Context, start, end, now time.Time) error {
	p := v.Policy
	req := &bookingRequest{
		start:      start,
		end:        end,
		localStart: p.ToLocal(start),
		localEnd:   p.ToLocal(end),
		localNow:   p.ToLocal(now),
	}
	req.dayStart = p.DayStart(req.localStart)

	rules := []rule{
		v.notInPast,
		v.startAligned,
		v.endAligned,
		v.ordered,
		v.withinOperationHours,
		v.withinMaxDuration,
		v.notBlockedDate,
		v.notBlockedTime,
		v.noClash,
	}
	for _, r := range rules {
		if err := r(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) notInPast(_ context.Context, req *bookingRequest) error {
	if req.localStart.Before(req.localNow) {
		return ErrPastStart
	}
	return nil
}

func (v *Validator) startAligned(_ context.Context, req *bookingRequest) error {
	if !v.aligned(req.localStart) {
		return ErrStartFormat
	}
	return nil
}

func (v *Validator) endAligned(_ context.Context, req *bookingRequest) error {
	if !v.aligned(req.localEnd) {
		return ErrEndFormat
	}
	return nil
}

// aligned requires the local minute to sit on the slot grid with no seconds.
func (v *Validator) aligned(t time.Time) bool {
	return t.Minute()%v.Policy.slotMinutes() == 0 && t.Second() == 0
}

func (v *Validator) ordered(_ context.Context, req *bookingRequest) error {
	if !req.localStart.Before(req.localEnd) {
		return ErrOrdering
	}
	return nil
}

func (v *Validator) withinOperationHours(_ context.Context, req *bookingRequest) error {
	opStart, opEnd := v.Policy.OperationWindow(req.dayStart)
	if req.localStart.Before(opStart) || req.localEnd.After(opEnd) {
		return ErrOperationHours
	}
	return nil
}

func (v *Validator) withinMaxDuration(_ context.Context, req *bookingRequest) error {
	max := v.Policy.SlotDuration * time.Duration(v.Policy.MaxSlotSpan)
	if req.localEnd.Sub(req.localStart) > max {
		return ErrMaxDuration
	}
	return nil
}

func (v *Validator) notBlockedDate(_ context.Context, req *bookingRequest) error {
	if v.Policy.IsBlockedDate(req.localStart) {
		return ErrBlockedDate
	}
	return nil
}

func (v *Validator) notBlockedTime(_ context.Context, req *bookingRequest) error {
	requested := Interval{Start: req.localStart, End: req.localEnd}
	for _, window := range v.Policy.BlockedWindows(req.dayStart) {
		if window.Overlaps(requested) {
			return ErrBlockedTime
		}
	}
	return nil
}

// noClash is the only rule that touches the store; the overlap predicate is
// evaluated by the query itself (see FindOverlapping).
func (v *Validator) noClash(ctx context.Context, req *bookingRequest) error {
	clashes, err := v.Repo.FindOverlapping(ctx, req.start, req.end)
	if err != nil {
		return err
	}
	if len(clashes) > 0 {
		return ErrClash
	}
	return nil
}
