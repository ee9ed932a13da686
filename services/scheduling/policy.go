package scheduling

import (
	"fmt"
	"time"

	"slotbook/config"
)

const dateLayout = "2006-01-02"

// Policy is the immutable scheduling policy shared by all requests. It is
// built once at startup from config and must not be mutated afterwards.
type Policy struct {
	OperationStartHour int
	OperationEndHour   int
	SlotDuration       time.Duration
	MaxSlotSpan        int
	Location           *time.Location

	blockedDates map[string]struct{}
	blockedTimes []config.HourRange
}

// NewPolicy resolves the configured timezone and blocked dates. An unknown
// zone or malformed blocked date is fatal to startup.
func NewPolicy(cfg config.Config) (*Policy, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	if cfg.SlotDurationMinutes <= 0 {
		return nil, fmt.Errorf("slot duration must be positive, got %d", cfg.SlotDurationMinutes)
	}

	blocked := make(map[string]struct{}, len(cfg.BlockedDates))
	for _, d := range cfg.BlockedDates {
		if _, err := time.ParseInLocation(dateLayout, d, loc); err != nil {
			return nil, fmt.Errorf("invalid blocked date %q: %w", d, err)
		}
		blocked[d] = struct{}{}
	}

	return &Policy{
		OperationStartHour: cfg.OperationStartHour,
		OperationEndHour:   cfg.OperationEndHour,
		SlotDuration:       time.Duration(cfg.SlotDurationMinutes) * time.Minute,
		MaxSlotSpan:        cfg.MaxAppointmentSlotSpan,
		Location:           loc,
		blockedDates:       blocked,
		blockedTimes:       cfg.BlockedTimes,
	}, nil
}

// ToLocal views an instant in the business timezone.
func (p *Policy) ToLocal(t time.Time) time.Time {
	return t.In(p.Location)
}

// DayStart returns midnight of t's calendar day in the business timezone.
func (p *Policy) DayStart(t time.Time) time.Time {
	lt := t.In(p.Location)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, p.Location)
}

// HourOnDay returns the given local hour on dayStart's calendar day. Going
// through time.Date keeps the zone offset correct across DST transitions.
func (p *Policy) HourOnDay(dayStart time.Time, hour int) time.Time {
	return time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(), hour, 0, 0, 0, p.Location)
}

// OperationWindow returns the operation-hour boundaries for dayStart's day.
func (p *Policy) OperationWindow(dayStart time.Time) (time.Time, time.Time) {
	return p.HourOnDay(dayStart, p.OperationStartHour), p.HourOnDay(dayStart, p.OperationEndHour)
}

// IsBlockedDate reports whether t falls on a blocked local calendar day.
func (p *Policy) IsBlockedDate(t time.Time) bool {
	_, ok := p.blockedDates[t.In(p.Location).Format(dateLayout)]
	return ok
}

// BlockedWindows materializes the recurring blocked-hour ranges on
// dayStart's calendar day.
func (p *Policy) BlockedWindows(dayStart time.Time) []Interval {
	windows := make([]Interval, 0, len(p.blockedTimes))
	for _, bt := range p.blockedTimes {
		windows = append(windows, Interval{
			Start: p.HourOnDay(dayStart, bt.StartHour),
			End:   p.HourOnDay(dayStart, bt.EndHour),
		})
	}
	return windows
}

// slotMinutes is the slot duration in whole minutes, for alignment checks.
func (p *Policy) slotMinutes() int {
	return int(p.SlotDuration / time.Minute)
}
