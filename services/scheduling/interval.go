package scheduling

import "time"

// Interval is a half-open [Start, End) span of time. The same type covers
// slots, appointments and blocked-hour windows.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether a conflicts with b: a spans b's start, or b runs
// into a's span up to and including a's end. The rule is left-inclusive and
// right-exclusive on both sides, so an interval ending exactly when another
// begins does not conflict with it. Call with a as the existing (occupying)
// interval and b as the one being tested; the two orderings are not
// interchangeable.
func (a Interval) Overlaps(b Interval) bool {
	return (!a.Start.After(b.Start) && a.End.After(b.Start)) ||
		(a.Start.Before(b.End) && !a.End.Before(b.End))
}
