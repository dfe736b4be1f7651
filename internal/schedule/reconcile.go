package schedule

import "time"

// Reconcile marks each slot booked when it conflicts with an event on the
// same weekday, or when the slot has already started. All intervals are
// half-open [start, end): an event ending exactly at a slot's start, or
// starting exactly at its end, is not a conflict. Event times are converted
// into loc before comparison so both sides share one frame.
//
// Booked flags are derived purely from (events, now); running Reconcile
// twice with the same inputs yields the same flags.
func Reconcile(slots map[Weekday][]Slot, events []Event, now time.Time, loc *time.Location) {
	for _, ev := range events {
		start := ev.Start.In(loc)
		end := ev.End.In(loc)
		day := slots[ISOWeekday(start)]
		for i := range day {
			if start.Before(day[i].End()) && day[i].Start.Before(end) {
				day[i].Booked = true
			}
		}
	}

	// A slot that has already started can no longer be booked, with or
	// without events covering it.
	for _, day := range slots {
		for i := range day {
			if !day[i].Start.After(now) {
				day[i].Booked = true
			}
		}
	}
}
