package schedule

import "time"

// SlotIDLayout is the wire format for a slot start used by the booking form.
const SlotIDLayout = "01/02/06 03:04 PM"

// Slot is the atomic bookable unit: a fixed-length interval anchored to a
// concrete date. Booked is recomputed on every reconciliation pass and is
// never persisted.
type Slot struct {
	Start  time.Time
	Length time.Duration
	Booked bool
}

// End returns the exclusive end of the slot interval.
func (s Slot) End() time.Time {
	return s.Start.Add(s.Length)
}

// Event is an entry read from (or appended to) the external calendar.
type Event struct {
	Start         time.Time
	End           time.Time
	Summary       string
	AttendeeEmail string
	AttendeeName  string
}

// WeekDates resolves each weekday to its date in the current 7-day window:
// today + ((w - today.isoWeekday()) mod 7) days, at midnight in today's
// location. Each weekday anchors to its own date, so a Tuesday window and a
// Sunday window generated in the same pass land on different dates.
func WeekDates(today time.Time) map[Weekday]time.Time {
	year, month, day := today.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, today.Location())
	wd := int(ISOWeekday(today))

	dates := make(map[Weekday]time.Time, 7)
	for w := Monday; w <= Sunday; w++ {
		offset := (int(w) - wd + 7) % 7
		dates[w] = midnight.AddDate(0, 0, offset)
	}
	return dates
}

// Generate expands the template into concrete slots for the current
// occurrence of each weekday. Within a window, slots start at the window
// start and advance by slotLen for as long as the slot end fits inside the
// window; a window shorter than slotLen yields no slots. All slots start
// unbooked. Pure function of (template, today, slotLen).
func Generate(tmpl WeeklyTemplate, today time.Time, slotLen time.Duration) map[Weekday][]Slot {
	dates := WeekDates(today)

	slots := make(map[Weekday][]Slot, 7)
	for w := Monday; w <= Sunday; w++ {
		slots[w] = nil
		for _, win := range tmpl[w] {
			windowStart := dates[w].Add(win.Start.Offset())
			windowEnd := windowStart.Add(win.Duration)
			for start := windowStart; !start.Add(slotLen).After(windowEnd); start = start.Add(slotLen) {
				slots[w] = append(slots[w], Slot{Start: start, Length: slotLen})
			}
		}
	}
	return slots
}
