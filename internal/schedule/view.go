package schedule

import "time"

// Appointment is one slot prepared for display.
type Appointment struct {
	Start  time.Time `json:"start"`
	Label  string    `json:"label"`
	Value  string    `json:"value"`
	Booked bool      `json:"booked"`
}

// Day is one weekday's schedule prepared for display.
type Day struct {
	Weekday      Weekday       `json:"weekday"`
	Name         string        `json:"name"`
	Date         string        `json:"date"`
	Appointments []Appointment `json:"appointments"`
}

// BuildView formats reconciled slots and rotates the week so the first entry
// is today's weekday, wrapping mod 7. Days without slots keep an empty date.
func BuildView(slots map[Weekday][]Slot, today time.Time) [7]Day {
	byDay := make(map[Weekday]Day, 7)
	for w := Monday; w <= Sunday; w++ {
		d := Day{Weekday: w, Name: w.String()}
		for _, s := range slots[w] {
			d.Appointments = append(d.Appointments, Appointment{
				Start:  s.Start,
				Label:  s.Start.Format("3:04 PM"),
				Value:  s.Start.Format(SlotIDLayout),
				Booked: s.Booked,
			})
			d.Date = s.Start.Format("1/02")
		}
		byDay[w] = d
	}

	var view [7]Day
	wd := int(ISOWeekday(today))
	for i := 0; i < 7; i++ {
		view[i] = byDay[Weekday((wd-1+i)%7+1)]
	}
	return view
}
