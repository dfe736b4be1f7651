package schedule

import (
	"fmt"
	"time"
)

// Weekday is an ISO-8601 weekday number, Monday=1 through Sunday=7.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = map[Weekday]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

func (w Weekday) String() string {
	if name, ok := weekdayNames[w]; ok {
		return name
	}
	return fmt.Sprintf("Weekday(%d)", int(w))
}

// ISOWeekday converts t's weekday from Go's Sunday=0 convention.
func ISOWeekday(t time.Time) Weekday {
	return Weekday((int(t.Weekday())+6)%7 + 1)
}

// TimeOfDay is a clock time with minute resolution, e.g. 18:00.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM", tolerating trailing seconds ("18:00:00").
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) < 5 {
		return TimeOfDay{}, fmt.Errorf("invalid time string: %s", s)
	}
	tt, err := time.Parse("15:04", s[:5])
	if err != nil {
		return TimeOfDay{}, err
	}
	return TimeOfDay{Hour: tt.Hour(), Minute: tt.Minute()}, nil
}

// Offset returns the duration since midnight.
func (t TimeOfDay) Offset() time.Duration {
	return time.Duration(t.Hour)*time.Hour + time.Duration(t.Minute)*time.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Window is a recurring interval of offered time on a weekday:
// it opens at Start and stays open for Duration.
type Window struct {
	Start    TimeOfDay
	Duration time.Duration
}

// WeeklyTemplate maps each weekday to its ordered availability windows.
// It is policy configuration, immutable after construction.
type WeeklyTemplate map[Weekday][]Window

// Validate checks that every weekday key is in 1..7 and that the windows of
// each weekday are positive, ordered by start and pairwise disjoint.
// Overlapping windows are rejected rather than silently producing
// duplicate slots.
func (t WeeklyTemplate) Validate() error {
	for day, windows := range t {
		if day < Monday || day > Sunday {
			return fmt.Errorf("invalid weekday %d", int(day))
		}
		for i, w := range windows {
			if w.Duration <= 0 {
				return fmt.Errorf("%s window %d: duration must be positive", day, i)
			}
			if i == 0 {
				continue
			}
			prev := windows[i-1]
			if prev.Start.Offset()+prev.Duration > w.Start.Offset() {
				return fmt.Errorf("%s: windows %d and %d overlap or are out of order", day, i-1, i)
			}
		}
	}
	return nil
}
