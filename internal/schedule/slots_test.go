package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-03-10 is a Monday.
func monday(hour, min int) time.Time {
	return time.Date(2025, 3, 10, hour, min, 0, 0, time.UTC)
}

func eveningTemplate() WeeklyTemplate {
	return WeeklyTemplate{
		Monday: {{Start: TimeOfDay{Hour: 18}, Duration: 6 * time.Hour}},
	}
}

func TestISOWeekday(t *testing.T) {
	assert.Equal(t, Monday, ISOWeekday(monday(0, 0)))
	assert.Equal(t, Sunday, ISOWeekday(monday(0, 0).AddDate(0, 0, 6)))
}

func TestWeekDates(t *testing.T) {
	// Wednesday 2025-03-12: Monday and Tuesday have already passed this
	// week, so they resolve to next week's dates.
	today := time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)
	dates := WeekDates(today)

	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), dates[Wednesday])
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), dates[Sunday])
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), dates[Monday])
	assert.Equal(t, time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC), dates[Tuesday])
}

func TestGenerateMondayEvening(t *testing.T) {
	slots := Generate(eveningTemplate(), monday(10, 0), 20*time.Minute)

	mon := slots[Monday]
	require.Len(t, mon, 18)
	assert.Equal(t, monday(18, 0), mon[0].Start)
	assert.Equal(t, monday(18, 20), mon[1].Start)
	assert.Equal(t, monday(23, 40), mon[17].Start)
	for _, s := range mon {
		assert.False(t, s.Booked)
	}
	for w := Tuesday; w <= Sunday; w++ {
		assert.Empty(t, slots[w])
	}
}

func TestGenerateSlotsStayInsideWindows(t *testing.T) {
	tmpl := WeeklyTemplate{
		Tuesday: {
			{Start: TimeOfDay{Hour: 9, Minute: 30}, Duration: 90 * time.Minute},
			{Start: TimeOfDay{Hour: 14}, Duration: 50 * time.Minute},
		},
	}
	slots := Generate(tmpl, monday(8, 0), 20*time.Minute)

	tue := slots[Tuesday]
	require.NotEmpty(t, tue)
	dates := WeekDates(monday(8, 0))
	for _, s := range tue {
		inside := false
		for _, win := range tmpl[Tuesday] {
			winStart := dates[Tuesday].Add(win.Start.Offset())
			winEnd := winStart.Add(win.Duration)
			if !s.Start.Before(winStart) && !s.End().After(winEnd) {
				inside = true
			}
		}
		assert.True(t, inside, "slot %v outside every window", s.Start)
	}

	// Ordered, gapless within a window, no overlaps.
	for i := 1; i < len(tue); i++ {
		assert.False(t, tue[i].Start.Before(tue[i-1].End()))
	}
	// 90m window fits 4 slots; 50m window fits 2.
	assert.Len(t, tue, 6)
}

func TestGenerateWindowShorterThanSlot(t *testing.T) {
	tmpl := WeeklyTemplate{
		Friday: {{Start: TimeOfDay{Hour: 12}, Duration: 15 * time.Minute}},
	}
	slots := Generate(tmpl, monday(8, 0), 20*time.Minute)
	assert.Empty(t, slots[Friday])
}

func TestGenerateAnchorsEachWeekdayToItsOwnDate(t *testing.T) {
	tmpl := WeeklyTemplate{
		Tuesday: {{Start: TimeOfDay{Hour: 10}, Duration: time.Hour}},
		Sunday:  {{Start: TimeOfDay{Hour: 21}, Duration: time.Hour}},
	}
	today := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC) // Wednesday
	slots := Generate(tmpl, today, 20*time.Minute)

	require.NotEmpty(t, slots[Tuesday])
	require.NotEmpty(t, slots[Sunday])
	assert.Equal(t, time.Date(2025, 3, 18, 10, 0, 0, 0, time.UTC), slots[Tuesday][0].Start)
	assert.Equal(t, time.Date(2025, 3, 16, 21, 0, 0, 0, time.UTC), slots[Sunday][0].Start)
}
