package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("18:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 18, Minute: 30}, tod)

	tod, err = ParseTimeOfDay("09:00:00.000000")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 9}, tod)

	_, err = ParseTimeOfDay("9")
	assert.Error(t, err)
	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
}

func TestTemplateValidate(t *testing.T) {
	ok := WeeklyTemplate{
		Monday: {
			{Start: TimeOfDay{Hour: 9}, Duration: 2 * time.Hour},
			{Start: TimeOfDay{Hour: 14}, Duration: time.Hour},
		},
	}
	assert.NoError(t, ok.Validate())

	overlapping := WeeklyTemplate{
		Monday: {
			{Start: TimeOfDay{Hour: 9}, Duration: 3 * time.Hour},
			{Start: TimeOfDay{Hour: 11}, Duration: time.Hour},
		},
	}
	assert.Error(t, overlapping.Validate())

	outOfOrder := WeeklyTemplate{
		Monday: {
			{Start: TimeOfDay{Hour: 14}, Duration: time.Hour},
			{Start: TimeOfDay{Hour: 9}, Duration: time.Hour},
		},
	}
	assert.Error(t, outOfOrder.Validate())

	zeroDuration := WeeklyTemplate{
		Monday: {{Start: TimeOfDay{Hour: 9}}},
	}
	assert.Error(t, zeroDuration.Validate())

	badDay := WeeklyTemplate{
		Weekday(8): {{Start: TimeOfDay{Hour: 9}, Duration: time.Hour}},
	}
	assert.Error(t, badDay.Validate())
}
