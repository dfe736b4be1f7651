package config

import (
	"time"

	"officehours-service/internal/schedule"
)

// DefaultTemplate is the built-in office-hours week: Monday through Thursday
// evenings 18:00 for six hours, Sunday 21:00 for three. Used when no
// database-backed template is configured.
func DefaultTemplate() schedule.WeeklyTemplate {
	evening := schedule.Window{Start: schedule.TimeOfDay{Hour: 18}, Duration: 6 * time.Hour}
	return schedule.WeeklyTemplate{
		schedule.Monday:    {evening},
		schedule.Tuesday:   {evening},
		schedule.Wednesday: {evening},
		schedule.Thursday:  {evening},
		schedule.Friday:    {},
		schedule.Saturday:  {},
		schedule.Sunday:    {{Start: schedule.TimeOfDay{Hour: 21}, Duration: 3 * time.Hour}},
	}
}
