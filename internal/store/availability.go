// Package store loads the weekly availability template from Postgres.
// The table is read once at startup; the schedule core never touches the
// database afterwards.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"officehours-service/internal/schedule"
)

// LoadTemplate reads availability_rules into a WeeklyTemplate. Rows are
// (day_of_week ISO 1-7, start_time "HH:MM", end_time "HH:MM"); rules flagged
// unavailable are skipped. The assembled template is validated before use so
// overlapping rows are rejected at startup, not at request time.
func LoadTemplate(ctx context.Context, db *pgxpool.Pool) (schedule.WeeklyTemplate, error) {
	q := `SELECT day_of_week, start_time, end_time FROM availability_rules
	      WHERE available ORDER BY day_of_week, start_time`
	rows, err := db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query availability rules: %w", err)
	}
	defer rows.Close()

	tmpl := make(schedule.WeeklyTemplate)
	for rows.Next() {
		var (
			day        int
			start, end string
		)
		if err := rows.Scan(&day, &start, &end); err != nil {
			return nil, err
		}
		window, err := parseWindow(start, end)
		if err != nil {
			return nil, fmt.Errorf("rule for day %d: %w", day, err)
		}
		tmpl[schedule.Weekday(day)] = append(tmpl[schedule.Weekday(day)], window)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(tmpl) == 0 {
		return nil, fmt.Errorf("no availability rules configured")
	}
	if err := tmpl.Validate(); err != nil {
		return nil, fmt.Errorf("invalid availability rules: %w", err)
	}
	return tmpl, nil
}

func parseWindow(start, end string) (schedule.Window, error) {
	s, err := schedule.ParseTimeOfDay(start)
	if err != nil {
		return schedule.Window{}, err
	}
	e, err := schedule.ParseTimeOfDay(end)
	if err != nil {
		return schedule.Window{}, err
	}
	d := e.Offset() - s.Offset()
	if d <= 0 {
		return schedule.Window{}, fmt.Errorf("end_time %s must be after start_time %s", end, start)
	}
	return schedule.Window{Start: s, Duration: d}, nil
}
