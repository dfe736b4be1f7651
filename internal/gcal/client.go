// Package gcal implements the booking event store on top of the Google
// Calendar API.
package gcal

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"officehours-service/internal/schedule"
)

const maxListResults = 250

type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	TokenFile    string
	CalendarName string
	Timezone     string
}

// Client talks to one calendar, resolved once at startup by its summary
// name. It satisfies booking.EventStore.
type Client struct {
	srv        *calendar.Service
	calendarID string
	loc        *time.Location
	tzName     string
}

// Connect authenticates against the Calendar API and resolves the target
// calendar ID. It fails fast when the named calendar does not exist rather
// than letting every later call 404.
func Connect(ctx context.Context, cfg Config, loc *time.Location) (*Client, error) {
	oc, err := oauthConfig(cfg.ClientID, cfg.ClientSecret, cfg.RedirectURL)
	if err != nil {
		return nil, err
	}
	tok, err := loadToken(cfg.TokenFile)
	if err != nil {
		return nil, err
	}

	srv, err := calendar.NewService(ctx, option.WithHTTPClient(oc.Client(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}

	list, err := srv.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("list calendars: %w", err)
	}
	var calendarID string
	for _, item := range list.Items {
		if item.Summary == cfg.CalendarName {
			calendarID = item.Id
			break
		}
	}
	if calendarID == "" {
		return nil, fmt.Errorf("calendar %q not found", cfg.CalendarName)
	}

	return &Client{srv: srv, calendarID: calendarID, loc: loc, tzName: cfg.Timezone}, nil
}

// ListEvents fetches single events in [from, to), ordered by start time,
// with both bounds sent as UTC. Event times come back as RFC3339 instants
// and are converted into the service's local zone here, at the read
// boundary, so everything downstream compares in one frame.
func (c *Client) ListEvents(ctx context.Context, from, to time.Time) ([]schedule.Event, error) {
	res, err := c.srv.Events.List(c.calendarID).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(from.UTC().Format(time.RFC3339)).
		TimeMax(to.UTC().Format(time.RFC3339)).
		MaxResults(maxListResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	var events []schedule.Event
	for _, item := range res.Items {
		// All-day entries carry only a date; they are not appointments
		// and do not block slots.
		if item.Start == nil || item.End == nil || item.Start.DateTime == "" || item.End.DateTime == "" {
			continue
		}
		start, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			return nil, fmt.Errorf("event %s: parse start: %w", item.Id, err)
		}
		end, err := time.Parse(time.RFC3339, item.End.DateTime)
		if err != nil {
			return nil, fmt.Errorf("event %s: parse end: %w", item.Id, err)
		}
		events = append(events, schedule.Event{
			Start:   start.In(c.loc),
			End:     end.In(c.loc),
			Summary: item.Summary,
		})
	}
	return events, nil
}

// InsertEvent appends one event with the requester as sole attendee. The
// authenticated account is the organizer; the calendar service handles the
// invitation from there.
func (c *Client) InsertEvent(ctx context.Context, ev schedule.Event) error {
	body := &calendar.Event{
		Summary: ev.Summary,
		Start: &calendar.EventDateTime{
			DateTime: ev.Start.Format(time.RFC3339),
			TimeZone: c.tzName,
		},
		End: &calendar.EventDateTime{
			DateTime: ev.End.Format(time.RFC3339),
			TimeZone: c.tzName,
		},
		Attendees: []*calendar.EventAttendee{
			{Email: ev.AttendeeEmail, DisplayName: ev.AttendeeName},
		},
	}
	if _, err := c.srv.Events.Insert(c.calendarID, body).Context(ctx).Do(); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}
