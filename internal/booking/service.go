package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"officehours-service/internal/policy"
	"officehours-service/internal/schedule"
)

// EventStore is the external calendar: list events in [from, to) and append
// a new one. Both are synchronous network round-trips; the insert is not
// idempotent, so callers must not retry it blindly.
type EventStore interface {
	ListEvents(ctx context.Context, from, to time.Time) ([]schedule.Event, error)
	InsertEvent(ctx context.Context, ev schedule.Event) error
}

// Config is the immutable service configuration.
type Config struct {
	SlotLength      time.Duration
	Location        *time.Location
	UpstreamTimeout time.Duration
}

// Service computes the bookable schedule and runs booking transactions
// against the event store. Bookings are serialized through a single mutex so
// the availability check and the insert act as one unit per calendar; without
// it two concurrent requests for the same slot can both pass the check.
type Service struct {
	store    EventStore
	policy   policy.Policy
	template schedule.WeeklyTemplate
	cfg      Config
	log      *zap.Logger

	mu  sync.Mutex
	now func() time.Time
}

func NewService(store EventStore, pol policy.Policy, tmpl schedule.WeeklyTemplate, cfg Config, log *zap.Logger) *Service {
	loc := cfg.Location
	return &Service{
		store:    store,
		policy:   pol,
		template: tmpl,
		cfg:      cfg,
		log:      log,
		now:      func() time.Time { return time.Now().In(loc) },
	}
}

// Request is a visitor's claim on a slot. SlotStart is the form identifier
// ("MM/DD/YY HH:MM AM|PM" in the service's local zone).
type Request struct {
	SlotStart string `json:"slot_start" form:"appt" binding:"required"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Name      string `json:"name" form:"name" binding:"required"`
}

// Schedule returns the rotated 7-day view for display. An upstream failure
// during the event read aborts the whole computation: a schedule built
// without fresh events cannot be trusted.
func (s *Service) Schedule(ctx context.Context) ([7]schedule.Day, error) {
	now := s.now()
	slots, err := s.reconciled(ctx, now)
	if err != nil {
		return [7]schedule.Day{}, err
	}
	return schedule.BuildView(slots, now), nil
}

// Events returns the raw upstream events for the rolling 7-day window.
func (s *Service) Events(ctx context.Context) ([]schedule.Event, error) {
	return s.listEvents(ctx, s.now())
}

// Book validates the request and, if the slot is still free, inserts one
// event upstream. Gates run in order and the first failure short-circuits
// with no partial effects; policy rejections happen before any network call.
func (s *Service) Book(ctx context.Context, req Request) error {
	if req.SlotStart == "" || req.Email == "" || req.Name == "" {
		return ErrInvalidRequest
	}
	start, err := time.ParseInLocation(schedule.SlotIDLayout, req.SlotStart, s.cfg.Location)
	if err != nil {
		return wrap(ErrInvalidRequest, err)
	}
	if !s.policy.IsEmailAllowed(req.Email) {
		return ErrEmailNotAllowed
	}
	if s.policy.QuotaRemaining(req.Email) <= 0 {
		return ErrQuotaExceeded
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	slots, err := s.reconciled(ctx, now)
	if err != nil {
		return err
	}

	slot, ok := findSlot(slots[schedule.ISOWeekday(start)], start)
	if !ok || slot.Booked {
		return ErrSlotUnavailable
	}

	ev := schedule.Event{
		Start:         slot.Start,
		End:           slot.End(),
		Summary:       fmt.Sprintf("Office hours: %s", req.Name),
		AttendeeEmail: req.Email,
		AttendeeName:  req.Name,
	}
	insertCtx, cancel := context.WithTimeout(ctx, s.cfg.UpstreamTimeout)
	defer cancel()
	if err := s.store.InsertEvent(insertCtx, ev); err != nil {
		s.log.Error("event insert failed",
			zap.Time("slot_start", slot.Start),
			zap.Error(err))
		return wrap(ErrUpstream, err)
	}

	s.log.Info("appointment booked",
		zap.Time("slot_start", slot.Start),
		zap.String("email", req.Email))
	return nil
}

// reconciled builds a fresh schedule: generate slots for the current week
// and mark them against the events in [now, now+7d).
func (s *Service) reconciled(ctx context.Context, now time.Time) (map[schedule.Weekday][]schedule.Slot, error) {
	events, err := s.listEvents(ctx, now)
	if err != nil {
		return nil, err
	}
	slots := schedule.Generate(s.template, now, s.cfg.SlotLength)
	schedule.Reconcile(slots, events, now, s.cfg.Location)
	return slots, nil
}

func (s *Service) listEvents(ctx context.Context, now time.Time) ([]schedule.Event, error) {
	listCtx, cancel := context.WithTimeout(ctx, s.cfg.UpstreamTimeout)
	defer cancel()
	events, err := s.store.ListEvents(listCtx, now, now.AddDate(0, 0, 7))
	if err != nil {
		s.log.Error("event list failed", zap.Error(err))
		return nil, wrap(ErrUpstream, err)
	}
	return events, nil
}

func findSlot(day []schedule.Slot, start time.Time) (schedule.Slot, bool) {
	for _, s := range day {
		if s.Start.Equal(start) {
			return s, true
		}
	}
	return schedule.Slot{}, false
}
