package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"officehours-service/internal/booking"
	"officehours-service/internal/schedule"
)

type App struct {
	Booking  *booking.Service
	Template schedule.WeeklyTemplate
	Log      *zap.Logger
}

// GET /
func (a *App) IndexHandler(c *gin.Context) {
	a.renderSchedule(c, http.StatusOK, "", "")
}

// POST /
// Form fields: appt (slot identifier), email, name. The outcome is shown as
// a banner on the re-rendered schedule, with a status code matching the
// failure class instead of a blanket 200.
func (a *App) BookFormHandler(c *gin.Context) {
	req := booking.Request{
		SlotStart: c.PostForm("appt"),
		Email:     c.PostForm("email"),
		Name:      c.PostForm("name"),
	}
	if err := a.Booking.Book(c.Request.Context(), req); err != nil {
		status, msg := bookingError(err)
		a.renderSchedule(c, status, "", msg)
		return
	}
	a.renderSchedule(c, http.StatusOK, "Your appointment is booked.", "")
}

func (a *App) renderSchedule(c *gin.Context, status int, message, errMsg string) {
	days, err := a.Booking.Schedule(c.Request.Context())
	if err != nil {
		// Without fresh event data there is no schedule to show.
		upStatus, upMsg := bookingError(err)
		c.HTML(upStatus, "index.html", gin.H{
			"Error": upMsg,
			"Today": time.Now().Format("Mon"),
		})
		return
	}
	c.HTML(status, "index.html", gin.H{
		"Days":    days,
		"Today":   time.Now().Format("Mon"),
		"Message": message,
		"Error":   errMsg,
	})
}

// GET /api/schedule
func (a *App) GetScheduleHandler(c *gin.Context) {
	days, err := a.Booking.Schedule(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

// POST /api/bookings
func (a *App) CreateBookingHandler(c *gin.Context) {
	var req booking.Request
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := a.Booking.Book(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"status":     "booked",
		"slot_start": req.SlotStart,
	})
}

type availabilityRule struct {
	DayOfWeek int    `json:"day_of_week"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	Minutes   int    `json:"duration_minutes"`
}

// GET /api/admin/availability
func (a *App) ListAvailabilityHandler(c *gin.Context) {
	var rules []availabilityRule
	for w := schedule.Monday; w <= schedule.Sunday; w++ {
		for _, win := range a.Template[w] {
			rules = append(rules, availabilityRule{
				DayOfWeek: int(w),
				Day:       w.String(),
				StartTime: win.Start.String(),
				Minutes:   int(win.Duration.Minutes()),
			})
		}
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// GET /api/admin/events
func (a *App) ListEventsHandler(c *gin.Context) {
	events, err := a.Booking.Events(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

func respondError(c *gin.Context, err error) {
	status, msg := bookingError(err)
	var code string
	var be *booking.Error
	if errors.As(err, &be) {
		code = be.Code
	}
	c.JSON(status, gin.H{"error": msg, "code": code})
}

func bookingError(err error) (int, string) {
	var be *booking.Error
	if errors.As(err, &be) {
		return be.Status, be.Message
	}
	return http.StatusInternalServerError, "internal error"
}
