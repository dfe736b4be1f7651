package booking

import (
	"fmt"
	"net/http"
)

// Error is a typed booking outcome with HTTP awareness. The four classes:
// invalid request, policy violation, slot conflict, upstream failure.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches by code so wrapped copies compare equal to their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrInvalidRequest  = &Error{Code: "INVALID_REQUEST", Status: http.StatusBadRequest, Message: "invalid booking request"}
	ErrEmailNotAllowed = &Error{Code: "EMAIL_NOT_ALLOWED", Status: http.StatusForbidden, Message: "email not allowed"}
	ErrQuotaExceeded   = &Error{Code: "QUOTA_EXCEEDED", Status: http.StatusForbidden, Message: "too many appointments"}
	ErrSlotUnavailable = &Error{Code: "SLOT_UNAVAILABLE", Status: http.StatusConflict, Message: "time not available"}
	ErrUpstream        = &Error{Code: "CALENDAR_UNAVAILABLE", Status: http.StatusBadGateway, Message: "could not reach the calendar"}
)

// wrap attaches a cause to a sentinel without mutating it.
func wrap(base *Error, err error) *Error {
	e := *base
	e.Err = err
	return &e
}
