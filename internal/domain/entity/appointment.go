package entity

import (
	"bookline-schedule/internal/timeparse"

	"github.com/shopspring/decimal"
)

// Appointment is one booked service instance, fetched from the upstream
// bookings API and already normalized: Date is YYYY-MM-DD, StartTime and
// EndTime are zero-padded HH:MM, Status is the canonical enum.
type Appointment struct {
	ID              string          `json:"id"`
	ServiceName     string          `json:"service_name"`
	ClientName      string          `json:"client_name"`
	ClientImage     string          `json:"client_image,omitempty"`
	Date            string          `json:"date"`
	StartTime       string          `json:"start_time"`
	EndTime         string          `json:"end_time"`
	DurationMinutes int             `json:"duration_minutes"`
	Status          Status          `json:"status"`
	Price           decimal.Decimal `json:"price"`
	Location        string          `json:"location,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Color           string          `json:"color,omitempty"`
}

// StartClock returns the normalized start time of day.
func (a *Appointment) StartClock() timeparse.Clock {
	return timeparse.NormalizeClock(a.StartTime)
}

// EndClock returns the normalized end time of day.
func (a *Appointment) EndClock() timeparse.Clock {
	return timeparse.NormalizeClock(a.EndTime)
}

// Duration returns the layout duration in minutes. The explicit duration
// field is the source of truth; the start/end span is the fallback when the
// upstream omits it.
func (a *Appointment) Duration() int {
	if a.DurationMinutes > 0 {
		return a.DurationMinutes
	}
	span := a.EndClock().Minutes() - a.StartClock().Minutes()
	if span > 0 {
		return span
	}
	return 0
}

// Covers reports whether the appointment's time range contains the given
// slot start instant. The range is half-open: [start, end).
func (a *Appointment) Covers(c timeparse.Clock) bool {
	m := c.Minutes()
	return m >= a.StartClock().Minutes() && m < a.EndClock().Minutes()
}

// IsPending checks if the appointment is awaiting confirmation
func (a *Appointment) IsPending() bool {
	return a.Status == StatusPending
}

// IsActive reports whether the appointment still has transitions ahead of it.
func (a *Appointment) IsActive() bool {
	return !a.Status.IsTerminal()
}
