package repository

import (
	"context"

	"bookline-schedule/internal/domain/entity"
)

// ScheduleRepository abstracts the upstream bookings API that owns the data.
// All methods suspend on network I/O and honor the context deadline.
type ScheduleRepository interface {
	FetchAppointments(ctx context.Context, providerID string, query entity.AppointmentQuery) ([]entity.Appointment, error)
	FetchWorkingSchedule(ctx context.Context, providerID string) (entity.WeekSchedule, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID string, status entity.Status) error

	// FetchProviderAvailability returns the per-date working window, or nil
	// when the upstream does not expose one. Absence is not an error.
	FetchProviderAvailability(ctx context.Context, providerID string, date string) (*entity.DayAvailability, error)
}
