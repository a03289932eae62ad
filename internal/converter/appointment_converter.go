package converter

import (
	"bookline-schedule/internal/delivery/dto"
	"bookline-schedule/internal/domain/entity"
	"bookline-schedule/internal/schedule"
	"bookline-schedule/internal/timeparse"
)

// AppointmentToResponse converts an Appointment entity to its response DTO
func AppointmentToResponse(appt *entity.Appointment) *dto.AppointmentResponse {
	if appt == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appt.ID,
		ServiceName:     appt.ServiceName,
		ClientName:      appt.ClientName,
		ClientImage:     appt.ClientImage,
		Date:            appt.Date,
		StartTime:       appt.StartTime,
		EndTime:         appt.EndTime,
		StartLabel:      timeparse.FormatSlot(appt.StartClock()),
		DurationMinutes: appt.Duration(),
		Status:          string(appt.Status),
		Price:           appt.Price.String(),
		Location:        appt.Location,
		Notes:           appt.Notes,
		Color:           appt.Color,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to response DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

func SlotToResponse(slot entity.TimeSlot, state schedule.SlotState) dto.SlotResponse {
	return dto.SlotResponse{
		Hour:   slot.Hour,
		Minute: slot.Minute,
		Label:  slot.Label,
		State:  string(state),
	}
}

func PlacementsToResponses(placements []schedule.Placement) []dto.PlacementResponse {
	responses := make([]dto.PlacementResponse, len(placements))
	for i, p := range placements {
		responses[i] = dto.PlacementResponse{
			AppointmentID: p.AppointmentID,
			Top:           p.Top,
			Height:        p.Height,
			HasConflict:   p.HasConflict,
		}
	}
	return responses
}

func CalendarDayToResponse(day schedule.CalendarDay) dto.CalendarDayResponse {
	return dto.CalendarDayResponse{
		Date:       day.Date.Format("2006-01-02"),
		InMonth:    day.InMonth,
		IsToday:    day.IsToday,
		IsSelected: day.IsSelected,
		Bookings:   AppointmentsToResponses(day.Appointments),
	}
}
