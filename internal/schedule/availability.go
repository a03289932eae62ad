package schedule

import (
	"bookline-schedule/internal/domain/entity"
	"bookline-schedule/internal/timeparse"
)

// SlotState classifies one grid slot for a given date.
type SlotState string

const (
	SlotAvailable    SlotState = "available"
	SlotBooked       SlotState = "booked"
	SlotOutsideHours SlotState = "outside_hours"
)

// ResolveSlot classifies the slot starting at c on the given date. Precedence:
// a blocking appointment wins over everything; otherwise the optional remote
// working window can mark the slot outside hours; otherwise it is available.
//
// The resolver is advisory only. The upstream API owns the real availability
// computation; this only shapes what is shown before submission.
func ResolveSlot(c timeparse.Clock, date string, appointments []entity.Appointment, window *entity.DayAvailability) SlotState {
	for i := range appointments {
		appt := &appointments[i]
		if appt.Date != date || !appt.Status.BlocksSlot() {
			continue
		}
		if appt.Covers(c) {
			return SlotBooked
		}
	}

	if window != nil && window.StartTime != "" && window.EndTime != "" {
		// Zero-padded HH:MM compares correctly as a plain string.
		hm := c.String()
		if hm < window.StartTime || hm > window.EndTime {
			return SlotOutsideHours
		}
	}

	return SlotAvailable
}

// IsSlotAvailable is the boolean convenience form of ResolveSlot.
func IsSlotAvailable(c timeparse.Clock, date string, appointments []entity.Appointment, window *entity.DayAvailability) bool {
	return ResolveSlot(c, date, appointments, window) == SlotAvailable
}
